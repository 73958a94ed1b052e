// Package tui implements the window: a terminal UI that sends files through
// the bridge and reacts to its push notifications.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

type Window struct {
	bridge    adapter.BridgeAdapter
	cfg       config.Window
	buildInfo models.AppBuildInfo
	opts      []tea.ProgramOption

	logger *logger.Logger
}

func NewWindow(bridge adapter.BridgeAdapter, cfg config.Window, buildInfo models.AppBuildInfo, logger *logger.Logger) *Window {
	return &Window{
		bridge:    bridge,
		cfg:       cfg,
		buildInfo: buildInfo,
		opts:      []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger,
	}
}

// Run shows the window and blocks until the user closes it or ctx ends.
// Closing through ctx is not an error.
func (w *Window) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	notifications, err := w.bridge.Notifications(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("window opened without push notifications")
	}

	model := newWindowModel(ctx, w.bridge, notifications, w.buildInfo, w.cfg.Width, w.cfg.Height)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, w.opts...)

	w.logger.Info().Msg("window opened")
	_, err = tea.NewProgram(model, opts...).Run()
	w.logger.Info().Msg("window closed")

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
