package host

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/bridge"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	httphandler "github.com/MKhiriev/go-wa-desk/internal/handler/http"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/relay"
	"github.com/MKhiriev/go-wa-desk/internal/server"
	"github.com/MKhiriev/go-wa-desk/internal/tui"
	"github.com/MKhiriev/go-wa-desk/internal/workers"
	"github.com/MKhiriev/go-wa-desk/models"
)

const notificationBuffer = 8

// WindowFactory builds the function that shows one window talking to the
// bridge at adapterCfg.
type WindowFactory func(adapterCfg config.Adapter, windowCfg config.Window, buildInfo models.AppBuildInfo, log *logger.Logger) (WindowOpener, error)

// NewTerminalWindow is the production [WindowFactory].
func NewTerminalWindow(adapterCfg config.Adapter, windowCfg config.Window, buildInfo models.AppBuildInfo, log *logger.Logger) (WindowOpener, error) {
	bridgeAdapter, err := adapter.NewHTTPBridgeAdapter(adapterCfg, log)
	if err != nil {
		return nil, err
	}
	return tui.NewWindow(bridgeAdapter, windowCfg, buildInfo, log).Run, nil
}

// RunDesktop runs the windowed shape. The automation client is created once
// and outlives every window; console output goes to console so it does not
// draw over the window. RunDesktop returns when the window manager
// terminates or ctx ends.
func RunDesktop(
	ctx context.Context,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	newClient ClientFactory,
	newWindow WindowFactory,
	console io.Writer,
	log *logger.Logger,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := newClient(ctx, cfg.Automation, log)
	if err != nil {
		return fmt.Errorf("create automation client: %w", err)
	}
	defer client.Close()

	hub := bridge.NewHub(notificationBuffer, log)
	relay.Attach(client, relay.NewWindowObserver(relay.NewConsoleObserver(console, console, log), hub, log))

	handler := httphandler.NewHandler(bridge.NewBridge(client, cfg.Automation, cfg.Bridge, log), hub, buildInfo, log)
	srv, err := server.NewServer(handler.Init(), cfg.Bridge, log)
	if err != nil {
		return fmt.Errorf("create bridge server: %w", err)
	}
	if err = srv.Listen(); err != nil {
		return fmt.Errorf("start bridge server: %w", err)
	}

	adapterCfg := cfg.Adapter
	if adapterCfg.HTTPAddress == "" || adapterCfg.HTTPAddress == cfg.Bridge.HTTPAddress {
		adapterCfg.HTTPAddress = srv.Addr()
	}
	openWindow, err := newWindow(adapterCfg, cfg.Window, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	windows := NewWindowManager(ctx, openWindow, cfg.Window, log)

	background := workers.New(log).
		Add("bridge-server", workers.WorkerFunc(func(ctx context.Context) error {
			err := srv.RunServer(ctx)
			if err != nil {
				cancel()
			}
			return err
		})).
		Add("automation", workers.WorkerFunc(func(ctx context.Context) error {
			if err := client.Initialize(ctx); err != nil {
				logInitFailure(log, err)
			}
			return nil
		})).
		Add("activate", workers.WorkerFunc(func(ctx context.Context) error {
			return watchActivate(ctx, windows)
		}))

	backgroundDone := make(chan error, 1)
	go func() { backgroundDone <- background.Run(ctx) }()

	windows.Create()

	select {
	case <-windows.Done():
	case <-ctx.Done():
		windows.Terminate()
	}
	log.Info().Str("state", string(windows.State())).Msg("desktop host stopping")

	cancel()
	windows.Wait()

	return <-backgroundDone
}
