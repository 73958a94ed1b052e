// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relay

import (
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Notifier pushes a notification to the UI process.
type Notifier interface {
	Publish(channel models.Channel) error
}

// WindowObserver behaves like its console observer and additionally
// notifies the UI about authentication outcomes. Notification failures,
// such as a UI that is gone, are logged and otherwise ignored.
type WindowObserver struct {
	*ConsoleObserver

	notifier Notifier
	logger   *logger.Logger
}

// NewWindowObserver wraps console with UI notifications sent via notifier.
func NewWindowObserver(console *ConsoleObserver, notifier Notifier, log *logger.Logger) *WindowObserver {
	return &WindowObserver{
		ConsoleObserver: console,
		notifier:        notifier,
		logger:          log,
	}
}

func (o *WindowObserver) Authenticated() {
	o.ConsoleObserver.Authenticated()
	o.notify(models.ChannelAuthenticated)
}

func (o *WindowObserver) AuthFailure(message string) {
	o.ConsoleObserver.AuthFailure(message)
	o.notify(models.ChannelAuthFailure)
}

func (o *WindowObserver) notify(channel models.Channel) {
	if err := o.notifier.Publish(channel); err != nil {
		o.logger.Debug().Err(err).Str("channel", string(channel)).Msg("ui notification not delivered")
	}
}
