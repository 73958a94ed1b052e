// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// WhatsAppClient implements [Client] on top of whatsmeow.
type WhatsAppClient struct {
	*Emitter

	wa     *whatsmeow.Client
	logger *logger.Logger
}

// NewWhatsAppClient builds a client for the first device found in container
// (a fresh, unpaired device when the store is empty). Nothing is connected
// until Initialize is called.
func NewWhatsAppClient(ctx context.Context, container *sqlstore.Container, cfg config.Automation, log *logger.Logger) (*WhatsAppClient, error) {
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, &ConnectionError{Message: "load device", Err: err}
	}

	c := &WhatsAppClient{
		Emitter: NewEmitter(log),
		wa:      whatsmeow.NewClient(device, NewLibraryLogger(log, cfg.LogLevel)),
		logger:  log,
	}
	c.wa.AddEventHandler(c.handleEvent)

	return c, nil
}

// Initialize implements [Client]. A device that was never paired requests
// login codes, emitting one qr event per code, until the code is scanned or
// the pairing window closes. In both cases Initialize returns only once the
// session is ready or failed, or ctx ends.
func (c *WhatsAppClient) Initialize(ctx context.Context) error {
	if c.wa.Store.ID != nil {
		if err := c.wa.Connect(); err != nil {
			return &ConnectionError{Message: "connect", Err: err}
		}
		return c.settle(ctx)
	}

	qrChan, err := c.wa.GetQRChannel(ctx)
	if err != nil {
		return &ConnectionError{Message: "request login code", Err: err}
	}
	if err = c.wa.Connect(); err != nil {
		return &ConnectionError{Message: "connect", Err: err}
	}

	for item := range qrChan {
		switch item.Event {
		case whatsmeow.QRChannelEventCode:
			c.logger.Debug().Dur("timeout", item.Timeout).Msg("login code issued")
			c.Emit(models.Event{Name: models.EventQR, Payload: item.Code})
		case whatsmeow.QRChannelSuccess.Event:
			return c.settle(ctx)
		default:
			failure := &AuthFailure{Message: describeQREvent(item)}
			c.Emit(models.Event{Name: models.EventAuthFailure, Payload: failure.Message})
			c.wa.Disconnect()
			return &ConnectionError{Message: "pair device", Err: failure}
		}
	}

	return &ConnectionError{Message: "login code channel closed", Err: ctx.Err()}
}

func (c *WhatsAppClient) settle(ctx context.Context) error {
	if err := c.awaitSettled(ctx); err != nil {
		return &ConnectionError{Message: "establish session", Err: err}
	}
	return nil
}

// SendMessage implements [Sender]. The payload is uploaded first and then
// sent as an image, video, audio or document message depending on its MIME
// type.
func (c *WhatsAppClient) SendMessage(ctx context.Context, target string, media Media) error {
	if phase := c.Phase(); phase != models.PhaseReady {
		return &SendError{Message: fmt.Sprintf("cannot send while session is %s", phase), Err: ErrNotReady}
	}

	jid, err := resolveTarget(target, c.wa.Store.ID)
	if err != nil {
		return &SendError{Message: fmt.Sprintf("resolve target %q", target), Err: err}
	}

	mediaType := mediaTypeFor(media.MimeType)
	uploaded, err := c.wa.Upload(ctx, media.Data, mediaType)
	if err != nil {
		return &SendError{Message: "upload media", Err: err}
	}

	resp, err := c.wa.SendMessage(ctx, jid, buildMediaMessage(media, mediaType, uploaded))
	if err != nil {
		return &SendError{Message: "send message", Err: err}
	}

	c.logger.Info().
		Str("to", jid.String()).
		Str("message_id", resp.ID).
		Str("file", media.FileName).
		Int("size", len(media.Data)).
		Msg("media sent")

	return nil
}

// Close disconnects from the server. The client cannot be reused afterwards.
func (c *WhatsAppClient) Close() {
	c.wa.Disconnect()
}

// resolveTarget maps a configured target to a chat. own is the paired
// account, nil before pairing.
func resolveTarget(target string, own *types.JID) (types.JID, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == models.SelfTarget:
		if own == nil {
			return types.EmptyJID, ErrInvalidTarget
		}
		return own.ToNonAD(), nil
	case target == "":
		return types.EmptyJID, ErrInvalidTarget
	case !strings.Contains(target, "@"):
		return types.NewJID(strings.TrimPrefix(target, "+"), types.DefaultUserServer), nil
	default:
		return types.ParseJID(target)
	}
}

func (c *WhatsAppClient) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.PairSuccess:
		c.logger.Info().Str("jid", v.ID.String()).Msg("device paired")
		c.Emit(models.Event{Name: models.EventAuthenticated})
	case *events.Connected:
		// a restored device connects without a pairing step
		if c.Phase() == models.PhasePendingLogin {
			c.Emit(models.Event{Name: models.EventAuthenticated})
		}
		c.Emit(models.Event{Name: models.EventReady})
	case *events.LoggedOut:
		c.Emit(models.Event{Name: models.EventAuthFailure, Payload: "logged out: " + v.Reason.String()})
	case *events.ConnectFailure:
		c.Emit(models.Event{Name: models.EventAuthFailure, Payload: fmt.Sprintf("connect failure: %s %s", v.Reason.String(), v.Message)})
	case *events.ClientOutdated:
		c.Emit(models.Event{Name: models.EventAuthFailure, Payload: "client outdated"})
	case *events.TemporaryBan:
		c.Emit(models.Event{Name: models.EventAuthFailure, Payload: v.String()})
	case *events.StreamReplaced:
		c.Emit(models.Event{Name: models.EventAuthFailure, Payload: "session replaced by another connection"})
	}
}

func describeQREvent(item whatsmeow.QRChannelItem) string {
	switch {
	case item.Error != nil:
		return item.Error.Error()
	case item.Event == whatsmeow.QRChannelTimeout.Event:
		return "login code was not scanned in time"
	case item.Event == whatsmeow.QRChannelClientOutdated.Event:
		return "client outdated"
	case item.Event == whatsmeow.QRChannelScannedWithoutMultidevice.Event:
		return "login code scanned without multi-device enabled"
	default:
		return "unexpected pairing event " + item.Event
	}
}
