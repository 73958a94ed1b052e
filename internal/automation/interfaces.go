package automation

import (
	"context"

	"github.com/MKhiriev/go-wa-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/automation_mock.go -package=mock

// Handler receives one lifecycle event. Handlers run synchronously on the
// emitting goroutine and must not emit events themselves.
type Handler func(event models.Event)

// Media is a file payload tagged with its MIME type.
type Media struct {
	FileName string
	MimeType string
	Data     []byte
}

// EventSource lets observers subscribe to lifecycle events.
type EventSource interface {
	// On registers handler for the named event. Handlers registered for the
	// same event are called in registration order.
	On(name models.EventName, handler Handler)
}

// Sender sends media payloads to a chat.
type Sender interface {
	// SendMessage sends media to target. target is either the "me" alias or
	// a chat identifier. Fails with a *SendError.
	SendMessage(ctx context.Context, target string, media Media) error
}

// Client is the automation capability the rest of the application depends
// on.
type Client interface {
	EventSource
	Sender

	// Initialize starts the login/connection sequence and blocks until it
	// completes or fails. Failures are reported as *ConnectionError.
	Initialize(ctx context.Context) error

	// Phase returns a snapshot of the current session phase.
	Phase() models.Phase
}
