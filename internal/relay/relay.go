package relay

import (
	"github.com/MKhiriev/go-wa-desk/internal/automation"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Observer receives the four lifecycle events. Implementations must not
// block; they run on the emitting goroutine.
type Observer interface {
	LoginCode(code string)
	Authenticated()
	Ready()
	AuthFailure(message string)
}

// Attach registers one handler per lifecycle event on source, each
// forwarding to observer.
func Attach(source automation.EventSource, observer Observer) {
	source.On(models.EventQR, func(e models.Event) {
		observer.LoginCode(e.Payload)
	})
	source.On(models.EventAuthenticated, func(models.Event) {
		observer.Authenticated()
	})
	source.On(models.EventReady, func(models.Event) {
		observer.Ready()
	})
	source.On(models.EventAuthFailure, func(e models.Event) {
		observer.AuthFailure(e.Payload)
	})
}
