// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package automation

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Session tracks the phase of one login attempt. Transitions are monotonic;
// see [models.Phase.CanAdvanceTo].
type Session struct {
	mu      sync.RWMutex
	phase   models.Phase
	failure string
	settled chan struct{}
}

// NewSession returns a session in the pending-login phase.
func NewSession() *Session {
	return &Session{phase: models.PhasePendingLogin, settled: make(chan struct{})}
}

// Phase returns the current phase.
func (s *Session) Phase() models.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Settled is closed once the session reaches a terminal phase.
func (s *Session) Settled() <-chan struct{} {
	return s.settled
}

// Failure returns the diagnostic of the auth_failure that failed the session.
func (s *Session) Failure() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failure
}

func (s *Session) advance(event models.Event, next models.Phase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.CanAdvanceTo(next) {
		return false
	}
	s.phase = next
	if next == models.PhaseFailed {
		s.failure = event.Payload
	}
	if next.Terminal() {
		close(s.settled)
	}
	return true
}

// Emitter dispatches lifecycle events to registered handlers and keeps the
// session phase in step with them.
type Emitter struct {
	emitMu sync.Mutex

	mu       sync.RWMutex
	handlers map[models.EventName][]Handler

	session *Session
	logger  *logger.Logger
}

// NewEmitter returns an Emitter with a fresh pending-login session.
func NewEmitter(log *logger.Logger) *Emitter {
	return &Emitter{
		handlers: make(map[models.EventName][]Handler),
		session:  NewSession(),
		logger:   log,
	}
}

// On implements [EventSource].
func (e *Emitter) On(name models.EventName, handler Handler) {
	if handler == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[name] = append(e.handlers[name], handler)
}

// Phase returns a snapshot of the session phase.
func (e *Emitter) Phase() models.Phase {
	return e.session.Phase()
}

// Emit advances the session phase for event and then calls every handler
// registered for it exactly once. Events that would move the phase backwards
// or repeat a phase are dropped, as are login codes issued after the
// session left pending-login. Emit reports whether the event was delivered.
//
// Emissions are serialised, so handlers always observe phases in order.
func (e *Emitter) Emit(event models.Event) bool {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	if next, ok := event.TargetPhase(); ok {
		if !e.session.advance(event, next) {
			e.logger.Debug().
				Str("event", string(event.Name)).
				Str("phase", string(e.session.Phase())).
				Msg("event dropped: phase transition not allowed")
			return false
		}
	} else if e.session.Phase() != models.PhasePendingLogin {
		e.logger.Debug().
			Str("event", string(event.Name)).
			Msg("event dropped: session already left pending-login")
		return false
	}

	e.mu.RLock()
	handlers := append([]Handler(nil), e.handlers[event.Name]...)
	e.mu.RUnlock()

	for _, handler := range handlers {
		e.dispatch(handler, event)
	}

	return true
}

// awaitSettled blocks until the session is ready or failed, or ctx ends.
// A failed session is reported as an [AuthFailure] carrying its diagnostic.
func (e *Emitter) awaitSettled(ctx context.Context) error {
	select {
	case <-e.session.Settled():
	case <-ctx.Done():
		return ctx.Err()
	}

	if e.session.Phase() == models.PhaseFailed {
		return &AuthFailure{Message: e.session.Failure()}
	}
	return nil
}

// dispatch isolates the emitter from a failing handler.
func (e *Emitter) dispatch(handler Handler, event models.Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("event", string(event.Name)).
				Interface("panic", r).
				Msg("event handler panicked")
		}
	}()

	handler(event)
}
