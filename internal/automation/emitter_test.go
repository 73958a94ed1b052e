package automation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every event delivered to it.
type recorder struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *recorder) handle(e models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) got() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

// ── single delivery ──────────────────────────────────────────────────────────

func TestEmitter_EachEventDeliveredExactlyOnce(t *testing.T) {
	tests := []struct {
		name  string
		setup []models.Event
		event models.Event
	}{
		{name: "qr", event: models.Event{Name: models.EventQR, Payload: "ABC123"}},
		{name: "authenticated", event: models.Event{Name: models.EventAuthenticated}},
		{name: "auth_failure", event: models.Event{Name: models.EventAuthFailure, Payload: "bad credentials"}},
		{
			name:  "ready",
			setup: []models.Event{{Name: models.EventAuthenticated}},
			event: models.Event{Name: models.EventReady},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmitter(logger.Nop())
			for _, s := range tt.setup {
				require.True(t, e.Emit(s))
			}

			rec := &recorder{}
			e.On(tt.event.Name, rec.handle)

			assert.True(t, e.Emit(tt.event))
			assert.Equal(t, []models.Event{tt.event}, rec.got())
		})
	}
}

func TestEmitter_HandlersOnlySeeTheirEvent(t *testing.T) {
	e := NewEmitter(logger.Nop())
	qr, ready := &recorder{}, &recorder{}
	e.On(models.EventQR, qr.handle)
	e.On(models.EventReady, ready.handle)

	e.Emit(models.Event{Name: models.EventQR, Payload: "code-1"})

	assert.Len(t, qr.got(), 1)
	assert.Empty(t, ready.got())
}

func TestEmitter_HandlersCalledInRegistrationOrder(t *testing.T) {
	e := NewEmitter(logger.Nop())
	var order []int
	for i := 1; i <= 3; i++ {
		e.On(models.EventAuthenticated, func(models.Event) { order = append(order, i) })
	}

	e.Emit(models.Event{Name: models.EventAuthenticated})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestEmitter_NilHandlerIgnored(t *testing.T) {
	e := NewEmitter(logger.Nop())
	e.On(models.EventQR, nil)

	assert.NotPanics(t, func() { e.Emit(models.Event{Name: models.EventQR, Payload: "x"}) })
}

// ── phase bookkeeping ────────────────────────────────────────────────────────

func TestEmitter_PhaseFollowsEvents(t *testing.T) {
	e := NewEmitter(logger.Nop())
	assert.Equal(t, models.PhasePendingLogin, e.Phase())

	e.Emit(models.Event{Name: models.EventQR, Payload: "code"})
	assert.Equal(t, models.PhasePendingLogin, e.Phase())

	e.Emit(models.Event{Name: models.EventAuthenticated})
	assert.Equal(t, models.PhaseAuthenticated, e.Phase())

	e.Emit(models.Event{Name: models.EventReady})
	assert.Equal(t, models.PhaseReady, e.Phase())
}

func TestEmitter_DropsTransitionsThatAreNotAllowed(t *testing.T) {
	e := NewEmitter(logger.Nop())
	ready, failure := &recorder{}, &recorder{}
	e.On(models.EventReady, ready.handle)
	e.On(models.EventAuthFailure, failure.handle)

	// ready cannot precede authenticated
	assert.False(t, e.Emit(models.Event{Name: models.EventReady}))
	assert.Empty(t, ready.got())

	e.Emit(models.Event{Name: models.EventAuthenticated})
	e.Emit(models.Event{Name: models.EventReady})

	// nothing leaves ready, and ready is not repeated
	assert.False(t, e.Emit(models.Event{Name: models.EventReady}))
	assert.False(t, e.Emit(models.Event{Name: models.EventAuthFailure, Payload: "late"}))

	assert.Len(t, ready.got(), 1)
	assert.Empty(t, failure.got())
	assert.Equal(t, models.PhaseReady, e.Phase())
}

func TestEmitter_FailedIsTerminal(t *testing.T) {
	e := NewEmitter(logger.Nop())
	e.Emit(models.Event{Name: models.EventAuthFailure, Payload: "rejected"})

	assert.False(t, e.Emit(models.Event{Name: models.EventAuthenticated}))
	assert.False(t, e.Emit(models.Event{Name: models.EventQR, Payload: "code"}))
	assert.Equal(t, models.PhaseFailed, e.Phase())
}

func TestEmitter_RepeatedLoginCodesWhilePending(t *testing.T) {
	e := NewEmitter(logger.Nop())
	rec := &recorder{}
	e.On(models.EventQR, rec.handle)

	e.Emit(models.Event{Name: models.EventQR, Payload: "first"})
	e.Emit(models.Event{Name: models.EventQR, Payload: "second"})

	require.Len(t, rec.got(), 2)
	assert.Equal(t, "second", rec.got()[1].Payload)
}

func TestEmitter_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	e := NewEmitter(logger.Nop())
	rec := &recorder{}
	e.On(models.EventAuthenticated, func(models.Event) { panic("observer gone") })
	e.On(models.EventAuthenticated, rec.handle)

	assert.NotPanics(t, func() { e.Emit(models.Event{Name: models.EventAuthenticated}) })
	assert.Len(t, rec.got(), 1)
	assert.Equal(t, models.PhaseAuthenticated, e.Phase())
}

func TestEmitter_ConcurrentEmitKeepsSinglePhaseChange(t *testing.T) {
	e := NewEmitter(logger.Nop())
	rec := &recorder{}
	e.On(models.EventAuthenticated, rec.handle)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Emit(models.Event{Name: models.EventAuthenticated})
		}()
	}
	wg.Wait()

	assert.Len(t, rec.got(), 1)
}

// ── settling ─────────────────────────────────────────────────────────────────

func TestEmitter_AwaitSettled(t *testing.T) {
	tests := []struct {
		name    string
		events  []models.Event
		failure string
	}{
		{
			name:   "ready",
			events: []models.Event{{Name: models.EventAuthenticated}, {Name: models.EventReady}},
		},
		{
			name:    "failed while pending",
			events:  []models.Event{{Name: models.EventAuthFailure, Payload: "rejected"}},
			failure: "rejected",
		},
		{
			name:    "failed after authentication",
			events:  []models.Event{{Name: models.EventAuthenticated}, {Name: models.EventAuthFailure, Payload: "logged out"}},
			failure: "logged out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmitter(logger.Nop())
			result := make(chan error, 1)
			go func() { result <- e.awaitSettled(context.Background()) }()

			for _, ev := range tt.events {
				e.Emit(ev)
			}

			var err error
			select {
			case err = <-result:
			case <-time.After(2 * time.Second):
				t.Fatal("awaitSettled did not return")
			}

			if tt.failure == "" {
				assert.NoError(t, err)
				return
			}
			var authErr *AuthFailure
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.failure, authErr.Message)
		})
	}
}

func TestEmitter_AwaitSettled_BlocksWhileAuthenticated(t *testing.T) {
	e := NewEmitter(logger.Nop())
	e.Emit(models.Event{Name: models.EventAuthenticated})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, e.awaitSettled(ctx), context.DeadlineExceeded)
}

func TestPhase_Terminal(t *testing.T) {
	assert.False(t, models.PhasePendingLogin.Terminal())
	assert.False(t, models.PhaseAuthenticated.Terminal())
	assert.True(t, models.PhaseReady.Terminal())
	assert.True(t, models.PhaseFailed.Terminal())
}
