package host

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

// WindowState is the lifecycle position of the window set.
type WindowState string

const (
	StateNoWindow   WindowState = "no-window"
	StateWindowOpen WindowState = "window-open"
	StateAllClosed  WindowState = "all-windows-closed"
	StateTerminated WindowState = "terminated"
)

// WindowOpener shows one window and blocks until it is closed.
type WindowOpener func(ctx context.Context) error

// WindowManager counts open windows and decides when the process ends.
//
// Closing the last window terminates the process unless the platform keeps
// applications alive without windows. Activate reopens a window only when
// none is open.
type WindowManager struct {
	ctx       context.Context
	open      WindowOpener
	keepAlive bool

	mu        sync.Mutex
	openCount int
	state     WindowState
	done      chan struct{}
	windows   sync.WaitGroup

	logger *logger.Logger
}

func NewWindowManager(ctx context.Context, open WindowOpener, cfg config.Window, logger *logger.Logger) *WindowManager {
	return &WindowManager{
		ctx:       ctx,
		open:      open,
		keepAlive: cfg.KeepAliveWithoutWindows(),
		state:     StateNoWindow,
		done:      make(chan struct{}),
		logger:    logger,
	}
}

// Create opens a new window. It reports false once the manager has
// terminated.
func (m *WindowManager) Create() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createLocked()
}

// Activate opens exactly one window when none is open and does nothing
// otherwise. It reports whether a window was created.
func (m *WindowManager) Activate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.openCount > 0 {
		m.logger.Debug().Int("open_windows", m.openCount).Msg("activate ignored, window already open")
		return false
	}
	return m.createLocked()
}

func (m *WindowManager) createLocked() bool {
	if m.state == StateTerminated {
		return false
	}

	m.openCount++
	m.state = StateWindowOpen
	m.windows.Add(1)

	go func() {
		defer m.windows.Done()

		if err := m.open(m.ctx); err != nil {
			m.logger.Err(err).Msg("window closed with error")
		}
		m.closed()
	}()

	return true
}

func (m *WindowManager) closed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.openCount--
	if m.openCount > 0 || m.state == StateTerminated {
		return
	}

	m.state = StateAllClosed
	if m.keepAlive {
		m.logger.Info().Msg("all windows closed, staying alive")
		return
	}

	m.terminateLocked()
}

// Terminate ends the window lifecycle regardless of the platform.
func (m *WindowManager) Terminate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.terminateLocked()
}

func (m *WindowManager) terminateLocked() {
	if m.state == StateTerminated {
		return
	}
	m.state = StateTerminated
	close(m.done)
}

// Done is closed when the manager terminates.
func (m *WindowManager) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until every window goroutine has returned.
func (m *WindowManager) Wait() {
	m.windows.Wait()
}

func (m *WindowManager) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.openCount
}

func (m *WindowManager) State() WindowState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}
