package host

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wa-desk/internal/automation"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

// fakeClient is an in-process automation client whose events are driven by
// the test through the embedded emitter.
type fakeClient struct {
	*automation.Emitter

	initialize func(ctx context.Context, c *fakeClient) error

	mu      sync.Mutex
	sent    []sentMedia
	sendErr error
	closed  int
}

type sentMedia struct {
	target string
	media  automation.Media
}

func newFakeClient() *fakeClient {
	return &fakeClient{Emitter: automation.NewEmitter(logger.Nop())}
}

func (c *fakeClient) Initialize(ctx context.Context) error {
	if c.initialize == nil {
		return nil
	}
	return c.initialize(ctx, c)
}

func (c *fakeClient) SendMessage(_ context.Context, target string, media automation.Media) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sentMedia{target: target, media: media})
	return c.sendErr
}

func (c *fakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
}

func (c *fakeClient) sentMessages() []sentMedia {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentMedia(nil), c.sent...)
}

func (c *fakeClient) closeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func factoryFor(c *fakeClient) ClientFactory {
	return func(context.Context, config.Automation, *logger.Logger) (AutomationClient, error) {
		return c, nil
	}
}

// syncBuffer is a goroutine-safe bytes.Buffer substitute for console output.
type syncBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
