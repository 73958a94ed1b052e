package bridge

import (
	"sync"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Hub fans notifications out to subscribed UI connections. Publishing never
// blocks: a subscriber whose buffer is full misses the notification.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan models.Notification
	nextID uint64
	buffer int

	logger *logger.Logger
}

// NewHub returns a Hub whose subscribers buffer up to buffer notifications.
func NewHub(buffer int, log *logger.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}

	return &Hub{
		subs:   make(map[uint64]chan models.Notification),
		buffer: buffer,
		logger: log,
	}
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan models.Notification, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan models.Notification, h.buffer)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish implements relay.Notifier. It returns ErrNotDelivered when no
// subscriber received the notification.
func (h *Hub) Publish(channel models.Channel) error {
	n := models.Notification{Channel: channel}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- n:
			delivered++
		default:
		}
	}

	h.logger.Debug().
		Str("channel", string(channel)).
		Int("delivered", delivered).
		Int("subscribers", len(h.subs)).
		Msg("notification published")

	if delivered == 0 {
		return ErrNotDelivered
	}
	return nil
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
