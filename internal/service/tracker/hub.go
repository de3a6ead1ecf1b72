package tracker

import "sync"

// subscriberBufferSize is the per-subscriber channel capacity.
// A subscriber that falls this far behind is disconnected.
const subscriberBufferSize = 32

// hub fans values out to a dynamic set of subscribers without ever
// blocking the publisher. Slow subscribers are cut, not waited on.
type hub[T any] struct {
	// mu protects the subscriber map.
	mu sync.Mutex
	// subs maps subscriber IDs to their delivery channels.
	subs map[uint64]chan T
	// nextID is the ID the next subscriber will receive.
	nextID uint64
	// closed marks the hub as shut down; closed hubs refuse subscriptions.
	closed bool
}

func newHub[T any]() *hub[T] {
	return &hub[T]{
		subs: make(map[uint64]chan T),
	}
}

// Subscribe registers a new subscriber and returns its channel together
// with a cancel function. The channel is closed on cancel, on overflow
// and on hub shutdown.
func (h *hub[T]) Subscribe() (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan T, subscriberBufferSize)
	if h.closed {
		close(ch)

		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers the value to every subscriber that still has buffer
// space. Subscribers with full buffers are dropped immediately.
func (h *hub[T]) Publish(value T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		select {
		case sub <- value:
		default:
			delete(h.subs, id)
			close(sub)
		}
	}
}

// Close disconnects every subscriber and rejects future subscriptions.
func (h *hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.closed = true

	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub)
	}
}
