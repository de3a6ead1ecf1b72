package tracker

import (
	"sync"

	"github.com/findcptn/megaship-tracker/internal/domain/presence"
)

// eventRing is a fixed-capacity history of status events.
// Once full, the oldest entry is overwritten.
type eventRing struct {
	// mu protects the buffer; both ship workers append here.
	mu sync.Mutex
	// buf holds up to cap(buf) events.
	buf []presence.StatusEvent
	// next is the index the following append will write to.
	next int
	// full reports whether the buffer has wrapped at least once.
	full bool
}

// newEventRing creates a ring holding at most capacity events.
func newEventRing(capacity int) *eventRing {
	return &eventRing{
		buf: make([]presence.StatusEvent, capacity),
	}
}

// Append stores the event, evicting the oldest one when the ring is full.
func (r *eventRing) Append(event presence.StatusEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = event
	r.next++

	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// Snapshot returns the retained events in chronological order.
// A positive limit caps the result to the most recent events.
func (r *eventRing) Snapshot(limit int) []presence.StatusEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ordered []presence.StatusEvent
	if r.full {
		ordered = make([]presence.StatusEvent, 0, len(r.buf))
		ordered = append(ordered, r.buf[r.next:]...)
		ordered = append(ordered, r.buf[:r.next]...)
	} else {
		ordered = make([]presence.StatusEvent, r.next)
		copy(ordered, r.buf[:r.next])
	}

	if limit > 0 && limit < len(ordered) {
		ordered = ordered[len(ordered)-limit:]
	}

	return ordered
}
