package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	h := newHub[int]()

	first, cancelFirst := h.Subscribe()
	defer cancelFirst()

	second, cancelSecond := h.Subscribe()
	defer cancelSecond()

	h.Publish(42)

	require.Equal(t, 42, <-first)
	require.Equal(t, 42, <-second)
}

func TestHubCancelStopsDelivery(t *testing.T) {
	t.Parallel()

	h := newHub[int]()

	ch, cancel := h.Subscribe()
	cancel()

	_, ok := <-ch
	require.False(t, ok)

	// Publishing after cancel must not panic or block.
	h.Publish(1)
}

func TestHubCutsSlowSubscriber(t *testing.T) {
	t.Parallel()

	h := newHub[int]()

	slow, cancelSlow := h.Subscribe()
	defer cancelSlow()

	for i := 0; i < subscriberBufferSize+1; i++ {
		h.Publish(i)
	}

	received := 0
	for range slow {
		received++
	}

	require.Equal(t, subscriberBufferSize, received)
}

func TestHubCloseDisconnectsEverybody(t *testing.T) {
	t.Parallel()

	h := newHub[string]()

	ch, cancel := h.Subscribe()
	defer cancel()

	h.Close()

	_, ok := <-ch
	require.False(t, ok)

	// Closed hubs hand out already-closed channels.
	late, cancelLate := h.Subscribe()
	defer cancelLate()

	_, ok = <-late
	require.False(t, ok)
}
