package tracker

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/findcptn/megaship-tracker/internal/domain/presence"
)

func ringIDs(events []presence.StatusEvent) []string {
	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}

	return ids
}

func TestEventRingKeepsChronologicalOrder(t *testing.T) {
	t.Parallel()

	ring := newEventRing(3)
	for i := 1; i <= 2; i++ {
		ring.Append(presence.StatusEvent{ID: strconv.Itoa(i)})
	}

	require.Equal(t, []string{"1", "2"}, ringIDs(ring.Snapshot(0)))
}

func TestEventRingEvictsOldest(t *testing.T) {
	t.Parallel()

	ring := newEventRing(3)
	for i := 1; i <= 5; i++ {
		ring.Append(presence.StatusEvent{ID: strconv.Itoa(i)})
	}

	require.Equal(t, []string{"3", "4", "5"}, ringIDs(ring.Snapshot(0)))
}

func TestEventRingLimit(t *testing.T) {
	t.Parallel()

	ring := newEventRing(5)
	for i := 1; i <= 4; i++ {
		ring.Append(presence.StatusEvent{ID: strconv.Itoa(i)})
	}

	require.Equal(t, []string{"3", "4"}, ringIDs(ring.Snapshot(2)))
	require.Equal(t, []string{"1", "2", "3", "4"}, ringIDs(ring.Snapshot(10)))
}
