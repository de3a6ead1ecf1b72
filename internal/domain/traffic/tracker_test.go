package traffic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	sysA = "Nukamba"
	sysB = "Graffias"
	sysC = "Marfic"
)

// newTestTracker returns a tracker over three route systems with a
// controllable clock starting at a fixed instant.
func newTestTracker() (*Tracker, *time.Time) {
	clock := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tr := NewTracker([]string{sysA, sysB, sysC})
	tr.now = func() time.Time { return clock }

	return tr, &clock
}

// TestHandleJump_Arrival counts a confirmed arrival at a route system.
func TestHandleJump_Arrival(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	tr.HandleJump("uploader-1", sysA, *clock)

	snapshot := tr.Snapshot()
	require.Equal(t, 1, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsTo)
	require.Zero(t, snapshot[sysA].JumpsFrom)
}

// TestHandleJump_DuplicateSuppression drops the same event from other
// uploaders (exact timestamp) and quick repeats from the same uploader.
func TestHandleJump_DuplicateSuppression(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	tr.HandleJump("uploader-1", sysA, *clock)

	// Same relay event through a different tool.
	tr.HandleJump("uploader-2", sysA, *clock)

	// Same uploader again inside the window.
	tr.HandleJump("uploader-1", sysA, clock.Add(10*time.Second))

	snapshot := tr.Snapshot()
	require.Equal(t, 1, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsTo)
}

// TestPlannedDeparture_ConfirmedByJump verifies the plan-then-jump flow
// decrements the origin and increments the destination.
func TestPlannedDeparture_ConfirmedByJump(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	// Two commanders settle in sysA.
	tr.HandleJump("uploader-1", sysA, *clock)
	tr.HandleJump("uploader-2", sysA, clock.Add(time.Second))

	// One plans a hop to sysB and confirms it.
	tr.HandleRoutePlan("uploader-1", sysA, sysB, clock.Add(time.Minute))
	tr.HandleJump("uploader-1", sysB, clock.Add(2*time.Minute))

	snapshot := tr.Snapshot()
	require.Equal(t, 1, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsFrom)
	require.Equal(t, 1, snapshot[sysB].Commanders)
	require.Equal(t, 1, snapshot[sysB].JumpsTo)
}

// TestPlannedDeparture_TimesOut verifies an unconfirmed departure is counted
// after the timeout.
func TestPlannedDeparture_TimesOut(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	tr.HandleJump("uploader-1", sysA, *clock)
	tr.HandleRoutePlan("uploader-1", sysA, "Somewhere Else", clock.Add(time.Minute))

	// Not yet overdue.
	*clock = clock.Add(3 * time.Minute)
	require.Equal(t, 1, tr.Snapshot()[sysA].Commanders)

	// Past the departure timeout.
	*clock = clock.Add(4 * time.Minute)

	snapshot := tr.Snapshot()
	require.Zero(t, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsFrom)
}

// TestHandleRoutePlan_DuplicatePlans ensures replans and multi-tool reports
// do not inflate the pending departures.
func TestHandleRoutePlan_DuplicatePlans(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	tr.HandleJump("uploader-1", sysA, *clock)
	tr.HandleJump("uploader-2", sysA, clock.Add(time.Second))

	planAt := clock.Add(time.Minute)

	// The same plan reported twice by the same uploader, once by another tool
	// with an identical timestamp.
	tr.HandleRoutePlan("uploader-1", sysA, sysB, planAt)
	tr.HandleRoutePlan("uploader-1", sysA, sysB, planAt.Add(time.Second))
	tr.HandleRoutePlan("uploader-9", sysA, sysB, planAt)

	// Only one departure fires on confirmation.
	tr.HandleJump("uploader-1", sysB, clock.Add(2*time.Minute))

	snapshot := tr.Snapshot()
	require.Equal(t, 1, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsFrom)
}

// TestCommandersNeverNegative ensures departures without arrivals clamp at zero.
func TestCommandersNeverNegative(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()

	tr.HandleRoutePlan("uploader-1", sysA, sysB, *clock)
	tr.HandleJump("uploader-1", sysB, clock.Add(time.Minute))

	snapshot := tr.Snapshot()
	require.Zero(t, snapshot[sysA].Commanders)
	require.Equal(t, 1, snapshot[sysA].JumpsFrom)
}

// TestSetFleetCarriers records the latest scan count and ignores systems
// outside the route.
func TestSetFleetCarriers(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker()

	tr.SetFleetCarriers(sysA, 7)
	tr.SetFleetCarriers("Somewhere Else", 3)

	snapshot := tr.Snapshot()
	require.Equal(t, 7, snapshot[sysA].FleetCarriers)
	require.Len(t, snapshot, 3)
}
