package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testShip    = "Cygnus"
	testSystem  = "Nukamba"
	testSystem2 = "Graffias"
	offRoute    = "Deep Space Anomaly"
)

// testRules returns the production thresholds over a two-system route.
func testRules() Rules {
	return NewRules([]string{testSystem, testSystem2}, 6, 10*time.Minute)
}

// obsAt builds an observation n polling cycles (30s each) after a fixed base time.
func obsAt(system string, kind SignalKind, n int) Observation {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	return Observation{
		Ship:      testShip,
		System:    system,
		Timestamp: base.Add(time.Duration(n) * 30 * time.Second),
		Kind:      kind,
	}
}

// run applies the observations in order and collects every emitted event
// and notification.
func run(t *testing.T, rules Rules, rec *Record, observations ...Observation) (*Record, []StatusEvent, []Notification) {
	t.Helper()

	var (
		events        []StatusEvent
		notifications []Notification
	)

	for _, obs := range observations {
		var out Outcome

		rec, out = rules.Apply(rec, obs)
		if out.Event != nil {
			events = append(events, *out.Event)
		}

		if out.Notification != nil {
			notifications = append(notifications, *out.Notification)
		}
	}

	return rec, events, notifications
}

// TestApply_FirstDetection verifies the initial sighting transitions to DETECTED.
func TestApply_FirstDetection(t *testing.T) {
	t.Parallel()

	rules := testRules()

	rec, out := rules.Apply(NewRecord(testShip), obsAt(testSystem, KindPresent, 0))

	require.Equal(t, StatusDetected, rec.Status)
	require.Equal(t, testSystem, rec.System)
	require.Zero(t, rec.ConsecutiveMissing)
	require.NotNil(t, out.Event)
	require.Equal(t, StatusDetected, out.Event.Status)

	// First sighting is not a relocation, nothing to push.
	require.Nil(t, out.Notification)
}

// TestApply_RepeatDetectionIsSilent ensures a repeated sighting at the same
// system only refreshes the detection timestamp.
func TestApply_RepeatDetectionIsSilent(t *testing.T) {
	t.Parallel()

	rules := testRules()

	rec, events, notifications := run(t, rules, NewRecord(testShip),
		obsAt(testSystem, KindPresent, 0),
		obsAt(testSystem, KindPresent, 1),
		obsAt(testSystem, KindPresent, 2),
	)

	require.Equal(t, StatusDetected, rec.Status)
	require.Equal(t, obsAt(testSystem, KindPresent, 2).Timestamp, rec.LastDetectedAt)
	require.Len(t, events, 1)
	require.Empty(t, notifications)
}

// TestApply_FiveMissesThenDetection covers the debounce: five misses and a
// reappearance never produce a jumped notification.
func TestApply_FiveMissesThenDetection(t *testing.T) {
	t.Parallel()

	rules := testRules()

	observations := []Observation{obsAt(testSystem, KindPresent, 0)}
	for i := 1; i <= 5; i++ {
		observations = append(observations, obsAt(testSystem, KindMissing, i))
	}

	observations = append(observations, obsAt(testSystem, KindPresent, 6))

	rec, events, notifications := run(t, rules, NewRecord(testShip), observations...)

	require.Equal(t, StatusDetected, rec.Status)
	require.Equal(t, testSystem, rec.System)
	require.Zero(t, rec.ConsecutiveMissing)
	require.True(t, rec.MissingSince.IsZero())
	require.Empty(t, notifications)

	// Detection, five SIGNAL_MISSING increments, detection again.
	require.Len(t, events, 7)
	require.Equal(t, StatusSignalMissing, events[1].Status)
	require.True(t, events[1].Degrading)
	require.False(t, events[2].Degrading)
	require.Equal(t, StatusDetected, events[6].Status)
}

// TestApply_SixMissesConfirmJump covers the threshold crossing: exactly one
// jumped notification at the sixth miss, none after.
func TestApply_SixMissesConfirmJump(t *testing.T) {
	t.Parallel()

	rules := testRules()

	observations := []Observation{obsAt(testSystem, KindPresent, 0)}
	for i := 1; i <= 8; i++ {
		observations = append(observations, obsAt(testSystem, KindMissing, i))
	}

	rec, events, notifications := run(t, rules, NewRecord(testShip), observations...)

	require.Equal(t, StatusMissing, rec.Status)
	require.Equal(t, 8, rec.ConsecutiveMissing)
	require.Equal(t, obsAt(testSystem, KindMissing, 6).Timestamp, rec.MissingSince)

	require.Len(t, notifications, 1)
	require.Equal(t, NotifyJumped, notifications[0].Kind)
	require.Equal(t, testSystem, notifications[0].System)
	require.Equal(t, obsAt(testSystem, KindMissing, 6).Timestamp, notifications[0].Timestamp)

	// Detection + misses 1..5 + the MISSING transition; misses 7 and 8 are silent.
	require.Len(t, events, 7)
	require.Equal(t, StatusMissing, events[6].Status)
	require.Equal(t, 6, events[6].ConsecutiveMissing)
}

// TestApply_Relocation verifies detection at a different route system fires
// an appeared notification carrying the previous system.
func TestApply_Relocation(t *testing.T) {
	t.Parallel()

	rules := testRules()

	_, _, notifications := run(t, rules, NewRecord(testShip),
		obsAt(testSystem, KindPresent, 0),
		obsAt(testSystem2, KindPresent, 1),
	)

	require.Len(t, notifications, 1)
	require.Equal(t, NotifyAppeared, notifications[0].Kind)
	require.Equal(t, testSystem2, notifications[0].System)
	require.Equal(t, testSystem, notifications[0].PreviousSystem)
}

// TestApply_LongAbsenceReappearance verifies a same-system reappearance after
// a long absence is still notification-worthy, without a previous system.
func TestApply_LongAbsenceReappearance(t *testing.T) {
	t.Parallel()

	rules := testRules()

	observations := []Observation{obsAt(testSystem, KindPresent, 0)}
	for i := 1; i <= 6; i++ {
		observations = append(observations, obsAt(testSystem, KindMissing, i))
	}

	rec, _, notifications := run(t, rules, NewRecord(testShip), observations...)
	require.Equal(t, StatusMissing, rec.Status)
	require.Len(t, notifications, 1) // The jumped notification.

	// Reappears in the same system 15 minutes after the threshold crossing.
	reappearance := Observation{
		Ship:      testShip,
		System:    testSystem,
		Timestamp: rec.MissingSince.Add(15 * time.Minute),
		Kind:      KindPresent,
	}

	rec, out := rules.Apply(rec, reappearance)

	require.Equal(t, StatusDetected, rec.Status)
	require.NotNil(t, out.Notification)
	require.Equal(t, NotifyAppeared, out.Notification.Kind)
	require.Equal(t, testSystem, out.Notification.System)
	require.Empty(t, out.Notification.PreviousSystem)
}

// TestApply_ShortAbsenceReappearance ensures a quick same-system reappearance
// after the threshold emits a status change but no notification.
func TestApply_ShortAbsenceReappearance(t *testing.T) {
	t.Parallel()

	rules := testRules()

	observations := []Observation{obsAt(testSystem, KindPresent, 0)}
	for i := 1; i <= 6; i++ {
		observations = append(observations, obsAt(testSystem, KindMissing, i))
	}

	rec, _, _ := run(t, rules, NewRecord(testShip), observations...)

	reappearance := Observation{
		Ship:      testShip,
		System:    testSystem,
		Timestamp: rec.MissingSince.Add(2 * time.Minute),
		Kind:      KindPresent,
	}

	rec, out := rules.Apply(rec, reappearance)

	require.Equal(t, StatusDetected, rec.Status)
	require.NotNil(t, out.Event)
	require.Nil(t, out.Notification)
}

// TestApply_IrregularVisit verifies off-route sightings always classify as
// IRREGULAR_VISIT without touching the on-route system.
func TestApply_IrregularVisit(t *testing.T) {
	t.Parallel()

	rules := testRules()

	for _, prior := range []Status{StatusNotDetected, StatusDetected, StatusSignalMissing, StatusMissing} {
		rec := NewRecord(testShip)
		rec.Status = prior

		if prior != StatusNotDetected {
			rec.System = testSystem
		}

		next, out := rules.Apply(rec, obsAt(offRoute, KindPresent, 0))

		require.Equal(t, StatusIrregularVisit, next.Status, "prior status %s", prior)
		require.Equal(t, offRoute, next.IrregularSystem)
		require.Equal(t, rec.System, next.System, "on-route system must not change")
		require.Zero(t, next.ConsecutiveMissing)
		require.NotNil(t, out.Event)
		require.Equal(t, offRoute, out.Event.System)
	}
}

// TestApply_OffRouteMissIsNoOp ensures a miss at an off-route system leaves
// the record untouched.
func TestApply_OffRouteMissIsNoOp(t *testing.T) {
	t.Parallel()

	rules := testRules()

	rec, _ := rules.Apply(NewRecord(testShip), obsAt(testSystem, KindPresent, 0))

	next, out := rules.Apply(rec, obsAt(offRoute, KindMissing, 1))

	require.Equal(t, rec, next)
	require.Nil(t, out.Event)
	require.Nil(t, out.Notification)
}

// TestApply_MissElsewhereIsNoOp ensures a scan of another route system says
// nothing about the ship.
func TestApply_MissElsewhereIsNoOp(t *testing.T) {
	t.Parallel()

	rules := testRules()

	rec, _ := rules.Apply(NewRecord(testShip), obsAt(testSystem, KindPresent, 0))

	next, out := rules.Apply(rec, obsAt(testSystem2, KindMissing, 1))

	require.Equal(t, rec, next)
	require.Nil(t, out.Event)
	require.Nil(t, out.Notification)
}

// TestApply_MissesCountAfterIrregularVisit covers the counter reset on an
// irregular sighting: on-route misses afterwards count from scratch.
func TestApply_MissesCountAfterIrregularVisit(t *testing.T) {
	t.Parallel()

	rules := testRules()

	observations := []Observation{
		obsAt(testSystem, KindPresent, 0),
		obsAt(testSystem, KindMissing, 1),
		obsAt(testSystem, KindMissing, 2),
		obsAt(offRoute, KindPresent, 3),
		obsAt(testSystem, KindMissing, 4),
	}

	rec, _, _ := run(t, rules, NewRecord(testShip), observations...)

	require.Equal(t, StatusSignalMissing, rec.Status)
	require.Equal(t, 1, rec.ConsecutiveMissing)
}

// TestApply_Totality sweeps arbitrary observation sequences and asserts the
// status is always one of the five enumerated states and the DETECTED
// invariant holds.
func TestApply_Totality(t *testing.T) {
	t.Parallel()

	rules := testRules()
	systems := []string{testSystem, testSystem2, offRoute, ""}
	kinds := []SignalKind{KindPresent, KindMissing, SignalKind(0), SignalKind(99)}

	rec := NewRecord(testShip)
	for i := range 256 {
		obs := obsAt(systems[i%len(systems)], kinds[(i/3)%len(kinds)], i)

		rec, _ = rules.Apply(rec, obs)

		require.Contains(t, []Status{
			StatusNotDetected,
			StatusDetected,
			StatusSignalMissing,
			StatusMissing,
			StatusIrregularVisit,
		}, rec.Status)

		if rec.Status == StatusDetected {
			require.NotEmpty(t, rec.System)
		}
	}
}

// TestApply_DoesNotMutateInput verifies Apply leaves the previous record intact.
func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rules := testRules()

	rec := NewRecord(testShip)
	before := rec.Clone()

	_, _ = rules.Apply(rec, obsAt(testSystem, KindPresent, 0))

	require.Equal(t, before, rec)
}
