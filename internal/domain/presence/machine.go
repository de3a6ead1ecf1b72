package presence

import "time"

// Rules holds the configuration the transition function depends on: the
// enumerated route and the two thresholds. Rules values are immutable and
// safe to share between ships.
type Rules struct {
	// route is the set of on-route candidate systems.
	route map[string]struct{}
	// missingThreshold is the consecutive-miss count confirming a jump.
	missingThreshold int
	// longAbsence is the absence duration after which a same-system
	// reappearance is still notification-worthy.
	longAbsence time.Duration
}

// NewRules builds the transition rules for the given route and thresholds.
func NewRules(routeSystems []string, missingThreshold int, longAbsence time.Duration) Rules {
	route := make(map[string]struct{}, len(routeSystems))
	for _, system := range routeSystems {
		route[system] = struct{}{}
	}

	return Rules{
		route:            route,
		missingThreshold: missingThreshold,
		longAbsence:      longAbsence,
	}
}

// OnRoute reports whether the system belongs to the enumerated route.
func (r Rules) OnRoute(system string) bool {
	_, ok := r.route[system]

	return ok
}

// MissingThreshold returns the consecutive-miss count confirming a jump.
func (r Rules) MissingThreshold() int {
	return r.missingThreshold
}

// Apply advances a ship's record by one observation. It is a pure function:
// the previous record is never mutated, and every observation has a defined
// transition. The returned outcome carries at most one status event and one
// notification trigger.
func (r Rules) Apply(prev *Record, obs Observation) (*Record, Outcome) {
	if !r.OnRoute(obs.System) {
		return r.applyOffRoute(prev, obs)
	}

	if obs.Kind == KindPresent {
		return r.applyDetection(prev, obs)
	}

	return r.applyMiss(prev, obs)
}

// applyOffRoute classifies positive sightings outside the route as
// irregular visits. A miss at an off-route system carries no information
// about the ship and leaves the record untouched.
func (r Rules) applyOffRoute(prev *Record, obs Observation) (*Record, Outcome) {
	next := prev.Clone()

	if obs.Kind != KindPresent {
		return next, Outcome{}
	}

	repeat := prev.Status == StatusIrregularVisit && prev.IrregularSystem == obs.System

	next.Status = StatusIrregularVisit
	next.IrregularSystem = obs.System
	next.ConsecutiveMissing = 0
	next.LastDetectedAt = obs.Timestamp

	if repeat {
		return next, Outcome{}
	}

	return next, Outcome{
		Event: &StatusEvent{
			Ship:      obs.Ship,
			Status:    StatusIrregularVisit,
			System:    obs.System,
			Timestamp: obs.Timestamp,
		},
	}
}

// applyDetection handles a positive on-route sighting: reappearances,
// relocations and refreshes of an already detected ship.
func (r Rules) applyDetection(prev *Record, obs Observation) (*Record, Outcome) {
	// Relocation: the ship was last detected at a different on-route system.
	relocated := prev.System != "" && prev.System != obs.System

	// A round trip to the same system still deserves a notification when
	// the ship had been gone long enough.
	longAbsence := prev.Status == StatusMissing &&
		!prev.MissingSince.IsZero() &&
		obs.Timestamp.Sub(prev.MissingSince) > r.longAbsence

	changed := prev.Status != StatusDetected || prev.System != obs.System

	next := prev.Clone()
	next.Status = StatusDetected
	next.System = obs.System
	next.IrregularSystem = ""
	next.ConsecutiveMissing = 0
	next.MissingSince = time.Time{}
	next.LastDetectedAt = obs.Timestamp

	var out Outcome

	if changed {
		out.Event = &StatusEvent{
			Ship:      obs.Ship,
			Status:    StatusDetected,
			System:    obs.System,
			Timestamp: obs.Timestamp,
		}
	}

	if relocated || longAbsence {
		notification := &Notification{
			Kind:      NotifyAppeared,
			Ship:      obs.Ship,
			System:    obs.System,
			Timestamp: obs.Timestamp,
		}
		if relocated {
			notification.PreviousSystem = prev.System
		}

		out.Notification = notification
	}

	return next, out
}

// applyMiss handles an on-route scan that did not include the ship.
func (r Rules) applyMiss(prev *Record, obs Observation) (*Record, Outcome) {
	next := prev.Clone()

	// A scan of some other route system says nothing about the ship's
	// current location.
	if prev.System != "" && prev.System != obs.System {
		return next, Outcome{}
	}

	next.ConsecutiveMissing = prev.ConsecutiveMissing + 1

	switch {
	case next.ConsecutiveMissing < r.missingThreshold:
		next.Status = StatusSignalMissing

		return next, Outcome{
			Event: &StatusEvent{
				Ship:               obs.Ship,
				Status:             StatusSignalMissing,
				System:             obs.System,
				ConsecutiveMissing: next.ConsecutiveMissing,
				Degrading:          next.ConsecutiveMissing == 1,
				Timestamp:          obs.Timestamp,
			},
		}

	case next.ConsecutiveMissing == r.missingThreshold:
		// Threshold crossing: the only moment a jumped notification fires.
		next.Status = StatusMissing
		next.MissingSince = obs.Timestamp

		return next, Outcome{
			Event: &StatusEvent{
				Ship:               obs.Ship,
				Status:             StatusMissing,
				System:             obs.System,
				ConsecutiveMissing: next.ConsecutiveMissing,
				Timestamp:          obs.Timestamp,
			},
			Notification: &Notification{
				Kind:      NotifyJumped,
				Ship:      obs.Ship,
				System:    obs.System,
				Timestamp: obs.Timestamp,
			},
		}

	default:
		// Already confirmed missing. The counter keeps climbing so the
		// absence episode is visible in snapshots, but nothing re-fires.
		return next, Outcome{}
	}
}
