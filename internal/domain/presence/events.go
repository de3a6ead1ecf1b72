package presence

import "time"

// StatusEvent is emitted whenever a record's status or system changes,
// and once per increment while the miss counter is climbing. Events are
// immutable once emitted.
type StatusEvent struct {
	// ID is a unique event identifier, assigned by the emitting service.
	ID string
	// Ship is the canonical ship name.
	Ship string
	// Status is the classification after the transition.
	Status Status
	// System is the system the event refers to: the sighting system for
	// detections and irregular visits, the last known system for misses.
	System string
	// ConsecutiveMissing is the miss counter after the transition.
	ConsecutiveMissing int
	// Degrading marks the first miss of an absence episode. Advisory only;
	// viewers use it to start the signal-fade animation.
	Degrading bool
	// Timestamp is the observation time that caused the transition.
	Timestamp time.Time
}

// NotificationKind distinguishes the two push-worthy moments.
type NotificationKind int

const (
	// NotifyJumped fires exactly once when the miss threshold is crossed.
	NotifyJumped NotificationKind = iota + 1
	// NotifyAppeared fires on relocation to a different on-route system or
	// on reappearance after a long absence.
	NotifyAppeared
)

// String returns the notification kind label.
func (k NotificationKind) String() string {
	switch k {
	case NotifyJumped:
		return "jumped"
	case NotifyAppeared:
		return "appeared"
	default:
		return "unknown"
	}
}

// Notification is a trigger handed to the external dispatcher. The core
// neither knows nor cares whether delivery succeeds.
type Notification struct {
	// Kind is jumped or appeared.
	Kind NotificationKind
	// Ship is the canonical ship name.
	Ship string
	// System is the system left (jumped) or entered (appeared).
	System string
	// PreviousSystem is set on relocations: the on-route system the ship
	// was last detected in before appearing elsewhere.
	PreviousSystem string
	// Timestamp is the observation time of the triggering transition.
	Timestamp time.Time
}

// Outcome bundles the events produced by applying one observation.
// Either field may be nil; both set at most once per observation.
type Outcome struct {
	// Event is the status change, if the observation caused one.
	Event *StatusEvent
	// Notification is the push trigger, if the transition was push-worthy.
	Notification *Notification
}
