package presence

import "time"

// Status classifies where a tracked ship currently is, as far as the
// signal stream allows us to tell.
type Status int

const (
	// StatusNotDetected is the initial state before any sighting.
	StatusNotDetected Status = iota
	// StatusDetected means the ship was seen at an on-route system.
	StatusDetected
	// StatusSignalMissing means recent scans of the ship's system did not
	// include it, but not yet often enough to call it gone.
	StatusSignalMissing
	// StatusMissing means the miss threshold was crossed: the ship has
	// confidently left its last known system.
	StatusMissing
	// StatusIrregularVisit means the ship was sighted at a system outside
	// the enumerated route.
	StatusIrregularVisit
)

// String returns the human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusNotDetected:
		return "NOT_DETECTED"
	case StatusDetected:
		return "DETECTED"
	case StatusSignalMissing:
		return "SIGNAL_MISSING"
	case StatusMissing:
		return "MISSING"
	case StatusIrregularVisit:
		return "IRREGULAR_VISIT"
	default:
		return "UNKNOWN"
	}
}

// SignalKind distinguishes positive detections from confirmed absences
// in a scan of a system.
type SignalKind int

const (
	// KindPresent is a positive detection of the ship in a system scan.
	KindPresent SignalKind = iota + 1
	// KindMissing means a scan of the system did not include the ship.
	KindMissing
)

// String returns the signal kind label.
func (k SignalKind) String() string {
	switch k {
	case KindPresent:
		return "PRESENT"
	case KindMissing:
		return "MISSING"
	default:
		return "UNKNOWN"
	}
}

// Observation is one normalized input fact: a ship was (or was not) seen
// in a system at a point in time. Observations are never mutated.
type Observation struct {
	// Ship is the canonical name of the tracked ship.
	Ship string
	// System is the scanned star system.
	System string
	// Timestamp is when the scan was taken, not when it arrived.
	Timestamp time.Time
	// Kind says whether the scan included the ship.
	Kind SignalKind
}

// Record is the presence snapshot of a single tracked ship. Exactly one
// record exists per ship; it is mutated only by applying one observation
// at a time through Rules.Apply.
type Record struct {
	// Ship is the canonical ship name.
	Ship string
	// Status is the current classification.
	Status Status
	// System is the last known on-route system, empty until first detection.
	// Non-empty whenever Status is StatusDetected.
	System string
	// IrregularSystem is the off-route system of the latest anomalous
	// sighting, set only while Status is StatusIrregularVisit.
	IrregularSystem string
	// ConsecutiveMissing counts misses since the last positive detection.
	ConsecutiveMissing int
	// LastDetectedAt is the timestamp of the latest positive detection.
	LastDetectedAt time.Time
	// MissingSince is set when the miss threshold is crossed and cleared
	// by the next positive detection.
	MissingSince time.Time
}

// NewRecord returns the initial record for a ship.
func NewRecord(ship string) *Record {
	return &Record{
		Ship:   ship,
		Status: StatusNotDetected,
	}
}

// Clone returns a copy of the record to avoid leaking internal references.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}
