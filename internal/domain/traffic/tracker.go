package traffic

import "time"

const (
	// routeExpiry is how long a planned route stays usable for matching.
	routeExpiry = 3 * time.Minute
	// departureTimeout is how long a pending departure waits for its jump
	// confirmation before being counted anyway.
	departureTimeout = 5 * time.Minute
	// duplicateWindow suppresses repeated reports from the same uploader.
	duplicateWindow = 30 * time.Second
)

// Stats holds the traffic counters of one route system.
type Stats struct {
	// Commanders is the estimated number of commanders currently in-system.
	Commanders int
	// JumpsTo counts confirmed arrivals.
	JumpsTo int
	// JumpsFrom counts confirmed or timed-out departures.
	JumpsFrom int
	// FleetCarriers is the carrier count from the latest scan.
	FleetCarriers int
}

// plannedRoute is an uploader's latest route plan.
type plannedRoute struct {
	from string
	to   string
	at   time.Time
}

// departure is a planned exit from a route system awaiting confirmation.
type departure struct {
	uploader string
	at       time.Time
}

// routeKey identifies a from->to system pair.
type routeKey struct {
	from string
	to   string
}

// arrivalKey identifies an uploader's arrival (or planned arrival) target.
type arrivalKey struct {
	uploader string
	system   string
}

// Tracker correlates route plans with jump confirmations to keep per-system
// commander traffic counters. It is not safe for concurrent use; the owning
// service serializes access.
type Tracker struct {
	// stats holds the counters per route system.
	stats map[string]*Stats
	// plans holds each uploader's latest route plan.
	plans map[string]plannedRoute
	// pending holds unconfirmed departures per from->to pair.
	pending map[routeKey][]departure
	// arrivals and plannedArrivals hold recent report times for
	// duplicate suppression.
	arrivals        map[arrivalKey]time.Time
	plannedArrivals map[arrivalKey]time.Time

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewTracker builds a tracker with zeroed counters for the route systems.
func NewTracker(routeSystems []string) *Tracker {
	stats := make(map[string]*Stats, len(routeSystems))
	for _, system := range routeSystems {
		stats[system] = new(Stats)
	}

	return &Tracker{
		stats:           stats,
		plans:           make(map[string]plannedRoute),
		pending:         make(map[routeKey][]departure),
		arrivals:        make(map[arrivalKey]time.Time),
		plannedArrivals: make(map[arrivalKey]time.Time),
		now:             time.Now,
	}
}

// HandleRoutePlan records an uploader's planned jump from current to next.
// Plans from a route system become pending departures; plans into a route
// system only feed duplicate suppression.
func (t *Tracker) HandleRoutePlan(uploader, current, next string, at time.Time) {
	if uploader == "" || current == "" || next == "" {
		return
	}

	t.expirePlans()

	t.plans[uploader] = plannedRoute{from: current, to: next, at: at}

	if _, tracked := t.stats[current]; tracked {
		t.addPendingDeparture(uploader, current, next, at)
	}

	if _, tracked := t.stats[next]; tracked && next != current {
		key := arrivalKey{uploader: uploader, system: next}
		if last, ok := t.plannedArrivals[key]; ok && at.Sub(last) < duplicateWindow {
			return
		}

		t.plannedArrivals[key] = at
	}
}

// addPendingDeparture appends a departure unless it duplicates an existing
// one, replacing any other unconfirmed plan this uploader had from the
// same system.
func (t *Tracker) addPendingDeparture(uploader, current, next string, at time.Time) {
	key := routeKey{from: current, to: next}

	for _, dep := range t.pending[key] {
		// The same event relayed by different tools shares the timestamp;
		// the same uploader re-planning the same hop is also a duplicate.
		if dep.at.Equal(at) || dep.uploader == uploader {
			return
		}
	}

	// A new plan supersedes the uploader's older plans out of this system.
	for other, departures := range t.pending {
		if other.from != current {
			continue
		}

		kept := departures[:0]
		for _, dep := range departures {
			if dep.uploader != uploader {
				kept = append(kept, dep)
			}
		}

		if len(kept) == 0 {
			delete(t.pending, other)
		} else {
			t.pending[other] = kept
		}
	}

	t.pending[key] = append(t.pending[key], departure{uploader: uploader, at: at})
}

// HandleJump records a confirmed hyperspace jump landing in system.
// Arrivals at route systems increment counters; a matching pending
// departure (or the uploader's fresh plan) decrements its origin.
func (t *Tracker) HandleJump(uploader, system string, at time.Time) {
	if uploader == "" || system == "" {
		return
	}

	t.expirePlans()
	t.processOverdueDepartures()

	plan, hasPlan := t.plans[uploader]

	if stats, tracked := t.stats[system]; tracked {
		if t.isDuplicateArrival(uploader, system, at) {
			return
		}

		t.arrivals[arrivalKey{uploader: uploader, system: system}] = at
		stats.Commanders++
		stats.JumpsTo++
	}

	if t.confirmDeparture(system) {
		return
	}

	// Fallback: quick jumps confirmed through the uploader's own plan.
	if hasPlan {
		if stats, tracked := t.stats[plan.from]; tracked && plan.from != system {
			stats.JumpsFrom++
			if stats.Commanders > 0 {
				stats.Commanders--
			}
		}

		delete(t.plans, uploader)
	}
}

// isDuplicateArrival reports whether this arrival was already counted,
// either as the same relay event from another uploader (exact timestamp)
// or as a repeat from the same uploader inside the duplicate window.
func (t *Tracker) isDuplicateArrival(uploader, system string, at time.Time) bool {
	for key, seenAt := range t.arrivals {
		if key.system == system && seenAt.Equal(at) {
			return true
		}

		if key == (arrivalKey{uploader: uploader, system: system}) && at.Sub(seenAt) < duplicateWindow {
			return true
		}
	}

	return false
}

// confirmDeparture consumes the oldest pending departure into system, if
// any, decrementing its origin. At most one departure per jump.
func (t *Tracker) confirmDeparture(system string) bool {
	for from := range t.stats {
		key := routeKey{from: from, to: system}

		departures, ok := t.pending[key]
		if !ok || len(departures) == 0 {
			continue
		}

		if len(departures) == 1 {
			delete(t.pending, key)
		} else {
			t.pending[key] = departures[1:]
		}

		stats := t.stats[from]
		stats.JumpsFrom++

		if stats.Commanders > 0 {
			stats.Commanders--
		}

		return true
	}

	return false
}

// SetFleetCarriers records the carrier count from the latest scan of a
// route system.
func (t *Tracker) SetFleetCarriers(system string, count int) {
	if stats, ok := t.stats[system]; ok {
		stats.FleetCarriers = count
	}
}

// Snapshot returns a copy of the counters per route system.
func (t *Tracker) Snapshot() map[string]Stats {
	t.processOverdueDepartures()

	snapshot := make(map[string]Stats, len(t.stats))
	for system, stats := range t.stats {
		snapshot[system] = *stats
	}

	return snapshot
}

// expirePlans drops route plans older than the expiry and prunes the
// duplicate-suppression maps past their window.
func (t *Tracker) expirePlans() {
	cutoff := t.now().Add(-routeExpiry)
	for uploader, plan := range t.plans {
		if plan.at.Before(cutoff) {
			delete(t.plans, uploader)
		}
	}

	dupCutoff := t.now().Add(-duplicateWindow)
	for key, seenAt := range t.arrivals {
		if seenAt.Before(dupCutoff) {
			delete(t.arrivals, key)
		}
	}

	for key, seenAt := range t.plannedArrivals {
		if seenAt.Before(dupCutoff) {
			delete(t.plannedArrivals, key)
		}
	}
}

// processOverdueDepartures counts pending departures whose confirmation
// never arrived within the timeout.
func (t *Tracker) processOverdueDepartures() {
	cutoff := t.now().Add(-departureTimeout)

	for key, departures := range t.pending {
		kept := departures[:0]

		for _, dep := range departures {
			if !dep.at.Before(cutoff) {
				kept = append(kept, dep)
				continue
			}

			stats := t.stats[key.from]
			stats.JumpsFrom++

			if stats.Commanders > 0 {
				stats.Commanders--
			}
		}

		if len(kept) == 0 {
			delete(t.pending, key)
		} else {
			t.pending[key] = kept
		}
	}
}
