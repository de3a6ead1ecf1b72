package ingest

import (
	"strings"
	"sync"
	"time"

	"github.com/findcptn/megaship-tracker/internal/domain/presence"
)

// Result says what the normalizer did with a raw observation.
type Result int

const (
	// Accepted means the observation was normalized and forwarded.
	Accepted Result = iota
	// DroppedMalformed means a required field was empty or invalid.
	DroppedMalformed
	// DroppedUnknownShip means the name matched no tracked ship or alias.
	DroppedUnknownShip
	// DroppedDuplicate means the same observation was already seen within
	// the dedup window.
	DroppedDuplicate
)

// String returns the result label for logs and API drop reasons.
func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case DroppedMalformed:
		return "malformed"
	case DroppedUnknownShip:
		return "unknown ship"
	case DroppedDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// RawObservation is an observation as it arrives from the boundary, before
// alias resolution and duplicate suppression.
type RawObservation struct {
	// Ship is the name as reported upstream, any known alias or casing.
	Ship string
	// System is the scanned star system.
	System string
	// Timestamp is the scan time.
	Timestamp time.Time
	// Kind says whether the scan included the ship.
	Kind presence.SignalKind
}

// dedupKey identifies one unique observation within the dedup window.
type dedupKey struct {
	ship   string
	system string
	unix   int64
}

// Normalizer resolves ship aliases and suppresses duplicates. It is the only
// stateful part of the ingest path, and its state is just a set of recently
// seen observation keys bounded by wall-clock age.
type Normalizer struct {
	// aliases maps lowercased names and aliases to the canonical ship name.
	aliases map[string]string
	// window bounds the dedup cache by age.
	window time.Duration

	// mu protects the dedup cache.
	mu sync.Mutex
	// seen holds recently accepted observation keys and their arrival time.
	seen map[dedupKey]time.Time
	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewNormalizer builds a normalizer for the given canonical-name-to-aliases
// mapping and dedup window.
func NewNormalizer(ships map[string][]string, window time.Duration) *Normalizer {
	aliases := make(map[string]string, len(ships)*2)
	for name, shipAliases := range ships {
		aliases[strings.ToLower(name)] = name
		for _, alias := range shipAliases {
			aliases[strings.ToLower(alias)] = name
		}
	}

	return &Normalizer{
		aliases: aliases,
		window:  window,
		seen:    make(map[dedupKey]time.Time),
		now:     time.Now,
	}
}

// Resolve maps a reported name to the canonical ship name, if tracked.
func (n *Normalizer) Resolve(name string) (string, bool) {
	canonical, ok := n.aliases[strings.ToLower(strings.TrimSpace(name))]

	return canonical, ok
}

// Normalize validates a raw observation and returns its normalized form.
// The observation is forwarded downstream only when the result is Accepted.
func (n *Normalizer) Normalize(raw RawObservation) (presence.Observation, Result) {
	var obs presence.Observation

	if raw.System == "" || raw.Timestamp.IsZero() ||
		(raw.Kind != presence.KindPresent && raw.Kind != presence.KindMissing) {
		return obs, DroppedMalformed
	}

	canonical, ok := n.Resolve(raw.Ship)
	if !ok {
		return obs, DroppedUnknownShip
	}

	key := dedupKey{
		ship:   canonical,
		system: raw.System,
		unix:   raw.Timestamp.Unix(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	n.prune(now)

	if _, dup := n.seen[key]; dup {
		return obs, DroppedDuplicate
	}

	n.seen[key] = now

	obs = presence.Observation{
		Ship:      canonical,
		System:    raw.System,
		Timestamp: raw.Timestamp,
		Kind:      raw.Kind,
	}

	return obs, Accepted
}

// prune evicts cache entries older than the window. Called with mu held.
func (n *Normalizer) prune(now time.Time) {
	cutoff := now.Add(-n.window)
	for key, seenAt := range n.seen {
		if seenAt.Before(cutoff) {
			delete(n.seen, key)
		}
	}
}
