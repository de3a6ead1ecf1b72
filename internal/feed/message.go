package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// Schema fragments matched against $schemaRef, case-insensitively.
const (
	schemaSignals  = "fsssignaldiscovered"
	schemaJournal  = "journal"
	schemaNavRoute = "navroute"
)

// fleetCarrierSignalType marks fleet-carrier signals in presence scans.
const fleetCarrierSignalType = "FleetCarrier"

// envelope is the outer relay document.
type envelope struct {
	SchemaRef string          `json:"$schemaRef"`
	Header    envelopeHeader  `json:"header"`
	Message   json.RawMessage `json:"message"`
}

type envelopeHeader struct {
	UploaderID   string `json:"uploaderID"`
	SoftwareName string `json:"softwareName"`
}

// signalsMessage is an FSSSignalDiscovered batch for one star system.
type signalsMessage struct {
	Timestamp  string   `json:"timestamp"`
	SystemName string   `json:"SystemName"`
	Signals    []signal `json:"signals"`
}

type signal struct {
	SignalName string `json:"SignalName"`
	SignalType string `json:"SignalType"`
}

// journalMessage carries the journal fields the tracker cares about.
// Only FSDJump events are acted on.
type journalMessage struct {
	Timestamp  string `json:"timestamp"`
	Event      string `json:"event"`
	StarSystem string `json:"StarSystem"`
}

// navRouteMessage is a plotted route. The first two entries are the
// commander's current system and the next destination.
type navRouteMessage struct {
	Timestamp string      `json:"timestamp"`
	Route     []routeStep `json:"Route"`
}

type routeStep struct {
	StarSystem string `json:"StarSystem"`
}

// parseTimestamp parses the relay's RFC 3339 timestamps.
func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}

	return ts.UTC(), nil
}
