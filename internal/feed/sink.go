package feed

import (
	"context"
	"time"

	"github.com/findcptn/megaship-tracker/internal/ingest"
)

// Sink receives everything the feed extracts from the relay stream.
// The tracking service implements it.
type Sink interface {
	// Submit forwards one presence observation for a tracked ship.
	Submit(ctx context.Context, raw ingest.RawObservation) (ingest.Result, error)
	// Resolve maps a signal name to a canonical ship name, if tracked.
	Resolve(name string) (string, bool)

	// HandleJump records a commander's completed jump.
	HandleJump(uploader, system string, at time.Time)
	// HandleRoutePlan records a commander's plotted route step.
	HandleRoutePlan(uploader, current, next string, at time.Time)
	// SetFleetCarriers records the fleet-carrier count seen in a route system.
	SetFleetCarriers(system string, count int)

	CountMessageReceived()
	CountMessageProcessed()
	CountSignalsChecked(n int)
	CountFleetCarriersSeen(n int)
}

// Stats is a point-in-time copy of the feed counters.
type Stats struct {
	// MessagesReceived counts relay frames seen, including dropped ones.
	MessagesReceived int64
	// MessagesProcessed counts frames that made it past schema routing.
	MessagesProcessed int64
	// SignalsChecked counts individual signals inspected for ship names.
	SignalsChecked int64
	// FleetCarriersSeen counts fleet-carrier signals observed on route.
	FleetCarriersSeen int64
}
