package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/domain/presence"
	"github.com/findcptn/megaship-tracker/internal/ingest"
	"github.com/findcptn/megaship-tracker/internal/logger"
)

// Reconnect backoff bounds. The delay doubles per failed attempt and
// resets after a successful connection.
const (
	initialBackoff = time.Second
	maxBackoff     = time.Minute
)

// errAddressRequired is returned when the relay address is missing.
var errAddressRequired = errors.New("relay address must be provided")

// Client subscribes to the event relay and pushes everything it extracts
// into the sink. It owns connection lifecycle and nothing else.
type Client struct {
	// address is the relay endpoint.
	address string
	// dialTimeout bounds a single connection attempt.
	dialTimeout time.Duration
	// staleCutoff drops messages whose timestamp deviates too far from
	// the local clock, in either direction.
	staleCutoff time.Duration
	// route is the set of on-route star systems.
	route map[string]struct{}
	// ships lists the canonical tracked ship names.
	ships []string
	// sink receives observations, traffic events and counters.
	sink Sink
	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewClient builds a relay client from configuration.
func NewClient(address string, cfg *config.Config, sink Sink) *Client {
	route := make(map[string]struct{}, len(cfg.RouteSystems))
	for _, system := range cfg.RouteSystems {
		route[system] = struct{}{}
	}

	ships := make([]string, 0, len(cfg.Ships))
	for _, ship := range cfg.Ships {
		ships = append(ships, ship.Name)
	}

	return &Client{
		address:     address,
		dialTimeout: cfg.Timeout,
		staleCutoff: cfg.StaleCutoff,
		route:       route,
		ships:       ships,
		sink:        sink,
		now:         time.Now,
	}
}

// Run connects to the relay and consumes frames until ctx is canceled,
// reconnecting with capped exponential backoff on any connection failure.
func (c *Client) Run(ctx context.Context) error {
	if c.address == "" {
		return errAddressRequired
	}

	ctx = logger.WithName(ctx, "feed")
	backoff := initialBackoff

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		dialer := net.Dialer{Timeout: c.dialTimeout}

		conn, err := dialer.DialContext(ctx, "tcp", c.address)
		if err != nil {
			logger.WarnKV(ctx, "Relay connection failed", "address", c.address, "error", err, "retry_in", backoff)

			if err = sleep(ctx, backoff); err != nil {
				return err
			}

			backoff = nextBackoff(backoff)

			continue
		}

		logger.InfoKV(ctx, "Connected to relay", "address", c.address)
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.WarnKV(ctx, "Relay connection lost", "error", err, "retry_in", backoff)

		if err = sleep(ctx, backoff); err != nil {
			return err
		}

		backoff = nextBackoff(backoff)
	}
}

// consume reads frames from one connection until it breaks.
// Malformed frames are dropped and logged; only I/O errors end the loop.
func (c *Client) consume(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	// Unblock the read when the context is canceled.
	watchDone := make(chan struct{})
	defer close(watchDone)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watchDone:
		}
	}()

	for {
		payload, err := readFrame(conn)
		if err != nil {
			return fmt.Errorf("read relay frame: %w", err)
		}

		if err = c.handleFrame(ctx, payload); err != nil {
			return err
		}
	}
}

// handleFrame routes one decoded relay document by its schema reference.
// The returned error is non-nil only when the sink is shutting down.
func (c *Client) handleFrame(ctx context.Context, payload []byte) error {
	c.sink.CountMessageReceived()

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		logger.DebugKV(ctx, "Dropped malformed relay document", "error", err)

		return nil
	}

	schema := strings.ToLower(env.SchemaRef)

	switch {
	case strings.Contains(schema, schemaSignals):
		return c.handleSignals(ctx, &env)
	case strings.Contains(schema, schemaNavRoute):
		c.handleNavRoute(ctx, &env)
	case strings.Contains(schema, schemaJournal):
		c.handleJournal(ctx, &env)
	}

	return nil
}

// handleSignals converts one presence scan into per-ship observations.
// An on-route scan yields an observation for every tracked ship; an
// off-route scan only reports the ships that were actually seen.
func (c *Client) handleSignals(ctx context.Context, env *envelope) error {
	var msg signalsMessage
	if err := json.Unmarshal(env.Message, &msg); err != nil || msg.SystemName == "" {
		logger.DebugKV(ctx, "Dropped malformed signals message", "error", err)

		return nil
	}

	at, err := parseTimestamp(msg.Timestamp)
	if err != nil {
		logger.DebugKV(ctx, "Dropped signals message", "error", err)

		return nil
	}

	if c.stale(at) {
		logger.DebugKV(ctx, "Dropped stale signals message", "system", msg.SystemName, "timestamp", at)

		return nil
	}

	c.sink.CountSignalsChecked(len(msg.Signals))

	seen := make(map[string]bool, len(c.ships))
	carriers := 0

	for _, sig := range msg.Signals {
		if sig.SignalType == fleetCarrierSignalType {
			carriers++

			continue
		}

		if canonical, ok := c.sink.Resolve(sig.SignalName); ok {
			seen[canonical] = true
		}
	}

	_, onRoute := c.route[msg.SystemName]
	if onRoute {
		c.sink.SetFleetCarriers(msg.SystemName, carriers)

		if carriers > 0 {
			c.sink.CountFleetCarriersSeen(carriers)
		}
	}

	for _, ship := range c.ships {
		kind := presence.KindMissing
		if seen[ship] {
			kind = presence.KindPresent
		}

		// Off the route, absence means nothing: every system the ships
		// are not in would report them missing.
		if !onRoute && kind == presence.KindMissing {
			continue
		}

		raw := ingest.RawObservation{
			Ship:      ship,
			System:    msg.SystemName,
			Timestamp: at,
			Kind:      kind,
		}

		if _, err = c.sink.Submit(ctx, raw); err != nil {
			return fmt.Errorf("submit observation: %w", err)
		}
	}

	c.sink.CountMessageProcessed()

	return nil
}

// handleJournal records commander arrivals from FSDJump events.
func (c *Client) handleJournal(ctx context.Context, env *envelope) {
	var msg journalMessage
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		logger.DebugKV(ctx, "Dropped malformed journal message", "error", err)

		return
	}

	if msg.Event != "FSDJump" || msg.StarSystem == "" {
		return
	}

	at, err := parseTimestamp(msg.Timestamp)
	if err != nil || c.stale(at) {
		return
	}

	c.sink.HandleJump(env.Header.UploaderID, msg.StarSystem, at)
	c.sink.CountMessageProcessed()
}

// handleNavRoute records plotted departures from route plans.
func (c *Client) handleNavRoute(ctx context.Context, env *envelope) {
	var msg navRouteMessage
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		logger.DebugKV(ctx, "Dropped malformed navroute message", "error", err)

		return
	}

	if len(msg.Route) < 2 {
		return
	}

	at, err := parseTimestamp(msg.Timestamp)
	if err != nil || c.stale(at) {
		return
	}

	current, next := msg.Route[0].StarSystem, msg.Route[1].StarSystem
	if current == "" || next == "" {
		return
	}

	c.sink.HandleRoutePlan(env.Header.UploaderID, current, next, at)
	c.sink.CountMessageProcessed()
}

// stale reports whether a message timestamp deviates from the local
// clock by more than the cutoff, in either direction.
func (c *Client) stale(at time.Time) bool {
	drift := c.now().Sub(at)
	if drift < 0 {
		drift = -drift
	}

	return drift > c.staleCutoff
}

// sleep waits for the delay or until ctx is canceled.
func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextBackoff doubles the delay up to the cap.
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}

	return next
}
