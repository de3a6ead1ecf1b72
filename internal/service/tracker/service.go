package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/domain/presence"
	"github.com/findcptn/megaship-tracker/internal/domain/traffic"
	"github.com/findcptn/megaship-tracker/internal/feed"
	"github.com/findcptn/megaship-tracker/internal/ingest"
	"github.com/findcptn/megaship-tracker/internal/logger"
	repo "github.com/findcptn/megaship-tracker/internal/repository/state"
)

// workerQueueSize bounds the per-ship observation queue. Submitters block
// once it fills, which keeps arrival order intact under bursts.
const workerQueueSize = 64

// Service holds the tracked presence records and orchestrates everything
// around them: normalization, the state machine, event history, fan-out
// and persistence. One worker goroutine per ship applies observations
// serially, so records never need cross-ship coordination.
type Service struct {
	// rules is the pure presence state machine.
	rules presence.Rules
	// normalizer resolves aliases and suppresses duplicates at the edge.
	normalizer *ingest.Normalizer
	// repo persists records across restarts. May be nil.
	repo repo.Repository

	// ring keeps the bounded recent event history.
	ring *eventRing
	// events fans status events out to stream subscribers.
	events *hub[presence.StatusEvent]
	// notifications fans jump/appearance notifications out to dispatchers.
	notifications *hub[presence.Notification]

	// mu protects records. Each ship's record has a single writer (its
	// worker); the lock exists for snapshot readers.
	mu sync.RWMutex
	// records maps canonical ship names to their current presence record.
	records map[string]*presence.Record
	// workers maps canonical ship names to their observation queues.
	workers map[string]chan presence.Observation

	// trafficMu serializes access to the traffic tracker.
	trafficMu sync.Mutex
	// traffic aggregates commander movement per route system.
	traffic *traffic.Tracker

	// Feed counters, incremented by the relay client.
	messagesReceived  atomic.Int64
	messagesProcessed atomic.Int64
	signalsChecked    atomic.Int64
	fleetCarriersSeen atomic.Int64

	// newID mints status event IDs, replaceable in tests.
	newID func() string
	// wg tracks the ship workers for Close.
	wg sync.WaitGroup
}

// ErrShutdown is returned when an observation arrives after shutdown began.
var ErrShutdown = errors.New("tracker is shutting down")

// NewService builds the tracker from configuration, seeds records from the
// repository when one is provided, and starts one worker per tracked ship.
// Workers exit when ctx is canceled; call Close afterwards to wait for them.
func NewService(ctx context.Context, cfg *config.Config, repository repo.Repository) (*Service, error) {
	ships := make(map[string][]string, len(cfg.Ships))
	for _, ship := range cfg.Ships {
		ships[ship.Name] = ship.Aliases
	}

	capacity := cfg.RecentEventsCapacity
	if capacity <= 0 {
		capacity = config.DefaultRecentEventsCapacity
	}

	s := &Service{
		rules:         presence.NewRules(cfg.RouteSystems, cfg.MissingThreshold, cfg.LongAbsence),
		normalizer:    ingest.NewNormalizer(ships, cfg.DedupWindow),
		repo:          repository,
		ring:          newEventRing(capacity),
		events:        newHub[presence.StatusEvent](),
		notifications: newHub[presence.Notification](),
		records:       make(map[string]*presence.Record, len(cfg.Ships)),
		workers:       make(map[string]chan presence.Observation, len(cfg.Ships)),
		traffic:       traffic.NewTracker(cfg.RouteSystems),
		newID:         uuid.NewString,
	}

	for _, ship := range cfg.Ships {
		s.records[ship.Name] = presence.NewRecord(ship.Name)
	}

	if err := s.restore(ctx); err != nil {
		return nil, err
	}

	for _, ship := range cfg.Ships {
		queue := make(chan presence.Observation, workerQueueSize)
		s.workers[ship.Name] = queue

		s.wg.Add(1)

		go s.runWorker(ctx, ship.Name, queue)
	}

	return s, nil
}

// restore seeds records from the repository, keeping defaults for ships
// the stored state does not know about.
func (s *Service) restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	stored, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		for _, record := range stored {
			if _, tracked := s.records[record.Ship]; tracked {
				s.records[record.Ship] = record.Clone()
			}
		}
	case errors.Is(err, repo.ErrNotFound):
		// First run, keep defaults.
	default:
		return fmt.Errorf("load state: %w", err)
	}

	return nil
}

// Close waits for the ship workers to drain and disconnects all stream
// subscribers. The context passed to NewService must already be canceled.
func (s *Service) Close() {
	s.wg.Wait()
	s.events.Close()
	s.notifications.Close()
}

// Submit normalizes a raw observation and, when accepted, queues it for
// the owning ship's worker. The returned result tells the caller whether
// the observation was forwarded or why it was dropped.
func (s *Service) Submit(ctx context.Context, raw ingest.RawObservation) (ingest.Result, error) {
	obs, result := s.normalizer.Normalize(raw)
	if result != ingest.Accepted {
		return result, nil
	}

	queue, ok := s.workers[obs.Ship]
	if !ok {
		// Resolve and workers are built from the same config, so this
		// only happens after a programming error.
		return ingest.DroppedUnknownShip, nil
	}

	select {
	case queue <- obs:
		return ingest.Accepted, nil
	case <-ctx.Done():
		return result, ErrShutdown
	}
}

// runWorker applies observations for one ship serially in arrival order.
func (s *Service) runWorker(ctx context.Context, ship string, queue chan presence.Observation) {
	defer s.wg.Done()

	workerCtx := logger.WithKV(logger.WithName(ctx, "worker"), "ship", ship)

	for {
		select {
		case <-ctx.Done():
			return
		case obs := <-queue:
			s.apply(workerCtx, obs)
		}
	}
}

// apply runs one observation through the state machine and publishes
// whatever it produced.
func (s *Service) apply(ctx context.Context, obs presence.Observation) {
	s.mu.Lock()
	next, outcome := s.rules.Apply(s.records[obs.Ship], obs)
	s.records[obs.Ship] = next
	s.mu.Unlock()

	if outcome.Event != nil {
		event := *outcome.Event
		event.ID = s.newID()

		s.ring.Append(event)
		s.events.Publish(event)

		logger.InfoKV(ctx, "Ship status changed",
			"status", event.Status.String(),
			"system", event.System,
			"consecutive_missing", event.ConsecutiveMissing)

		s.persist(ctx)
	}

	if outcome.Notification != nil {
		s.notifications.Publish(*outcome.Notification)

		logger.InfoKV(ctx, "Notification dispatched",
			"kind", outcome.Notification.Kind.String(),
			"system", outcome.Notification.System,
			"previous_system", outcome.Notification.PreviousSystem)
	}
}

// persist saves the current records. Failures are logged, not returned:
// losing a persistence write must never stall the tracking pipeline.
func (s *Service) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.Save(ctx, s.CurrentRecords()); err != nil {
		logger.Errorf(ctx, "Failed to persist presence records: %v", err)
	}
}

// Resolve maps a reported name to the canonical ship name, if tracked.
func (s *Service) Resolve(name string) (string, bool) {
	return s.normalizer.Resolve(name)
}

// CurrentRecords returns copies of the presence records sorted by ship name.
func (s *Service) CurrentRecords() []*presence.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*presence.Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record.Clone())
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Ship < records[j].Ship
	})

	return records
}

// RecentEvents returns the retained status events in chronological order.
// A positive limit caps the result to the most recent events.
func (s *Service) RecentEvents(limit int) []presence.StatusEvent {
	return s.ring.Snapshot(limit)
}

// SubscribeStatus registers a status event stream subscriber.
func (s *Service) SubscribeStatus() (<-chan presence.StatusEvent, func()) {
	return s.events.Subscribe()
}

// SubscribeNotifications registers a notification stream subscriber.
func (s *Service) SubscribeNotifications() (<-chan presence.Notification, func()) {
	return s.notifications.Subscribe()
}

// TrafficSnapshot returns per-system commander traffic statistics.
func (s *Service) TrafficSnapshot() map[string]traffic.Stats {
	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	return s.traffic.Snapshot()
}

// HandleRoutePlan records a commander's plotted route step.
func (s *Service) HandleRoutePlan(uploader, current, next string, at time.Time) {
	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	s.traffic.HandleRoutePlan(uploader, current, next, at)
}

// HandleJump records a commander's completed jump.
func (s *Service) HandleJump(uploader, system string, at time.Time) {
	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	s.traffic.HandleJump(uploader, system, at)
}

// SetFleetCarriers records the fleet-carrier count seen in a route system.
func (s *Service) SetFleetCarriers(system string, count int) {
	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	s.traffic.SetFleetCarriers(system, count)
}

// CountMessageReceived bumps the relay frame counter.
func (s *Service) CountMessageReceived() {
	s.messagesReceived.Add(1)
}

// CountMessageProcessed bumps the processed frame counter.
func (s *Service) CountMessageProcessed() {
	s.messagesProcessed.Add(1)
}

// CountSignalsChecked adds to the inspected signal counter.
func (s *Service) CountSignalsChecked(n int) {
	s.signalsChecked.Add(int64(n))
}

// CountFleetCarriersSeen adds to the fleet-carrier signal counter.
func (s *Service) CountFleetCarriersSeen(n int) {
	s.fleetCarriersSeen.Add(int64(n))
}

// Stats returns a point-in-time copy of the feed counters.
func (s *Service) Stats() feed.Stats {
	return feed.Stats{
		MessagesReceived:  s.messagesReceived.Load(),
		MessagesProcessed: s.messagesProcessed.Load(),
		SignalsChecked:    s.signalsChecked.Load(),
		FleetCarriersSeen: s.fleetCarriersSeen.Load(),
	}
}
