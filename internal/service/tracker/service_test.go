package tracker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/domain/presence"
	"github.com/findcptn/megaship-tracker/internal/ingest"
)

const (
	testShip   = "Cygnus"
	testSystem = "Nukamba"
)

var testBase = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// mu protects saved; the ship workers save concurrently with the test.
	mu sync.Mutex
	// stored is returned from Load operations.
	stored []*presence.Record
	// loadErr is the error to return from Load operations.
	loadErr error
	// saved holds the last records passed to Save operations.
	saved []*presence.Record
}

func (m *memoryRepository) Load(context.Context) ([]*presence.Record, error) {
	return m.stored, m.loadErr
}

func (m *memoryRepository) Save(_ context.Context, records []*presence.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saved = records

	return nil
}

func (m *memoryRepository) lastSaved() []*presence.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saved
}

func newTestConfig() *config.Config {
	return &config.Config{
		RelayAddress:  "relay.example.com:9500",
		ServerAddress: "localhost:8080",
		Ships: []config.ShipConfig{
			{Name: testShip, Aliases: []string{"cygnus megaship"}},
			{Name: "The Orion"},
		},
		RouteSystems:         []string{testSystem, "Graffias", "Vodyakamana"},
		MissingThreshold:     config.DefaultMissingThreshold,
		LongAbsence:          config.DefaultLongAbsence,
		DedupWindow:          config.DefaultDedupWindow,
		RecentEventsCapacity: config.DefaultRecentEventsCapacity,
	}
}

func newTestService(t *testing.T, repo *memoryRepository) *Service {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	var svc *Service

	var err error
	if repo == nil {
		svc, err = NewService(ctx, newTestConfig(), nil)
	} else {
		svc, err = NewService(ctx, newTestConfig(), repo)
	}

	require.NoError(t, err)

	t.Cleanup(func() {
		cancel()
		svc.Close()
	})

	return svc
}

// submit pushes a raw observation and asserts it was accepted.
func submit(t *testing.T, svc *Service, ship, system string, kind presence.SignalKind, at time.Time) {
	t.Helper()

	result, err := svc.Submit(context.Background(), ingest.RawObservation{
		Ship:      ship,
		System:    system,
		Timestamp: at,
		Kind:      kind,
	})
	require.NoError(t, err)
	require.Equal(t, ingest.Accepted, result)
}

// waitEvent blocks until the subscription yields an event or the test times out.
func waitEvent[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case value, ok := <-ch:
		require.True(t, ok, "subscription closed before delivering")

		return value
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")

		panic("unreachable")
	}
}

func TestServiceSubmitProducesStatusEvent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	events, cancel := svc.SubscribeStatus()
	defer cancel()

	submit(t, svc, testShip, testSystem, presence.KindPresent, testBase)

	event := waitEvent(t, events)
	require.NotEmpty(t, event.ID)
	require.Equal(t, testShip, event.Ship)
	require.Equal(t, presence.StatusDetected, event.Status)
	require.Equal(t, testSystem, event.System)

	records := svc.CurrentRecords()
	require.Len(t, records, 2)
	// Sorted by ship name, so Cygnus comes first.
	require.Equal(t, presence.StatusDetected, records[0].Status)
	require.Equal(t, testSystem, records[0].System)
	require.Equal(t, presence.StatusNotDetected, records[1].Status)

	recent := svc.RecentEvents(0)
	require.Len(t, recent, 1)
	require.Equal(t, event.ID, recent[0].ID)
}

func TestServiceSubmitResolvesAliases(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	events, cancel := svc.SubscribeStatus()
	defer cancel()

	submit(t, svc, "CYGNUS MEGASHIP", testSystem, presence.KindPresent, testBase)

	event := waitEvent(t, events)
	require.Equal(t, testShip, event.Ship)
}

func TestServiceSubmitDropReasons(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	ctx := context.Background()

	result, err := svc.Submit(ctx, ingest.RawObservation{
		Ship:      "Unknown Vessel",
		System:    testSystem,
		Timestamp: testBase,
		Kind:      presence.KindPresent,
	})
	require.NoError(t, err)
	require.Equal(t, ingest.DroppedUnknownShip, result)

	result, err = svc.Submit(ctx, ingest.RawObservation{
		Ship:      testShip,
		Timestamp: testBase,
		Kind:      presence.KindPresent,
	})
	require.NoError(t, err)
	require.Equal(t, ingest.DroppedMalformed, result)

	submit(t, svc, testShip, testSystem, presence.KindPresent, testBase)

	result, err = svc.Submit(ctx, ingest.RawObservation{
		Ship:      testShip,
		System:    testSystem,
		Timestamp: testBase,
		Kind:      presence.KindPresent,
	})
	require.NoError(t, err)
	require.Equal(t, ingest.DroppedDuplicate, result)
}

func TestServiceJumpNotification(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	notifications, cancel := svc.SubscribeNotifications()
	defer cancel()

	submit(t, svc, testShip, testSystem, presence.KindPresent, testBase)

	for i := 1; i <= config.DefaultMissingThreshold; i++ {
		submit(t, svc, testShip, testSystem, presence.KindMissing, testBase.Add(time.Duration(i)*30*time.Second))
	}

	notification := waitEvent(t, notifications)
	require.Equal(t, presence.NotifyJumped, notification.Kind)
	require.Equal(t, testShip, notification.Ship)
	require.Equal(t, testSystem, notification.System)
}

func TestServiceRestoresFromRepository(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{
		stored: []*presence.Record{
			{
				Ship:           testShip,
				Status:         presence.StatusDetected,
				System:         "Graffias",
				LastDetectedAt: testBase.Add(-time.Hour),
			},
			{
				// An untracked ship in the state file is ignored.
				Ship:   "Retired Hull",
				Status: presence.StatusMissing,
			},
		},
	}

	svc := newTestService(t, repo)

	records := svc.CurrentRecords()
	require.Len(t, records, 2)
	require.Equal(t, presence.StatusDetected, records[0].Status)
	require.Equal(t, "Graffias", records[0].System)
}

func TestServicePersistsOnStatusChange(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{loadErr: nil}
	svc := newTestService(t, repo)

	events, cancel := svc.SubscribeStatus()
	defer cancel()

	submit(t, svc, testShip, testSystem, presence.KindPresent, testBase)
	waitEvent(t, events)

	require.Eventually(t, func() bool {
		return repo.lastSaved() != nil
	}, 5*time.Second, 10*time.Millisecond)

	saved := repo.lastSaved()
	require.Len(t, saved, 2)
	require.Equal(t, presence.StatusDetected, saved[0].Status)
}

func TestServiceTrafficPassthrough(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	svc.HandleJump("uploader-1", testSystem, testBase)
	svc.SetFleetCarriers(testSystem, 3)

	snapshot := svc.TrafficSnapshot()
	require.Equal(t, 1, snapshot[testSystem].Commanders)
	require.Equal(t, 1, snapshot[testSystem].JumpsTo)
	require.Equal(t, 3, snapshot[testSystem].FleetCarriers)
}

func TestServiceStatsCounters(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	svc.CountMessageReceived()
	svc.CountMessageReceived()
	svc.CountMessageProcessed()
	svc.CountSignalsChecked(5)
	svc.CountFleetCarriersSeen(2)

	stats := svc.Stats()
	require.Equal(t, int64(2), stats.MessagesReceived)
	require.Equal(t, int64(1), stats.MessagesProcessed)
	require.Equal(t, int64(5), stats.SignalsChecked)
	require.Equal(t, int64(2), stats.FleetCarriersSeen)
}

func TestServiceSlowSubscriberIsCut(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	events, cancel := svc.SubscribeStatus()
	defer cancel()

	// Alternate present/missing so every observation changes status and
	// overflows the untouched subscription buffer.
	at := testBase
	for i := 0; i < subscriberBufferSize+2; i++ {
		kind := presence.KindPresent
		if i%2 == 1 {
			kind = presence.KindMissing
		}

		submit(t, svc, testShip, testSystem, kind, at)
		at = at.Add(30 * time.Second)
	}

	// Wait until the worker has published everything, without reading.
	require.Eventually(t, func() bool {
		return len(svc.RecentEvents(0)) == subscriberBufferSize+2
	}, 5*time.Second, 10*time.Millisecond)

	// The buffer overflowed, so the hub must have closed the channel.
	drained := 0
	for range events {
		drained++
	}

	require.Equal(t, subscriberBufferSize, drained)
}
