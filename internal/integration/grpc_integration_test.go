package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/findcptn/megaship-tracker/internal/config"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
	"github.com/findcptn/megaship-tracker/internal/service/common"
	"github.com/findcptn/megaship-tracker/internal/service/tracker"
)

var observedAt = time.Now().UTC().Truncate(time.Second)

// startServer starts the tracker server with a temporary config and state
// file. Returns a stop function to gracefully shut it down.
func startServer(t *testing.T, addr, statePath string) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// The relay endpoint is intentionally unreachable: the feed client
	// backs off in the background while the API is exercised.
	require.NoError(t, config.Save(cfgPath, &config.Config{
		RelayAddress:  "127.0.0.1:1",
		ServerAddress: addr,
		Timeout:       5 * time.Second,
		Ships: []config.ShipConfig{
			{Name: "Cygnus"},
			{Name: "The Orion"},
		},
		RouteSystems: []string{"Nukamba", "Graffias"},
	}))

	go func() {
		options := &tracker.Options{
			ConfigPath: cfgPath,
			StateFile:  statePath,
		}

		_ = tracker.Run(ctx, options) //nolint:errcheck // Server exit is asserted through the API below.
	}()

	// Wait briefly for the server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_Roundtrip starts the real server and exercises observation
// submission, state reads and history with on-disk persistence.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	// Reserve a free port for the test server.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startServer(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Both ships start undetected.
	state, err := c.GetCurrentState(ctx)
	require.NoError(t, err)
	require.Len(t, state.GetRecords(), 2)
	require.Equal(t, pb.ShipStatus_SHIP_STATUS_NOT_DETECTED, state.GetRecords()[0].GetStatus())

	// A manual sighting flows through the whole pipeline.
	resp, err := c.SubmitObservation(ctx, "Cygnus", "Nukamba", observedAt, pb.SignalKind_SIGNAL_KIND_PRESENT)
	require.NoError(t, err)
	require.True(t, resp.GetAccepted())

	// The worker applies asynchronously; poll until the record flips.
	require.Eventually(t, func() bool {
		state, err = c.GetCurrentState(ctx)

		return err == nil &&
			state.GetRecords()[0].GetStatus() == pb.ShipStatus_SHIP_STATUS_DETECTED
	}, 5*time.Second, 50*time.Millisecond)

	require.Equal(t, "Nukamba", state.GetRecords()[0].GetSystem())

	// The change landed in the event history.
	recent, err := c.GetRecentEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent.GetEvents(), 1)
	require.Equal(t, "Cygnus", recent.GetEvents()[0].GetShip())
	require.NotEmpty(t, recent.GetEvents()[0].GetId())

	// Submitting the same observation again is a duplicate.
	resp, err = c.SubmitObservation(ctx, "Cygnus", "Nukamba", observedAt, pb.SignalKind_SIGNAL_KIND_PRESENT)
	require.NoError(t, err)
	require.False(t, resp.GetAccepted())
	require.Equal(t, "duplicate", resp.GetReason())

	// An unknown ship is dropped with a reason, not an error.
	resp, err = c.SubmitObservation(ctx, "Ghost Ship", "Nukamba", observedAt, pb.SignalKind_SIGNAL_KIND_PRESENT)
	require.NoError(t, err)
	require.False(t, resp.GetAccepted())
	require.Equal(t, "unknown ship", resp.GetReason())

	// The record made it to disk.
	require.Eventually(t, func() bool {
		_, statErr := os.Stat(statePath)

		return statErr == nil
	}, 5*time.Second, 50*time.Millisecond)
}

// TestGRPC_StreamStatus verifies that a live subscriber sees the event
// produced by a submitted observation.
func TestGRPC_StreamStatus(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	stop := startServer(t, addr, filepath.Join(t.TempDir(), "state.json"))
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	stream, err := c.StreamStatus(ctx)
	require.NoError(t, err)

	// Give the server a moment to register the subscription.
	time.Sleep(100 * time.Millisecond)

	resp, err := c.SubmitObservation(ctx, "The Orion", "Graffias", observedAt, pb.SignalKind_SIGNAL_KIND_PRESENT)
	require.NoError(t, err)
	require.True(t, resp.GetAccepted())

	event, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, "The Orion", event.GetShip())
	require.Equal(t, pb.ShipStatus_SHIP_STATUS_DETECTED, event.GetStatus())
	require.Equal(t, "Graffias", event.GetSystem())
}
