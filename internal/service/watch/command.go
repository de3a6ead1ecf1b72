package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/logger"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
	"github.com/findcptn/megaship-tracker/internal/service/common"
)

// Options configures the watch client.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the server address from config when specified.
	ServerAddress string
	// RecentLimit caps how many historical events are printed on startup.
	// Zero prints everything the server retains.
	RecentLimit int32
	// NotificationsOnly skips status events and follows notifications alone.
	NotificationsOnly bool
}

// reconnectDelay is how long the watcher waits before re-opening a
// dropped stream.
const reconnectDelay = 2 * time.Second

// Run prints the current tracker state and then follows the live streams
// until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "megaship-watch")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching tracker", "server_address", serverAddress)

	if err = printSnapshot(ctx, client, opts.RecentLimit); err != nil {
		return err
	}

	if opts.NotificationsOnly {
		return followNotifications(ctx, client)
	}

	// Follow both streams; whichever fails first decides the retry.
	errCh := make(chan error, 2)

	go func() { errCh <- followStatus(ctx, client) }()
	go func() { errCh <- followNotifications(ctx, client) }()

	return <-errCh
}

// printSnapshot fetches and logs the current state and recent history.
func printSnapshot(ctx context.Context, client *common.Client, recentLimit int32) error {
	state, err := client.GetCurrentState(ctx)
	if err != nil {
		return err
	}

	for _, record := range state.GetRecords() {
		logger.Infof(ctx, "Ship: %s", formatRecord(record))
	}

	for _, entry := range state.GetTraffic() {
		logger.InfoKV(ctx, "Traffic",
			"system", entry.GetSystem(),
			"commanders", entry.GetCommanders(),
			"jumps_to", entry.GetJumpsTo(),
			"jumps_from", entry.GetJumpsFrom(),
			"fleet_carriers", entry.GetFleetCarriers())
	}

	stats := state.GetStats()
	logger.InfoKV(ctx, "Feed",
		"messages_received", stats.GetMessagesReceived(),
		"messages_processed", stats.GetMessagesProcessed(),
		"signals_checked", stats.GetSignalsChecked(),
		"fleet_carriers_seen", stats.GetFleetCarriersSeen())

	recent, err := client.GetRecentEvents(ctx, recentLimit)
	if err != nil {
		return err
	}

	for _, event := range recent.GetEvents() {
		logger.Infof(ctx, "History: %s", formatEvent(event))
	}

	return nil
}

// followStatus consumes the status stream, reconnecting when the server
// drops a lagging subscription.
func followStatus(ctx context.Context, client *common.Client) error {
	for {
		stream, err := client.StreamStatus(ctx)
		if err != nil {
			return err
		}

		for {
			event, err := stream.Recv()
			if err != nil {
				retry, retryErr := streamRetry(ctx, err)
				if !retry {
					return retryErr
				}

				break
			}

			logger.Infof(ctx, "Status: %s", formatEvent(event))
		}
	}
}

// followNotifications consumes the notification stream the same way.
func followNotifications(ctx context.Context, client *common.Client) error {
	for {
		stream, err := client.StreamNotifications(ctx)
		if err != nil {
			return err
		}

		for {
			notification, err := stream.Recv()
			if err != nil {
				retry, retryErr := streamRetry(ctx, err)
				if !retry {
					return retryErr
				}

				break
			}

			logger.Infof(ctx, "Notification: %s", formatNotification(notification))
		}
	}
}

// streamRetry decides whether a stream error is worth a reconnect.
// Dropped subscriptions and clean ends are; cancellation is not.
func streamRetry(ctx context.Context, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}

	if errors.Is(err, io.EOF) || status.Code(err) == codes.Unavailable {
		logger.WarnKV(ctx, "Stream dropped, reconnecting", "error", err, "retry_in", reconnectDelay)

		timer := time.NewTimer(reconnectDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return false, nil
		case <-timer.C:
			return true, nil
		}
	}

	return false, err
}

// statusLabel strips the enum prefix for readable log output.
func statusLabel(status pb.ShipStatus) string {
	return strings.TrimPrefix(status.String(), "SHIP_STATUS_")
}

// formatRecord renders one presence record as a log line.
func formatRecord(record *pb.PresenceRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is %s", record.GetShip(), statusLabel(record.GetStatus()))

	if record.GetSystem() != "" {
		fmt.Fprintf(&b, " in %s", record.GetSystem())
	}

	if record.GetIrregularSystem() != "" {
		fmt.Fprintf(&b, " (sighted off route in %s)", record.GetIrregularSystem())
	}

	if record.GetConsecutiveMissing() > 0 {
		fmt.Fprintf(&b, ", %d consecutive misses", record.GetConsecutiveMissing())
	}

	if ts := record.GetLastDetectedAt(); ts != nil {
		fmt.Fprintf(&b, ", last seen %s", ts.AsTime().Format(time.RFC3339))
	}

	return b.String()
}

// formatEvent renders one status event as a log line.
func formatEvent(event *pb.StatusEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s -> %s", event.GetShip(), statusLabel(event.GetStatus()))

	if event.GetSystem() != "" {
		fmt.Fprintf(&b, " in %s", event.GetSystem())
	}

	if event.GetConsecutiveMissing() > 0 {
		fmt.Fprintf(&b, " (%d misses)", event.GetConsecutiveMissing())
	}

	if ts := event.GetTimestamp(); ts != nil {
		fmt.Fprintf(&b, " at %s", ts.AsTime().Format(time.RFC3339))
	}

	return b.String()
}

// formatNotification renders one notification as a log line.
func formatNotification(notification *pb.Notification) string {
	var b strings.Builder

	switch notification.GetKind() {
	case pb.NotificationKind_NOTIFICATION_KIND_JUMPED:
		fmt.Fprintf(&b, "%s jumped away from %s", notification.GetShip(), notification.GetSystem())
	case pb.NotificationKind_NOTIFICATION_KIND_APPEARED:
		fmt.Fprintf(&b, "%s appeared in %s", notification.GetShip(), notification.GetSystem())

		if notification.GetPreviousSystem() != "" {
			fmt.Fprintf(&b, " (previously %s)", notification.GetPreviousSystem())
		}
	default:
		fmt.Fprintf(&b, "%s: unknown notification", notification.GetShip())
	}

	if ts := notification.GetTimestamp(); ts != nil {
		fmt.Fprintf(&b, " at %s", ts.AsTime().Format(time.RFC3339))
	}

	return b.String()
}
