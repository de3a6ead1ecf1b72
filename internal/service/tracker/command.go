package tracker

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/findcptn/megaship-tracker/internal/api/grpc/tracker"
	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/feed"
	"github.com/findcptn/megaship-tracker/internal/logger"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
	repository "github.com/findcptn/megaship-tracker/internal/repository/state"
)

// Options controls the megaship-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// RelayAddress provides an optional relay address override for the feed client.
	RelayAddress string
	// StateFile specifies the path to persist presence records JSON.
	StateFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the feed client and the gRPC server, blocking until the
// context is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "megaship-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// CLI overrides win over the settings file.
	stateFile := settings.StateFile
	if opts.StateFile != "" {
		stateFile = opts.StateFile
	}

	relayAddress := settings.RelayAddress
	if opts.RelayAddress != "" {
		relayAddress = opts.RelayAddress
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	var repo repository.Repository
	if stateFile != "" {
		repo = repository.NewFileRepository(stateFile)
	}

	// Workers stop when ctx is canceled; Close below waits for them.
	svc, err := NewService(ctx, settings, repo)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}
	defer svc.Close()

	// The relay subscription runs for the whole server lifetime and
	// reconnects on its own. It never takes the server down.
	feedClient := feed.NewClient(relayAddress, settings, svc)

	go func() {
		if feedErr := feedClient.Run(ctx); feedErr != nil && !errors.Is(feedErr, context.Canceled) {
			logger.Errorf(ctx, "Feed client stopped: %v", feedErr)
		}
	}()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterTrackerServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Megaship tracker listening",
		"listen_address", listenAddress,
		"relay_address", relayAddress,
		"state_file", stateFile)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Extract port from config address (e.g., "tracker.example.com:8080" -> ":8080").
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Bind on all interfaces.
	return ":" + port, nil
}
