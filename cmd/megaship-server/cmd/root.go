package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/service/tracker"
	"github.com/findcptn/megaship-tracker/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where presence records are persisted.
	stateFile string
	// relayAddress overrides the relay address from config.
	relayAddress string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "megaship-server [listen-address]",
		Short: "Run the megaship tracker server.",
		Long: `Starts the megaship tracker: subscribes to the event relay, tracks the
ships across their route and serves state, history and live streams over gRPC.

The server listens on the specified address or uses settings from configuration file.
Only the port from server_addr config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Presence records are persisted to JSON file for recovery across restarts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Optional .env file feeds the MEGASHIP_* overrides.
			_ = godotenv.Load()

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &tracker.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				RelayAddress:  relayAddress,
				StateFile:     stateFile,
			}

			return tracker.Run(ctx, options)
		},
	}
)

// Execute runs the megaship-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", config.DefaultStateFilename, "path to persist presence records")
	rootCmd.Flags().StringVarP(&relayAddress, "relay", "r", "", "relay address override (host:port)")
}
