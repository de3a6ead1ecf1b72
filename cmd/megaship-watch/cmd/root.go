package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/service/watch"
	"github.com/findcptn/megaship-tracker/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// recentLimit caps how many historical events are printed on startup.
	recentLimit int32
	// notificationsOnly follows only the notification stream.
	notificationsOnly bool

	// rootCmd represents the base command for watching the tracker.
	rootCmd = &cobra.Command{
		Use:   "megaship-watch [server-address]",
		Short: "Watch megaship movements live.",
		Long: `Connects to the tracker server, prints the current state of both ships,
the commander traffic per route system and the recent event history, then
follows the status and notification streams until interrupted.

Server address can be provided as argument to override config (e.g., tracker.local:8080).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Optional .env file feeds the MEGASHIP_* overrides.
			_ = godotenv.Load()

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			options := &watch.Options{
				ConfigPath:        configPath,
				ServerAddress:     serverAddress,
				RecentLimit:       recentLimit,
				NotificationsOnly: notificationsOnly,
			}

			return watch.Run(ctx, options)
		},
	}
)

// Execute runs the megaship-watch CLI and exits with non-zero status on error.
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
	rootCmd.Flags().Int32VarP(&recentLimit, "recent", "n", 0, "number of historical events to print (0 = all retained)")
	rootCmd.Flags().BoolVarP(&notificationsOnly, "notifications-only", "N", false, "follow only jump/appearance notifications")
}
