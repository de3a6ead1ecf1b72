package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ShipConfig describes one tracked megaship.
type ShipConfig struct {
	// Name is the canonical ship name as it appears in relay signals.
	Name string `yaml:"name"    validate:"required"`
	// Aliases lists alternative spellings matched case-insensitively at ingest.
	Aliases []string `yaml:"aliases" validate:"omitempty,unique"`
}

// Config holds the settings shared by the tracker binaries.
type Config struct {
	// RelayAddress is the upstream event relay to subscribe to.
	RelayAddress string `yaml:"relay_addr"  validate:"required,hostname_port"`
	// ServerAddress is the gRPC tracker API address.
	ServerAddress string `yaml:"server_addr" validate:"required,hostname_port"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// Ships are the tracked megaships. The tracker is built for exactly two.
	Ships []ShipConfig `yaml:"ships"         validate:"required,len=2,dive"`
	// RouteSystems enumerates the on-route candidate systems.
	RouteSystems []string `yaml:"route_systems" validate:"required,min=1,unique"`
	// MissingThreshold is the consecutive-miss count that confirms a jump.
	MissingThreshold int `yaml:"missing_threshold" validate:"omitempty,gt=0"`
	// LongAbsence is how long a ship must be missing before a same-system
	// reappearance is still worth a notification.
	LongAbsence time.Duration `yaml:"long_absence"`
	// DedupWindow bounds the ingest duplicate-suppression cache by age.
	DedupWindow time.Duration `yaml:"dedup_window"`
	// StaleCutoff drops relay messages whose timestamp deviates too far
	// from the local clock.
	StaleCutoff time.Duration `yaml:"stale_cutoff"`
	// RecentEventsCapacity is the size of the recent status event ring.
	RecentEventsCapacity int `yaml:"recent_events_capacity" validate:"omitempty,gt=0"`
	// StateFile is the path to the JSON file persisting presence records
	// across restarts. Empty disables persistence.
	StateFile string `yaml:"state_file"`
}

const (
	// DefaultConfigFilename is the default filename for tracker settings.
	DefaultConfigFilename = "megaship-tracker.yaml"

	// DefaultStateFilename is the default filename for presence state JSON.
	DefaultStateFilename = "megaship-state.json"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultMissingThreshold is the consecutive-miss count confirming a jump.
	DefaultMissingThreshold = 6

	// DefaultLongAbsence is the long-absence notification threshold.
	DefaultLongAbsence = 10 * time.Minute

	// DefaultDedupWindow bounds the ingest dedup cache by age.
	DefaultDedupWindow = 2 * time.Minute

	// DefaultStaleCutoff is the relay message staleness cutoff.
	DefaultStaleCutoff = 10 * time.Minute

	// DefaultRecentEventsCapacity is the recent event ring size.
	DefaultRecentEventsCapacity = 50

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// EnvServerAddress overrides server_addr when set in the environment.
	EnvServerAddress = "MEGASHIP_SERVER_ADDR"

	// EnvRelayAddress overrides relay_addr when set in the environment.
	EnvRelayAddress = "MEGASHIP_RELAY_ADDR"
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Load reads configuration from the provided path, applies environment
// overrides and defaults, and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	// Environment overrides win over file contents. The .env file, if any,
	// has already been folded into the environment by the CLI layer.
	if addr := os.Getenv(EnvServerAddress); addr != "" {
		cfg.ServerAddress = addr
	}

	if addr := os.Getenv(EnvRelayAddress); addr != "" {
		cfg.RelayAddress = addr
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate applies defaults to optional fields and checks the required ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.MissingThreshold <= 0 {
		cfg.MissingThreshold = DefaultMissingThreshold
	}

	if cfg.LongAbsence <= 0 {
		cfg.LongAbsence = DefaultLongAbsence
	}

	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = DefaultDedupWindow
	}

	if cfg.StaleCutoff <= 0 {
		cfg.StaleCutoff = DefaultStaleCutoff
	}

	if cfg.RecentEventsCapacity <= 0 {
		cfg.RecentEventsCapacity = DefaultRecentEventsCapacity
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	return nil
}
