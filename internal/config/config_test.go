package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testConfig returns a minimal valid configuration for tests to mutate.
func testConfig() *Config {
	return &Config{
		RelayAddress:  "relay.local:9500",
		ServerAddress: "127.0.0.1:50051",
		Ships: []ShipConfig{
			{Name: "Cygnus"},
			{Name: "The Orion", Aliases: []string{"Orion"}},
		},
		RouteSystems: []string{"Nukamba", "Graffias"},
	}
}

// TestValidate checks required fields, defaults and format validations.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing everything.
	require.Error(t, Validate(new(Config)))

	// Bad relay address.
	cfg := testConfig()
	cfg.RelayAddress = "not an address"
	require.Error(t, Validate(cfg))

	// Exactly two ships are required.
	cfg = testConfig()
	cfg.Ships = cfg.Ships[:1]
	require.Error(t, Validate(cfg))

	// Duplicate route systems are rejected.
	cfg = testConfig()
	cfg.RouteSystems = []string{"Nukamba", "Nukamba"}
	require.Error(t, Validate(cfg))

	// Valid config receives defaults.
	cfg = testConfig()
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultMissingThreshold, cfg.MissingThreshold)
	require.Equal(t, DefaultLongAbsence, cfg.LongAbsence)
	require.Equal(t, DefaultDedupWindow, cfg.DedupWindow)
	require.Equal(t, DefaultStaleCutoff, cfg.StaleCutoff)
	require.Equal(t, DefaultRecentEventsCapacity, cfg.RecentEventsCapacity)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := testConfig()
	cfg.MissingThreshold = 4
	cfg.LongAbsence = 7 * time.Minute

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.RelayAddress, loaded.RelayAddress)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.Ships, loaded.Ships)
	require.Equal(t, cfg.RouteSystems, loaded.RouteSystems)
	require.Equal(t, 4, loaded.MissingThreshold)
	require.Equal(t, 7*time.Minute, loaded.LongAbsence)
}

// TestLoadEnvOverrides verifies environment variables win over file contents.
func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	require.NoError(t, Save(path, testConfig()))

	t.Setenv(EnvServerAddress, "0.0.0.0:6000")
	t.Setenv(EnvRelayAddress, "other.relay:9500")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:6000", loaded.ServerAddress)
	require.Equal(t, "other.relay:9500", loaded.RelayAddress)
}
