package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/findcptn/megaship-tracker/internal/domain/presence"
)

func TestFileRepositorySaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	detectedAt := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	records := []*presence.Record{
		{
			Ship:           "Cygnus",
			Status:         presence.StatusDetected,
			System:         "Nukamba",
			LastDetectedAt: detectedAt,
		},
		{
			Ship:               "The Orion",
			Status:             presence.StatusMissing,
			System:             "Graffias",
			ConsecutiveMissing: 6,
			LastDetectedAt:     detectedAt.Add(-time.Hour),
			MissingSince:       detectedAt.Add(-30 * time.Minute),
		},
	}

	require.NoError(t, repo.Save(ctx, records))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, records[0], loaded[0])
	require.Equal(t, records[1], loaded[1])
}

func TestFileRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "absent.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepositoryLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	repo := NewFileRepository(path)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestFileRepositoryStatusRoundtrip(t *testing.T) {
	t.Parallel()

	statuses := []presence.Status{
		presence.StatusNotDetected,
		presence.StatusDetected,
		presence.StatusSignalMissing,
		presence.StatusMissing,
		presence.StatusIrregularVisit,
	}

	for _, status := range statuses {
		require.Equal(t, status, statusFromProto(statusToProto(status)), status.String())
	}
}
