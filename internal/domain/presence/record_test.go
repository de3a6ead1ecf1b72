package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRecordClone verifies Clone copies all fields and handles nil safely.
func TestRecordClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Record)(nil).Clone())

	rec := &Record{
		Ship:               testShip,
		Status:             StatusSignalMissing,
		System:             testSystem,
		ConsecutiveMissing: 3,
		LastDetectedAt:     time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	cloned := rec.Clone()

	require.Equal(t, rec, cloned)
	require.NotSame(t, rec, cloned)
}

// TestStatusString covers the status labels used in logs and API responses.
func TestStatusString(t *testing.T) {
	t.Parallel()

	cases := map[Status]string{
		StatusNotDetected:    "NOT_DETECTED",
		StatusDetected:       "DETECTED",
		StatusSignalMissing:  "SIGNAL_MISSING",
		StatusMissing:        "MISSING",
		StatusIrregularVisit: "IRREGULAR_VISIT",
		Status(42):           "UNKNOWN",
	}
	for status, label := range cases {
		require.Equal(t, label, status.String())
	}
}
