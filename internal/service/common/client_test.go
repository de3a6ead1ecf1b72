package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/findcptn/megaship-tracker/internal/config"
)

func TestDialRequiresAddress(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), "")
	require.ErrorIs(t, err, errAddressRequired)
}

func TestDialAppliesOptions(t *testing.T) {
	t.Parallel()

	client, err := Dial(context.Background(), "localhost:8080", WithCallTimeout(time.Minute))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	require.Equal(t, time.Minute, client.callTimeout)

	// Non-positive timeouts are ignored, keeping the default.
	client2, err := Dial(context.Background(), "localhost:8080", WithCallTimeout(0))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, client2.Close())
	})

	require.Equal(t, config.DefaultTimeout, client2.callTimeout)
}

func TestCallContextDeadline(t *testing.T) {
	t.Parallel()

	client := &Client{callTimeout: time.Minute}

	ctx, cancel := client.callContext(context.Background())
	defer cancel()

	_, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)

	client.callTimeout = 0

	ctx, cancel = client.callContext(context.Background())
	defer cancel()

	_, hasDeadline = ctx.Deadline()
	require.False(t, hasDeadline)
}

func TestCloseNilSafe(t *testing.T) {
	t.Parallel()

	var client *Client
	require.NoError(t, client.Close())
	require.NoError(t, (&Client{}).Close())
}
