//go:build integration

package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStateTracker_Exec(t *testing.T) {
	client := newRedis(t)
	tracker := New(client, "contact")
	ctx := context.Background()

	t.Run("runs once then reports completed", func(t *testing.T) {
		calls := 0
		fn := func(context.Context) error {
			calls++
			return nil
		}

		require.NoError(t, tracker.Exec(ctx, "k1", fn))
		assert.ErrorIs(t, tracker.Exec(ctx, "k1", fn), ErrAlreadyCompleted)
		assert.Equal(t, 1, calls)

		val, err := client.Get(ctx, "idempotency:contact:k1").Result()
		require.NoError(t, err)
		assert.Equal(t, StateCompleted.String(), val)
	})

	t.Run("in progress", func(t *testing.T) {
		state, err := tracker.Acquire(ctx, "k2", time.Minute)
		require.NoError(t, err)
		require.Equal(t, StateNone, state)

		err = tracker.Exec(ctx, "k2", func(context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrAlreadyInProgress)
	})

	t.Run("failed attempt can be retried", func(t *testing.T) {
		boom := errors.New("smtp down")
		assert.ErrorIs(t, tracker.Exec(ctx, "k3", func(context.Context) error { return boom }), boom)
		assert.ErrorIs(t, tracker.Exec(ctx, "k3", func(context.Context) error { return nil }), ErrAlreadyFailed)
		assert.NoError(t, tracker.Exec(ctx, "k3", func(context.Context) error { return nil }, WithRetryFailed()))
	})
}
