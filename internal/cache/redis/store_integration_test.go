//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	redisstore "github.com/Gunvolt24/zomato/internal/cache/redis"
	"github.com/Gunvolt24/zomato/internal/testutil"
)

func TestRedisStore_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := redisstore.NewStore(env.Client, "zomato:")
	// чужой ключ в той же базе не должен задеваться очисткой
	require.NoError(t, env.Client.Set(ctx, "menu:foreign", "x", 0).Err())

	require.NoError(t, store.Set(ctx, "menu:by_restaurant:1", []byte(`[1]`), time.Minute))
	require.NoError(t, store.Set(ctx, "menu:by_restaurant:2", []byte(`[2]`), time.Minute))
	require.NoError(t, store.Set(ctx, "restaurants:get:1", []byte(`{}`), time.Minute))

	val, ok, err := store.Get(ctx, "menu:by_restaurant:1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[1]`), val)

	_, ok, err = store.Get(ctx, "menu:missing")
	require.NoError(t, err)
	require.False(t, ok)

	removed, err := store.ClearNamespace(ctx, "menu:")
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, ok, _ = store.Get(ctx, "menu:by_restaurant:2")
	require.False(t, ok)
	_, ok, _ = store.Get(ctx, "restaurants:get:1")
	require.True(t, ok)
	require.Equal(t, int64(1), env.Client.Exists(ctx, "menu:foreign").Val())

	require.NoError(t, store.Delete(ctx, "restaurants:get:1"))
	_, ok, _ = store.Get(ctx, "restaurants:get:1")
	require.False(t, ok)

	// короткий TTL истекает на стороне Redis
	require.NoError(t, store.Set(ctx, "orders:get:1", []byte(`{}`), 200*time.Millisecond))
	require.Eventually(t, func() bool {
		_, ok, err := store.Get(ctx, "orders:get:1")
		return err == nil && !ok
	}, 3*time.Second, 50*time.Millisecond)
}
