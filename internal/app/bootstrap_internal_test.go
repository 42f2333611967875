package app

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/zomato/config"
	cachemem "github.com/Gunvolt24/zomato/internal/cache/memory"
	"github.com/Gunvolt24/zomato/pkg/logger"
)

func TestNewCacheStore(t *testing.T) {
	ctx := context.Background()

	store, c, err := newCacheStore(ctx, &config.Config{Cache: config.Cache{Backend: "Memory", Capacity: 10}})
	require.NoError(t, err)
	require.Nil(t, c)
	require.IsType(t, &cachemem.Store{}, store)

	_, _, err = newCacheStore(ctx, &config.Config{Cache: config.Cache{Backend: "memcached"}})
	require.ErrorContains(t, err, "unknown cache backend")
}

func TestApplyGinMode(t *testing.T) {
	prev := gin.Mode()
	t.Cleanup(func() { gin.SetMode(prev) })

	log := logger.NewNop()
	ctx := context.Background()

	applyGinMode(ctx, " Release ", log)
	require.Equal(t, gin.ReleaseMode, gin.Mode())

	applyGinMode(ctx, "test", log)
	require.Equal(t, gin.TestMode, gin.Mode())

	applyGinMode(ctx, "bogus", log)
	require.Equal(t, gin.DebugMode, gin.Mode())
}
