package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock — управляемое время для проверки TTL без sleep.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSetGet_HitMiss(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok, "expected miss before Set")

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), got)
}

func TestTTL_ExpiresExactlyAtDeadline(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "restaurants:get:1", []byte("x"), 300*time.Second))

	clock.Advance(299 * time.Second)
	_, ok, _ := s.Get(ctx, "restaurants:get:1")
	require.True(t, ok, "entry must be served before expiry")

	clock.Advance(time.Second)
	_, ok, _ = s.Get(ctx, "restaurants:get:1")
	require.False(t, ok, "entry must be absent once ttl elapsed")
	require.Equal(t, 0, s.Len(), "expired entry must be evicted on read")
}

func TestTTL_ZeroMeansNoExpiry(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))
	clock.Advance(24 * 365 * time.Hour)
	_, ok, _ := s.Get(ctx, "k")
	require.True(t, ok)
}

func TestTTL_ReadDoesNotExtend(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Second))
	clock.Advance(9 * time.Second)
	_, ok, _ := s.Get(ctx, "k")
	require.True(t, ok)

	clock.Advance(time.Second)
	_, ok, _ = s.Get(ctx, "k")
	require.False(t, ok, "reads must not slide the expiry")
}

func TestSet_OverwriteResetsTTL(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old"), 10*time.Second))
	clock.Advance(8 * time.Second)
	require.NoError(t, s.Set(ctx, "k", []byte("new"), 10*time.Second))
	clock.Advance(8 * time.Second)

	got, ok, _ := s.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, []byte("new"), got)
	require.Equal(t, 1, s.Len())
}

func TestDelete(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "missing"))

	_, ok, _ := s.Get(ctx, "k")
	require.False(t, ok)
}

func TestClearNamespace_RemovesOnlyPrefixed(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()

	for _, k := range []string{"menu:list:1", "menu:get:7", "menu_admin:x", "restaurants:get:1"} {
		require.NoError(t, s.Set(ctx, k, []byte(k), time.Minute))
	}

	removed, err := s.ClearNamespace(ctx, "menu:")
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	for k, want := range map[string]bool{
		"menu:list:1":       false,
		"menu:get:7":        false,
		"menu_admin:x":      true,
		"restaurants:get:1": true,
	} {
		_, ok, _ := s.Get(ctx, k)
		require.Equal(t, want, ok, "key %s", k)
	}

	removed, err = s.ClearNamespace(ctx, "menu:")
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestClearNamespace_CountsExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "orders:get:1", []byte("a"), time.Second))
	require.NoError(t, s.Set(ctx, "orders:get:2", []byte("b"), time.Hour))
	clock.Advance(2 * time.Second)

	removed, err := s.ClearNamespace(ctx, "orders:")
	require.NoError(t, err)
	require.Equal(t, 2, removed, "lazily-kept expired entries are still removed")
}

func TestLRUEviction(t *testing.T) {
	s := NewStore(2)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "A", []byte("a"), 0))
	require.NoError(t, s.Set(ctx, "B", []byte("b"), 0))
	// A сделать «свежим»
	_, ok, _ := s.Get(ctx, "A")
	require.True(t, ok)
	// Добавляем C — вытеснит B (самый старый)
	require.NoError(t, s.Set(ctx, "C", []byte("c"), 0))

	_, ok, _ = s.Get(ctx, "B")
	require.False(t, ok, "expected B to be evicted")
	_, ok, _ = s.Get(ctx, "A")
	require.True(t, ok)
	require.Equal(t, 2, s.Len())
}

func TestSet_PrunesExpiredTail(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "old", []byte("x"), time.Second))
	clock.Advance(time.Minute)
	require.NoError(t, s.Set(ctx, "new", []byte("y"), time.Minute))

	require.Equal(t, 1, s.Len(), "expired tail entry must be dropped on insert")
}

func TestCloneImmutability(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()

	orig := []byte("value")
	require.NoError(t, s.Set(ctx, "k", orig, 0))
	orig[0] = 'X'

	got, _, _ := s.Get(ctx, "k")
	require.Equal(t, "value", string(got), "mutating the input must not affect the cache")

	got[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	require.Equal(t, "value", string(again), "mutating the result must not affect the cache")
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore(64)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("ns%d:k:%d", g%2, i%16)
				_ = s.Set(ctx, key, []byte(key), time.Minute)
				_, _, _ = s.Get(ctx, key)
				if i%50 == 0 {
					_, _ = s.ClearNamespace(ctx, fmt.Sprintf("ns%d:", g%2))
				}
			}
		}(g)
	}
	wg.Wait()
	require.LessOrEqual(t, s.Len(), 64)
}
