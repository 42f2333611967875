package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что Store удовлетворяет интерфейсу ports.CacheStore.
var _ ports.CacheStore = (*Store)(nil)

const (
	backend   = "redis"
	scanBatch = 500
)

// Config — параметры подключения к Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient — создаёт клиента и проверяет соединение (PING).
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Store — кэш поверх Redis: TTL нативный (SET PX), очистка пространства имён через SCAN + UNLINK.
// keyPrefix отделяет ключи приложения от чужих ключей в той же базе.
type Store struct {
	client    goredis.UniversalClient
	keyPrefix string
}

func NewStore(client goredis.UniversalClient, keyPrefix string) *Store {
	return &Store{client: client, keyPrefix: keyPrefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		metrics.CacheOps.WithLabelValues(backend, "miss").Inc()
		return nil, false, nil
	case err != nil:
		metrics.CacheOps.WithLabelValues(backend, "error").Inc()
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	metrics.CacheOps.WithLabelValues(backend, "hit").Inc()
	return val, true, nil
}

// Set — ttl <= 0 сохраняет ключ без срока.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.keyPrefix+key, value, ttl).Err(); err != nil {
		metrics.CacheOps.WithLabelValues(backend, "error").Inc()
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	metrics.CacheOps.WithLabelValues(backend, "set").Inc()
	return nil
}

// Delete — UNLINK: память освобождается в фоне, как и при ClearNamespace.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Unlink(ctx, s.keyPrefix+key).Err(); err != nil {
		metrics.CacheOps.WithLabelValues(backend, "error").Inc()
		return fmt.Errorf("redis unlink %s: %w", key, err)
	}
	metrics.CacheOps.WithLabelValues(backend, "delete").Inc()
	return nil
}

// ClearNamespace — SCAN по шаблону "<keyPrefix><prefix>*" и UNLINK найденных ключей пачками.
// Спецсимволы glob в префиксе экранируются, сравнение остаётся буквальным.
func (s *Store) ClearNamespace(ctx context.Context, prefix string) (int, error) {
	match := escapeGlob(s.keyPrefix+prefix) + "*"

	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			metrics.CacheOps.WithLabelValues(backend, "error").Inc()
			return removed, fmt.Errorf("redis scan %s: %w", match, err)
		}
		if len(keys) > 0 {
			n, err := s.client.Unlink(ctx, keys...).Result()
			if err != nil {
				metrics.CacheOps.WithLabelValues(backend, "error").Inc()
				return removed, fmt.Errorf("redis unlink: %w", err)
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	metrics.CacheOps.WithLabelValues(backend, "clear").Inc()
	return removed, nil
}

// escapeGlob — экранирует *, ?, [, ], \ для MATCH.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
