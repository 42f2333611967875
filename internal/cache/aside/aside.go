package aside

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/Gunvolt24/zomato/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что Cache удовлетворяет интерфейсу ports.CacheAdmin.
var _ ports.CacheAdmin = (*Cache)(nil)

// Cache — cache-aside поверх ports.CacheStore: значения хранятся в JSON.
// Ошибки хранилища не ломают запрос: логируются и трактуются как промах.
type Cache struct {
	store  ports.CacheStore
	ttls   map[string]time.Duration
	log    ports.Logger
	tracer trace.Tracer
}

// New — конструктор. Пространства имён без TTL в ttls берут значение из DefaultTTLs.
func New(store ports.CacheStore, ttls map[string]time.Duration, log ports.Logger) *Cache {
	merged := DefaultTTLs()
	for ns, ttl := range ttls {
		merged[ns] = ttl
	}
	return &Cache{store: store, ttls: merged, log: log, tracer: telemetry.Tracer()}
}

// TTL — срок жизни записей пространства имён.
func (c *Cache) TTL(namespace string) time.Duration { return c.ttls[namespace] }

// Fetch — вернуть значение по ключу из кэша или вызвать load и закэшировать результат.
// Ошибка load не кэшируется; пустой результат (JSON null) тоже.
func Fetch[T any](ctx context.Context, c *Cache, namespace, key string, load func(context.Context) (T, error)) (T, error) {
	ctx, span := c.tracer.Start(ctx, "cache.fetch", trace.WithAttributes(
		attribute.String("cache.namespace", namespace),
		attribute.String("cache.key", key),
	))
	defer span.End()

	if !ctxmeta.CacheBypassFromContext(ctx) {
		if v, ok := get[T](ctx, c, key); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return v, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.put(ctx, namespace, key, v)
	return v, nil
}

// Wrap — оборачивает функцию одного аргумента; ключ строится из namespace, op и аргумента.
func Wrap[A, T any](c *Cache, namespace, op string, fn func(context.Context, A) (T, error)) func(context.Context, A) (T, error) {
	return func(ctx context.Context, arg A) (T, error) {
		return Fetch(ctx, c, namespace, Key(namespace, op, arg), func(ctx context.Context) (T, error) {
			return fn(ctx, arg)
		})
	}
}

// Invalidate — очищает пространства имён после записи.
func (c *Cache) Invalidate(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		removed, err := c.store.ClearNamespace(ctx, prefix(ns))
		if err != nil {
			c.log.Warnf(ctx, "cache invalidate namespace=%s failed: %v", ns, err)
			continue
		}
		if removed > 0 {
			c.log.Infof(ctx, "cache invalidated namespace=%s removed=%d", ns, removed)
		}
	}
}

// ClearNamespace — ручная очистка одного известного пространства имён.
func (c *Cache) ClearNamespace(ctx context.Context, namespace string) (int, error) {
	if !IsKnownNamespace(namespace) {
		return 0, fmt.Errorf("%w: unknown cache namespace %q (known: %v)", domain.ErrValidation, namespace, Namespaces)
	}
	removed, err := c.store.ClearNamespace(ctx, prefix(namespace))
	if err != nil {
		return 0, fmt.Errorf("clear namespace %s: %w", namespace, err)
	}
	c.log.Infof(ctx, "cache cleared namespace=%s removed=%d", namespace, removed)
	return removed, nil
}

func get[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var v T
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warnf(ctx, "cache get key=%s failed: %v", key, err)
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.Warnf(ctx, "cache entry key=%s is corrupted: %v (dropped)", key, err)
		_ = c.store.Delete(ctx, key)
		var zero T
		return zero, false
	}
	return v, true
}

func (c *Cache) put(ctx context.Context, namespace, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warnf(ctx, "cache marshal key=%s failed: %v", key, err)
		return
	}
	if string(raw) == "null" {
		return
	}
	if err := c.store.Set(ctx, key, raw, c.TTL(namespace)); err != nil {
		c.log.Warnf(ctx, "cache set key=%s failed: %v", key, err)
	}
}
