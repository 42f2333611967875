package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/zomato/config"
	"github.com/Gunvolt24/zomato/internal/cache/aside"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("ZOMATO_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "zomato-api" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 || !c.Postgres.AutoMigrate || c.Postgres.LogSQL {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Redis
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 0 || c.Redis.KeyPrefix != "zomato:" {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false, got true")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.StatusTopic != "order-status" || c.Kafka.EventsTopic != "order-events" ||
		c.Kafka.GroupID != "zomato" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != 1*time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Backend != "memory" || c.Cache.Capacity != 10000 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
	ttls := c.Cache.TTLs()
	want := map[string]time.Duration{
		aside.NSRestaurants: 5 * time.Minute,
		aside.NSMenu:        10 * time.Minute,
		aside.NSCustomers:   5 * time.Minute,
		aside.NSOrders:      2 * time.Minute,
		aside.NSReviews:     5 * time.Minute,
		aside.NSAnalytics:   15 * time.Minute,
	}
	for ns, ttl := range want {
		if ttls[ns] != ttl {
			t.Fatalf("Cache TTL %s: want %v, got %v", ns, ttl, ttls[ns])
		}
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "ZOMATO_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "9s")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")
	t.Setenv(p+"_POSTGRES_AUTO_MIGRATE", "false")
	t.Setenv(p+"_POSTGRES_LOG_SQL", "true")

	// Redis
	t.Setenv(p+"_REDIS_ADDR", "cache:6380")
	t.Setenv(p+"_REDIS_PASSWORD", "secret")
	t.Setenv(p+"_REDIS_DB", "3")
	t.Setenv(p+"_REDIS_KEY_PREFIX", "z2:")

	// Kafka
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_STATUS_TOPIC", "status-test")
	t.Setenv(p+"_KAFKA_EVENTS_TOPIC", "events-test")
	t.Setenv(p+"_KAFKA_GROUP_ID", "g-test")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")
	t.Setenv(p+"_KAFKA_PROCESS_TIMEOUT", "7s")
	t.Setenv(p+"_KAFKA_RETRY_INITIAL", "250ms")
	t.Setenv(p+"_KAFKA_RETRY_MAX", "2m")

	// Cache
	t.Setenv(p+"_CACHE_BACKEND", "redis")
	t.Setenv(p+"_CACHE_CAPACITY", "777")
	t.Setenv(p+"_CACHE_MENU_TTL", "30m")
	t.Setenv(p+"_CACHE_ANALYTICS_TTL", "1h")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != 1*time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.GracefulTimeout != 9*time.Second {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 ||
		c.Postgres.AutoMigrate || !c.Postgres.LogSQL {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if c.Redis.Addr != "cache:6380" || c.Redis.Password != "secret" || c.Redis.DB != 3 || c.Redis.KeyPrefix != "z2:" {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.StatusTopic != "status-test" || c.Kafka.EventsTopic != "events-test" ||
		c.Kafka.GroupID != "g-test" || c.Kafka.StartOffset != "first" {
		t.Fatalf("Kafka basic overrides wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 7*time.Second || c.Kafka.RetryInitial != 250*time.Millisecond || c.Kafka.RetryMax != 2*time.Minute {
		t.Fatalf("Kafka timeouts override wrong: %+v", c.Kafka)
	}
	if c.Cache.Backend != "redis" || c.Cache.Capacity != 777 {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if ttls := c.Cache.TTLs(); ttls[aside.NSMenu] != 30*time.Minute || ttls[aside.NSAnalytics] != time.Hour ||
		ttls[aside.NSOrders] != 2*time.Minute {
		t.Fatalf("Cache TTL overrides wrong: %+v", ttls)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "ZOMATO_TEST_BAD"
	t.Setenv(p+"_CACHE_ORDERS_TTL", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
