package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/zomato/config"
	"github.com/Gunvolt24/zomato/internal/cache/aside"
	cachemem "github.com/Gunvolt24/zomato/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/zomato/internal/cache/redis"
	"github.com/Gunvolt24/zomato/internal/kafka"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/internal/repo/postgres"
	rest "github.com/Gunvolt24/zomato/internal/transport/http"
	"github.com/Gunvolt24/zomato/pkg/logger"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/Gunvolt24/zomato/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер команд смены статуса
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// closer — ресурс с именем для лога при закрытии.
type closer struct {
	name  string
	close func() error
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newCacheStore — бэкенд кэша по конфигурации: memory (по умолчанию) или redis.
func newCacheStore(ctx context.Context, cfg *config.Config) (ports.CacheStore, *closer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "memory":
		return cachemem.NewStore(cfg.Cache.Capacity), nil, nil
	case "redis":
		client, err := cacheredis.NewClient(ctx, cacheredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		return cacheredis.NewStore(client, cfg.Redis.KeyPrefix), &closer{name: "redis client", close: client.Close}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Ресурсы закрываются в обратном порядке открытия.
	var closers []closer
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cErr := closers[i].close(); cErr != nil {
				logg.Warnf(ctx, "close %s: %v", closers[i].name, cErr)
			}
		}
		_ = cleanupLogger()
	}
	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap failed: %v", err)
		cleanup()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		env := "development"
		if cfg.Logger.IsProd {
			env = "production"
		}
		shutdownTrace, tErr := telemetry.Setup(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Environment: env,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			closers = append(closers, closer{name: "tracer", close: func() error {
				shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return shutdownTrace(shCtx)
			}})
		}
	}

	// Пул подключений Postgres и миграции.
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:      cfg.Postgres.DSN,
		MaxConns: cfg.Postgres.MaxConns,
		LogSQL:   cfg.Postgres.LogSQL,
	}, logg.Base())
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closer{name: "postgres pool", close: func() error { pool.Close(); return nil }})

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logg.Base()); err != nil {
			return fail(err)
		}
	}

	// Кэш: хранилище + cache-aside с TTL по пространствам имён.
	store, storeCloser, err := newCacheStore(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	if storeCloser != nil {
		closers = append(closers, *storeCloser)
	}
	cache := aside.New(store, cfg.Cache.TTLs(), logg)
	logg.Infof(ctx, "cache backend=%s", cfg.Cache.Backend)

	// Kafka: продюсер событий и консьюмер команд; выключено — no-op реализации.
	var (
		publisher ports.EventPublisher  = kafka.NopPublisher{}
		consumer  ports.MessageConsumer = kafka.NopConsumer{}
	)
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		closers = append(closers, closer{name: "kafka producer", close: producer.Close})
		publisher = producer
	}

	domainLayer := BuildDomain(pool, cache, publisher, logg)

	if cfg.Kafka.Enabled {
		kafkaConsumer := kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.StatusTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, domainLayer.Orders, logg)
		closers = append(closers, closer{name: "kafka consumer", close: kafkaConsumer.Close})
		consumer = kafkaConsumer
		logg.Infof(ctx, "kafka enabled brokers=%v status_topic=%s events_topic=%s",
			cfg.Kafka.Brokers, cfg.Kafka.StatusTopic, cfg.Kafka.EventsTopic)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(domainLayer.Services, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
// Консьюмер работает на собственном контексте: при любой причине остановки он отменяется до Close.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	consumerDone := make(chan struct{})

	// Запуск консьюмера.
	go func() {
		defer close(consumerDone)
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(consumerCtx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера: сначала цикл чтения, затем reader.
	stopConsumer()
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		a.Logger.Warnf(ctx, "kafka consumer did not stop within %s", gt)
	}
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
