package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — часть kafka.Reader, нужная консьюмеру.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// statusApplier — бизнес-логика, которая разбирает команду смены статуса и применяет её.
type statusApplier interface {
	ApplyStatusMessage(ctx context.Context, raw []byte) error
}

// Consumer читает команды смены статуса заказа и применяет их через OrderService.
type Consumer struct {
	reader         reader
	service        statusApplier
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, service statusApplier, log ports.Logger) *Consumer {
	reader := kafka.NewReader(cfg.ReaderConfig())

	return &Consumer{
		reader:         reader,
		service:        service,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, defaultProcessTimeout),
		retryInitial:   orDefault(cfg.RetryInitial, defaultRetryInitial),
		retryMax:       orDefault(cfg.RetryMax, defaultRetryMax),
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Значения по умолчанию для незаданных полей ConsumerConfig.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

// Run читает сообщения без авто-коммита до отмены ctx.
// Применённая команда и постоянная ошибка (битый JSON, нет заказа, запрещённый переход)
// коммитятся; временная ошибка повторяется с backoff, оффсет до успеха не двигается.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	// backoff на ошибках FetchMessage
	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		// reader не выдаст незакоммиченное сообщение повторно до ребаланса,
		// поэтому временные ошибки повторяются здесь же
		backoff := c.retryInitial
		for !c.handleMessage(ctx, rc.Topic, &msg) {
			if !c.sleepWithBackoff(ctx, c.withJitterEqual(backoff)) {
				return ctx.Err()
			}
			backoff = c.nextBackoff(backoff)
		}
		c.commitSafely(ctx, &msg)
	}
}

// Close закрывает reader; повторные вызовы возвращают nil.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
