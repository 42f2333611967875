package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// messageContext — контекст обработки с request id из заголовка x-request-id;
// без заголовка id собирается из координат сообщения.
func messageContext(ctx context.Context, msg *kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == HeaderRequestID && len(h.Value) > 0 {
			return ctxmeta.WithRequestID(ctx, string(h.Value))
		}
	}
	return ctxmeta.WithRequestID(ctx, fmt.Sprintf("kafka-%s-%d-%d", msg.Topic, msg.Partition, msg.Offset))
}

// handleMessage применяет команду смены статуса и решает, коммитить ли оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctx = messageContext(ctx, msg)
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.ApplyStatusMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case domain.IsPermanent(err):
		// повтор ничего не изменит: коммитим и идём дальше
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "status message partition=%d offset=%d rejected: %v (skipped)", msg.Partition, msg.Offset, err)
		return true
	default:
		// БД, сеть или таймаут: без коммита, сообщение придёт снова
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "status message partition=%d offset=%d failed: %v (will retry without commit)", msg.Partition, msg.Offset, err)
		return false
	}
}

// commitSafely — коммит оффсета; ошибка только логируется, повтор придёт после ребаланса.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// nextBackoff — удвоение задержки с потолком retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return minDuration(current*2, c.retryMax)
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
