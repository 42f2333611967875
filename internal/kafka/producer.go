package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу ports.EventPublisher.
var _ ports.EventPublisher = (*Producer)(nil)

// Заголовки публикуемых сообщений.
const (
	HeaderEventType = "event-type"
	HeaderRequestID = "x-request-id"
)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикация событий заказов в JSON. Ключ — id заказа.
type Producer struct {
	writer    writer
	topic     string
	closeOnce sync.Once
}

func NewProducer(cfg *ProducerConfig) *Producer {
	return &Producer{writer: cfg.newWriter(), topic: cfg.Topic}
}

func (p *Producer) Publish(ctx context.Context, event *domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(event.OrderID, 10)),
		Value:   payload,
		Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte(event.Type)}},
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: HeaderRequestID, Value: []byte(rid)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("kafka write topic=%s: %w", p.topic, err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// Close — дожидается отправки буфера и закрывает writer.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
