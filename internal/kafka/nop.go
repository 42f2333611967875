package kafka

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

var (
	_ ports.EventPublisher  = NopPublisher{}
	_ ports.MessageConsumer = NopConsumer{}
)

// NopPublisher — публикация отключена (Kafka выключена в конфиге).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                      { return nil }

// NopConsumer — ждёт остановки приложения и ничего не читает.
type NopConsumer struct{}

func (NopConsumer) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopConsumer) Close() error { return nil }
