package ports

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// MessageConsumer — фоновый потребитель сообщений (Kafka или заглушка).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// EventPublisher — публикация событий заказа во внешнюю шину.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.OrderEvent) error
	Close() error
}
