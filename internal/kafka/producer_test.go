package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/kafka/mocks"
	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/Gunvolt24/zomato/pkg/metrics"
)

func TestProducer_Publish_KeyedByOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Producer{writer: w, topic: "order-events"}

	event := &domain.OrderEvent{
		Type:        domain.EventOrderStatusChanged,
		OrderID:     42,
		From:        domain.StatusPlaced,
		To:          domain.StatusConfirmed,
		TotalAmount: decimal.RequireFromString("18.40"),
		OccurredAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "ok"))

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.Equal(t, "42", string(msgs[0].Key))

			var got domain.OrderEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			require.Contains(t, string(msgs[0].Value), `"total_amount":18.4`)
			require.True(t, event.TotalAmount.Equal(got.TotalAmount), got.TotalAmount.String())
			got.TotalAmount = event.TotalAmount
			require.Equal(t, *event, got)

			require.Equal(t, []kafka.Header{
				{Key: HeaderEventType, Value: []byte("order.status_changed")},
				{Key: HeaderRequestID, Value: []byte("rid-1")},
			}, msgs[0].Headers)
			return nil
		})

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	require.NoError(t, p.Publish(ctx, event))
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "ok")))
}

func TestProducer_Publish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Producer{writer: w, topic: "order-events"}

	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "error"))
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	err := p.Publish(context.Background(), &domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: 1})
	require.ErrorContains(t, err, "leader not available")
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "error")))
}

func TestProducer_CloseOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Producer{writer: w, topic: "order-events"}

	w.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}

func TestProducerConfig_Writer(t *testing.T) {
	cfg := ProducerConfig{Brokers: []string{"k1:9092"}, Topic: "order-events"}
	w := cfg.newWriter()

	require.Equal(t, "order-events", w.Topic)
	require.IsType(t, &kafka.Hash{}, w.Balancer)
	require.Equal(t, kafka.RequireAll, w.RequiredAcks)
	require.Equal(t, 10*time.Millisecond, w.BatchTimeout)
}

func TestNopAdapters(t *testing.T) {
	require.NoError(t, NopPublisher{}.Publish(context.Background(), &domain.OrderEvent{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, NopConsumer{}.Run(ctx), context.DeadlineExceeded)
}
