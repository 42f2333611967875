package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		startOffset string
		wantOffset  int64
	}{
		{"first", kafkago.FirstOffset},
		{" FiRsT \n", kafkago.FirstOffset},
		{"", kafkago.LastOffset},
		{"LAST", kafkago.LastOffset},
		{"unknown", kafkago.LastOffset},
	}

	for _, tt := range tests {
		t.Run("offset="+tt.startOffset, func(t *testing.T) {
			cfg := ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "order-status",
				GroupID:     "zomato",
				StartOffset: tt.startOffset,
			}

			rc := cfg.ReaderConfig()
			require.Equal(t, tt.wantOffset, rc.StartOffset)
			require.Equal(t, cfg.Brokers, rc.Brokers)
			require.Equal(t, "order-status", rc.Topic)
			require.Equal(t, "zomato", rc.GroupID)
			require.Zero(t, rc.CommitInterval, "offsets are committed manually")
		})
	}
}

func TestProducerConfig_NewWriter(t *testing.T) {
	t.Parallel()

	w := (&ProducerConfig{Brokers: []string{"k1:9092"}, Topic: "order-events"}).newWriter()
	require.Equal(t, "order-events", w.Topic)
	require.Equal(t, "k1:9092", w.Addr.String())
	require.IsType(t, &kafkago.Hash{}, w.Balancer)
	require.Equal(t, kafkago.RequireAll, w.RequiredAcks)
	require.Equal(t, 10*time.Millisecond, w.BatchTimeout)

	w = (&ProducerConfig{Brokers: []string{"k1:9092"}, BatchTimeout: time.Second}).newWriter()
	require.Equal(t, time.Second, w.BatchTimeout)
}

func TestOrDefault(t *testing.T) {
	require.Equal(t, defaultRetryMax, orDefault(0, defaultRetryMax))
	require.Equal(t, defaultRetryMax, orDefault(-time.Second, defaultRetryMax))
	require.Equal(t, time.Minute, orDefault(time.Minute, defaultRetryMax))
}
