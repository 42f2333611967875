package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("order-status"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("order-status"))
	beforePublished := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "ok"))

	metrics.KafkaMessagesConsumed.WithLabelValues("order-status").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("order-status").Inc()
	metrics.KafkaMessagesPublished.WithLabelValues("order-events", "ok").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("order-status")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("order-status")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("order-events", "ok")); got != beforePublished+1 {
		t.Fatalf("KafkaMessagesPublished: got=%v want=%v", got, beforePublished+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("test", "hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("test", "miss"))

	metrics.CacheOps.WithLabelValues("test", "hit").Inc()
	metrics.CacheOps.WithLabelValues("test", "hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("test", "hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("test", "miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestOrderTransitions_ByResult(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("preparing", "delivered", "rejected"))
	metrics.OrderTransitions.WithLabelValues("preparing", "delivered", "rejected").Inc()

	if got := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("preparing", "delivered", "rejected")); got != before+1 {
		t.Fatalf("OrderTransitions: got=%v want=%v", got, before+1)
	}
}
