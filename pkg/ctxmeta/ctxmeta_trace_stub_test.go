//go:build !otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
)

// Без тега otel trace/span всегда пусты, а request_id и обход кэша работают как обычно.
func TestStubBuild_OnlyRequestMetadata(t *testing.T) {
	ctx := ctxmeta.WithCacheBypass(ctxmeta.WithRequestID(context.Background(), "kafka-order-status-0-7"))

	for name, get := range map[string]func(context.Context) (string, bool){
		"trace": ctxmeta.TraceIDFromContext,
		"span":  ctxmeta.SpanIDFromContext,
	} {
		if id, ok := get(ctx); ok || id != "" {
			t.Fatalf("%s id in stub build = %q %v", name, id, ok)
		}
	}
	if id, _ := ctxmeta.RequestIDFromContext(ctx); id != "kafka-order-status-0-7" {
		t.Fatalf("request id = %q", id)
	}
	if !ctxmeta.CacheBypassFromContext(ctx) {
		t.Fatalf("cache bypass must survive in stub build")
	}
}
