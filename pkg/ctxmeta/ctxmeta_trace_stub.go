//go:build !otel || gopls

package ctxmeta

import "context"

// TraceIDFromContext — в сборке без otel всегда пусто.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }

// SpanIDFromContext — в сборке без otel всегда пусто.
func SpanIDFromContext(context.Context) (string, bool) { return "", false }
