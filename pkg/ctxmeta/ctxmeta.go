// Пакет ctxmeta — метаданные запроса, которые едут через context.Context:
// request_id, флаг обхода кэша, trace/span (в сборке с тегом otel).
// HTTP-слой их кладёт, логгер и кэш читают; друг о друге они не знают.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID   ctxKey = "request_id"
	KeyCacheBypass ctxKey = "cache_bypass"
)

// WithRequestID — кладёт request_id в контекст (пустой id и nil-контекст игнорируются).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — достаёт request_id; пустое значение считается отсутствующим.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithCacheBypass — помечает запрос: читать мимо кэша (запись результата в кэш остаётся).
func WithCacheBypass(ctx context.Context) context.Context {
	if ctx == nil {
		return ctx
	}
	return context.WithValue(ctx, KeyCacheBypass, true)
}

// CacheBypassFromContext — true, если запрос помечен WithCacheBypass.
func CacheBypassFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(KeyCacheBypass).(bool)
	return v
}
