package httpx

import (
	"strings"

	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID    = "X-Request-ID"
	HeaderCacheControl = "Cache-Control"
)

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CacheBypassMiddleware — "Cache-Control: no-cache" в запросе заставляет читать мимо кэша.
func CacheBypassMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(strings.ToLower(c.GetHeader(HeaderCacheControl)), "no-cache") {
			c.Request = c.Request.WithContext(ctxmeta.WithCacheBypass(c.Request.Context()))
		}
		c.Next()
	}
}
