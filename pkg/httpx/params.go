package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Границы пагинации списков.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseLimitOffset — читает limit/offset из query с дефолтами и границами.
// Нечисловой limit даёт defaultLimit, отрицательный или нечисловой offset даёт 0.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = ClampInt(defaultLimit, 1, maxLimit)
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = ClampInt(v, 1, maxLimit)
		}
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return
}

// ParsePage — ParseLimitOffset с границами по умолчанию (20, максимум 100).
func ParsePage(c *gin.Context) (limit, offset int) {
	return ParseLimitOffset(c, DefaultLimit, MaxLimit)
}

// QueryBool — булев query-параметр; "1", "true", "yes" считаются истиной.
func QueryBool(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
