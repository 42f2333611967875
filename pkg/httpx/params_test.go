package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestParsePage_Defaults(t *testing.T) {
	t.Parallel()

	limit, offset := httpx.ParsePage(ctxWithQuery(""))
	if limit != 20 || offset != 0 {
		t.Fatalf("got limit=%d offset=%d, want 20/0", limit, offset)
	}
}

func TestParseLimitOffset_DefaultOutOfBounds(t *testing.T) {
	t.Parallel()

	if limit, _ := httpx.ParseLimitOffset(ctxWithQuery(""), 200, 50); limit != 50 {
		t.Fatalf("default above max must be clamped, got %d", limit)
	}
	if limit, _ := httpx.ParseLimitOffset(ctxWithQuery(""), 0, 50); limit != 1 {
		t.Fatalf("default below min must be clamped, got %d", limit)
	}
}

func TestParsePage_QueryProvided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rawQuery   string
		wantLimit  int
		wantOffset int
	}{
		{"ok_both", "limit=25&offset=10", 25, 10},
		{"ok_only_limit", "limit=5", 5, 0},
		{"ok_only_offset", "offset=7", 20, 7},

		{"limit_zero_clamped_to_min", "limit=0", 1, 0},
		{"limit_negative_clamped_to_min", "limit=-5", 1, 0},
		{"limit_above_max_clamped", "limit=999", 100, 0},

		{"limit_non_int_uses_default", "limit=foo", 20, 0},
		{"offset_non_int_ignored", "offset=bar", 20, 0},
		{"offset_negative_ignored", "limit=10&offset=-3", 10, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			limit, offset := httpx.ParsePage(ctxWithQuery(tt.rawQuery))
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want %d/%d (query=%q)",
					limit, offset, tt.wantLimit, tt.wantOffset, tt.rawQuery)
			}
		})
	}
}

func TestQueryBool(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"active_only=true":  true,
		"active_only=1":     true,
		"active_only=YES":   true,
		"active_only=false": false,
		"active_only=":      false,
		"":                  false,
	}
	for q, want := range cases {
		if got := httpx.QueryBool(ctxWithQuery(q), "active_only"); got != want {
			t.Fatalf("QueryBool(%q) = %v, want %v", q, got, want)
		}
	}
}
