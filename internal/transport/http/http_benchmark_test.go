//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/logger"
)

// --- Бенчмарки ---

// GetOrder: голый роутер против полного пайплайна NewRouter
func BenchmarkHTTP_GetOrder(b *testing.B) {
	ord := benchOrder(1, 3)
	h := NewHandler(Services{Orders: svcOrders{list: []*domain.Order{ord}}}, logger.NewNop(), 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/orders/1")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/orders/1")
	})
}

// Потолок без маршалинга: тот же заказ, заранее закодированный в JSON
func BenchmarkHTTP_GetOrder_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchOrder(1, 3))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/orders/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/orders/1")
}

// Пагинация: 10/50/100 заказов клиента
func BenchmarkHTTP_ListByCustomer(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]*domain.Order, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, benchOrder(int64(i+1), 2))
			}
			h := NewHandler(Services{Orders: svcOrders{list: list}}, logger.NewNop(), 2*time.Second)

			benchServeGET(b, makeLeanRouter(h), "/customers/7/orders?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): стоимость роутера и NoRoute
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(Services{Orders: svcOrders{}}, logger.NewNop(), 2*time.Second)
	r := makeFullRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- Стабы ---

// svcOrders — заранее подготовленная выборка без аллокаций на вызов.
type svcOrders struct{ list []*domain.Order }

func (s svcOrders) Create(context.Context, *domain.CreateOrderInput) (*domain.Order, error) {
	return s.list[0], nil
}

func (s svcOrders) Get(context.Context, int64) (*domain.Order, error) {
	if len(s.list) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.list[0], nil
}

func (s svcOrders) ListByCustomer(context.Context, int64, int, int) ([]*domain.Order, error) {
	return s.list, nil
}

func (s svcOrders) ListByRestaurant(context.Context, int64, domain.OrderStatus, int, int) ([]*domain.Order, error) {
	return s.list, nil
}

func (s svcOrders) UpdateStatus(context.Context, int64, domain.OrderStatus) (*domain.Order, error) {
	return s.list[0], nil
}

// --- функции-помощники ---

func benchOrder(id int64, lines int) *domain.Order {
	o := &domain.Order{
		ID:              id,
		CustomerID:      7,
		RestaurantID:    3,
		Status:          domain.StatusPreparing,
		DeliveryAddress: "Elm st 5",
		OrderDate:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for i := 0; i < lines; i++ {
		o.Items = append(o.Items, domain.OrderItem{MenuItemID: int64(i + 1), Quantity: 2, ItemPrice: decimal.RequireFromString("4.50")})
	}
	o.RecalculateTotal()
	return o
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/orders/:id", h.getOrder)
	r.GET("/customers/:id/orders", h.listCustomerOrders)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
