package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/validate"
	"github.com/gin-gonic/gin"
)

// maxBodyBytes — предел размера тела запроса.
const maxBodyBytes = 1 << 20

// Services — прикладные сервисы, которые вызывают хендлеры.
type Services struct {
	Restaurants ports.RestaurantService
	Menu        ports.MenuService
	Customers   ports.CustomerService
	Orders      ports.OrderService
	Reviews     ports.ReviewService
	Analytics   ports.AnalyticsService
	Cache       ports.CacheAdmin
}

type Handler struct {
	svc     Services
	log     ports.Logger
	timeout time.Duration // <= 0 — без собственного таймаута
}

func NewHandler(svc Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{svc: svc, log: log, timeout: timeout}
}

// requestContext — контекст запроса с таймаутом хендлера.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// writeError — доменная ошибка в HTTP-статус; внутренние детали наружу не отдаются.
func (h *Handler) writeError(ctx context.Context, c *gin.Context, op string, err error) {
	status := statusFor(err)
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusGatewayTimeout:
		h.log.Errorf(ctx, "%s failed: %v", op, err)
		c.JSON(status, gin.H{"error": "internal server error"})
	case status == http.StatusGatewayTimeout:
		h.log.Warnf(ctx, "%s timed out: %v", op, err)
		c.JSON(status, gin.H{"error": "request timed out"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReviewNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// parseID — положительный int64 из параметра пути; иначе 400 и false.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": must be a positive integer"})
		return 0, false
	}
	return id, true
}

// bindStrict — строгий разбор JSON-тела: неизвестные поля и мусор после объекта запрещены.
func bindStrict(c *gin.Context, dst any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}
	if err := validate.DecodeStrict(raw, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
