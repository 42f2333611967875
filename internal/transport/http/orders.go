package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// statusRequest — тело PATCH /orders/:id/status.
type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var in domain.CreateOrderInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.svc.Orders.Create(ctx, &in)
	if err != nil {
		h.writeError(ctx, c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.svc.Orders.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !bindStrict(c, &req) {
		return
	}
	to, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.svc.Orders.UpdateStatus(ctx, id, to)
	if err != nil {
		h.writeError(ctx, c, "update order status", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listCustomerOrders(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, offset := httpx.ParsePage(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.svc.Orders.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		h.writeError(ctx, c, "list customer orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// listRestaurantOrders — ?status&limit&offset; пустой status — все заказы.
func (h *Handler) listRestaurantOrders(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var status domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParseOrderStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}
	limit, offset := httpx.ParsePage(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.svc.Orders.ListByRestaurant(ctx, restaurantID, status, limit, offset)
	if err != nil {
		h.writeError(ctx, c, "list restaurant orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
