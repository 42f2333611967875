package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createCustomer(c *gin.Context) {
	var in domain.CustomerInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.svc.Customers.Create(ctx, &in)
	if err != nil {
		h.writeError(ctx, c, "create customer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) listCustomers(c *gin.Context) {
	limit, offset := httpx.ParsePage(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	customers, err := h.svc.Customers.List(ctx, limit, offset)
	if err != nil {
		h.writeError(ctx, c, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.svc.Customers.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, c, "get customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in domain.CustomerInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.svc.Customers.Update(ctx, id, &in)
	if err != nil {
		h.writeError(ctx, c, "update customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Customers.Delete(ctx, id); err != nil {
		h.writeError(ctx, c, "delete customer", err)
		return
	}
	c.Status(http.StatusNoContent)
}
