package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/usecase"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) restaurantAnalytics(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	stats, err := h.svc.Analytics.Restaurant(ctx, restaurantID)
	if err != nil {
		h.writeError(ctx, c, "restaurant analytics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) customerAnalytics(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	stats, err := h.svc.Analytics.Customer(ctx, customerID)
	if err != nil {
		h.writeError(ctx, c, "customer analytics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// popularItems — ?limit (по умолчанию 10, максимум 50)
func (h *Handler) popularItems(c *gin.Context) {
	limit, _ := httpx.ParseLimitOffset(c, usecase.DefaultPopularLimit, usecase.MaxPopularLimit)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	items, err := h.svc.Analytics.PopularItems(ctx, limit)
	if err != nil {
		h.writeError(ctx, c, "popular items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// clearCache — ручная очистка пространства имён кэша.
func (h *Handler) clearCache(c *gin.Context) {
	namespace := c.Param("namespace")
	ctx, cancel := h.requestContext(c)
	defer cancel()

	removed, err := h.svc.Cache.ClearNamespace(ctx, namespace)
	if err != nil {
		h.writeError(ctx, c, "clear cache", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"namespace": namespace, "removed": removed})
}
