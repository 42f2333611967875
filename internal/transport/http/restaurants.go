package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createRestaurant(c *gin.Context) {
	var in domain.RestaurantInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	restaurant, err := h.svc.Restaurants.Create(ctx, &in)
	if err != nil {
		h.writeError(ctx, c, "create restaurant", err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// listRestaurants — ?limit&offset&cuisine&active_only
func (h *Handler) listRestaurants(c *gin.Context) {
	limit, offset := httpx.ParsePage(c)
	filter := domain.RestaurantFilter{
		Cuisine:    c.Query("cuisine"),
		ActiveOnly: httpx.QueryBool(c, "active_only"),
		Limit:      limit,
		Offset:     offset,
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	restaurants, err := h.svc.Restaurants.List(ctx, filter)
	if err != nil {
		h.writeError(ctx, c, "list restaurants", err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	restaurant, err := h.svc.Restaurants.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, c, "get restaurant", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) updateRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in domain.RestaurantInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	restaurant, err := h.svc.Restaurants.Update(ctx, id, &in)
	if err != nil {
		h.writeError(ctx, c, "update restaurant", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) deleteRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Restaurants.Delete(ctx, id); err != nil {
		h.writeError(ctx, c, "delete restaurant", err)
		return
	}
	c.Status(http.StatusNoContent)
}
