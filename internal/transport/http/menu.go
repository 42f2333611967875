package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// listMenu — ?available_only
func (h *Handler) listMenu(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	items, err := h.svc.Menu.ListByRestaurant(ctx, restaurantID, httpx.QueryBool(c, "available_only"))
	if err != nil {
		h.writeError(ctx, c, "list menu", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createMenuItem(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in domain.MenuItemInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	item, err := h.svc.Menu.Create(ctx, restaurantID, &in)
	if err != nil {
		h.writeError(ctx, c, "create menu item", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) getMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	item, err := h.svc.Menu.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, c, "get menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) updateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in domain.MenuItemInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	item, err := h.svc.Menu.Update(ctx, id, &in)
	if err != nil {
		h.writeError(ctx, c, "update menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Menu.Delete(ctx, id); err != nil {
		h.writeError(ctx, c, "delete menu item", err)
		return
	}
	c.Status(http.StatusNoContent)
}
