package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createReview(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in domain.CreateReviewInput
	if !bindStrict(c, &in) {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	review, err := h.svc.Reviews.Create(ctx, orderID, &in)
	if err != nil {
		h.writeError(ctx, c, "create review", err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) listRestaurantReviews(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, offset := httpx.ParsePage(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	reviews, err := h.svc.Reviews.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		h.writeError(ctx, c, "list restaurant reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) listCustomerReviews(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, offset := httpx.ParsePage(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	reviews, err := h.svc.Reviews.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		h.writeError(ctx, c, "list customer reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
