package ports

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// Validator — проверка входных данных; ошибки оборачивают domain.ErrValidation.
type Validator interface {
	ValidateRestaurant(ctx context.Context, in *domain.RestaurantInput) error
	ValidateMenuItem(ctx context.Context, in *domain.MenuItemInput) error
	ValidateCustomer(ctx context.Context, in *domain.CustomerInput) error
	ValidateOrder(ctx context.Context, in *domain.CreateOrderInput) error
	ValidateReview(ctx context.Context, in *domain.CreateReviewInput) error
}
