package ports

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// Сервисы приложения, которые вызывает транспортный слой.
// Отсутствующая сущность — ошибка domain.ErrNotFound.

type RestaurantService interface {
	Create(ctx context.Context, in *domain.RestaurantInput) (*domain.Restaurant, error)
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context, filter domain.RestaurantFilter) ([]*domain.Restaurant, error)
	Update(ctx context.Context, id int64, in *domain.RestaurantInput) (*domain.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}

type MenuService interface {
	Create(ctx context.Context, restaurantID int64, in *domain.MenuItemInput) (*domain.MenuItem, error)
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, availableOnly bool) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id int64, in *domain.MenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerService interface {
	Create(ctx context.Context, in *domain.CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	Update(ctx context.Context, id int64, in *domain.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type OrderService interface {
	Create(ctx context.Context, in *domain.CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, status domain.OrderStatus, limit, offset int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, to domain.OrderStatus) (*domain.Order, error)
}

type ReviewService interface {
	Create(ctx context.Context, orderID int64, in *domain.CreateReviewInput) (*domain.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Review, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Review, error)
}

type AnalyticsService interface {
	Restaurant(ctx context.Context, restaurantID int64) (*domain.RestaurantAnalytics, error)
	Customer(ctx context.Context, customerID int64) (*domain.CustomerAnalytics, error)
	PopularItems(ctx context.Context, limit int) ([]domain.PopularItem, error)
}

// CacheAdmin — ручная очистка пространства имён кэша.
type CacheAdmin interface {
	ClearNamespace(ctx context.Context, namespace string) (int, error)
}
