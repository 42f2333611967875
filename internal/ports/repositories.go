package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// Соглашения репозиториев: GetByID возвращает (nil, nil), если записи нет;
// Update/Delete возвращают domain.ErrNotFound; нарушения unique/FK — domain.ErrConflict.

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context, filter domain.RestaurantFilter) ([]*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id int64) error
}

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	// GetByIDs — позиции по списку id; отсутствующие просто не попадают в результат.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, availableOnly bool) ([]*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	// Create — заказ и его строки в одной транзакции; проставляет id.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error)
	// ListByRestaurant — status == "" означает "любой статус".
	ListByRestaurant(ctx context.Context, restaurantID int64, status domain.OrderStatus, limit, offset int) ([]*domain.Order, error)
	// UpdateStatus — compare-and-set: меняет статус только если текущий равен from,
	// иначе domain.ErrConflict (или domain.ErrNotFound, если заказа нет).
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, deliveryTime *time.Time) error
}

type ReviewRepository interface {
	// Create — вставка отзыва и пересчёт рейтинга ресторана в одной транзакции.
	Create(ctx context.Context, review *domain.Review) error
	GetByOrder(ctx context.Context, orderID int64) (*domain.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Review, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Review, error)
}

// AnalyticsRepository — агрегирующие запросы только на чтение.
type AnalyticsRepository interface {
	RestaurantAnalytics(ctx context.Context, restaurantID int64) (*domain.RestaurantAnalytics, error)
	CustomerAnalytics(ctx context.Context, customerID int64) (*domain.CustomerAnalytics, error)
	// PopularItems — restaurantID == 0 означает "по всей платформе".
	PopularItems(ctx context.Context, restaurantID int64, limit int) ([]domain.PopularItem, error)
}
