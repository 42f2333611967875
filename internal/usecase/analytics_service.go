package usecase

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что AnalyticsService удовлетворяет интерфейсу ports.AnalyticsService.
var _ ports.AnalyticsService = (*AnalyticsService)(nil)

// AnalyticsService — агрегаты только на чтение; все результаты живут в пространстве analytics.
type AnalyticsService struct {
	repo        ports.AnalyticsRepository
	restaurants ports.RestaurantRepository
	customers   ports.CustomerRepository
	cache       *aside.Cache
}

func NewAnalyticsService(
	repo ports.AnalyticsRepository,
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	cache *aside.Cache,
) *AnalyticsService {
	return &AnalyticsService{repo: repo, restaurants: restaurants, customers: customers, cache: cache}
}

func (s *AnalyticsService) Restaurant(ctx context.Context, restaurantID int64) (*domain.RestaurantAnalytics, error) {
	key := aside.Key(aside.NSAnalytics, "restaurant", restaurantID)
	return aside.Fetch(ctx, s.cache, aside.NSAnalytics, key, func(ctx context.Context) (*domain.RestaurantAnalytics, error) {
		restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			return nil, notFound("restaurant", restaurantID)
		}
		return s.repo.RestaurantAnalytics(ctx, restaurantID)
	})
}

func (s *AnalyticsService) Customer(ctx context.Context, customerID int64) (*domain.CustomerAnalytics, error) {
	key := aside.Key(aside.NSAnalytics, "customer", customerID)
	return aside.Fetch(ctx, s.cache, aside.NSAnalytics, key, func(ctx context.Context) (*domain.CustomerAnalytics, error) {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, notFound("customer", customerID)
		}
		return s.repo.CustomerAnalytics(ctx, customerID)
	})
}

// PopularItems — самые продаваемые позиции по всей платформе.
func (s *AnalyticsService) PopularItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	limit = popularLimit(limit)
	key := aside.Key(aside.NSAnalytics, "popular_items", limit)
	return aside.Fetch(ctx, s.cache, aside.NSAnalytics, key, func(ctx context.Context) ([]domain.PopularItem, error) {
		return s.repo.PopularItems(ctx, 0, limit)
	})
}
