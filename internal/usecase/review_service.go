package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что ReviewService удовлетворяет интерфейсу ports.ReviewService.
var _ ports.ReviewService = (*ReviewService)(nil)

// ReviewService — отзывы на доставленные заказы.
type ReviewService struct {
	repo        ports.ReviewRepository
	orders      ports.OrderRepository
	restaurants ports.RestaurantRepository
	customers   ports.CustomerRepository
	cache       *aside.Cache
	log         ports.Logger
	validator   ports.Validator
}

// ReviewDeps — зависимости ReviewService.
type ReviewDeps struct {
	Reviews     ports.ReviewRepository
	Orders      ports.OrderRepository
	Restaurants ports.RestaurantRepository
	Customers   ports.CustomerRepository
	Cache       *aside.Cache
	Log         ports.Logger
	Validator   ports.Validator
}

func NewReviewService(deps ReviewDeps) *ReviewService {
	return &ReviewService{
		repo:        deps.Reviews,
		orders:      deps.Orders,
		restaurants: deps.Restaurants,
		customers:   deps.Customers,
		cache:       deps.Cache,
		log:         deps.Log,
		validator:   deps.Validator,
	}
}

// Create — отзыв на заказ. Клиент и ресторан берутся из заказа.
// Заказ должен быть доставлен, второй отзыв на тот же заказ — domain.ErrConflict.
func (s *ReviewService) Create(ctx context.Context, orderID int64, in *domain.CreateReviewInput) (*domain.Review, error) {
	if err := s.validator.ValidateReview(ctx, in); err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("order", orderID)
	}
	if err := order.CanBeReviewed(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: order %d already has review %d", domain.ErrConflict, orderID, existing.ID)
	}

	review := &domain.Review{
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		s.log.Warnf(ctx, "repo.Create review failed order_id=%d err=%v", orderID, err)
		return nil, err
	}

	// рейтинг ресторана пересчитан в той же транзакции
	s.cache.Invalidate(ctx, aside.NSReviews, aside.NSRestaurants, aside.NSAnalytics)
	s.log.Infof(ctx, "review created id=%d order_id=%d rating=%d", review.ID, orderID, review.Rating)
	return review, nil
}

func (s *ReviewService) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Review, error) {
	key := aside.Key(aside.NSReviews, "by_restaurant", restaurantID, limit, offset)
	return aside.Fetch(ctx, s.cache, aside.NSReviews, key, func(ctx context.Context) ([]*domain.Review, error) {
		restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			return nil, notFound("restaurant", restaurantID)
		}
		return s.repo.ListByRestaurant(ctx, restaurantID, limit, offset)
	})
}

func (s *ReviewService) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Review, error) {
	key := aside.Key(aside.NSReviews, "by_customer", customerID, limit, offset)
	return aside.Fetch(ctx, s.cache, aside.NSReviews, key, func(ctx context.Context) ([]*domain.Review, error) {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, notFound("customer", customerID)
		}
		return s.repo.ListByCustomer(ctx, customerID, limit, offset)
	})
}
