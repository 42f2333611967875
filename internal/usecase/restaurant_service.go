package usecase

import (
	"context"
	"strings"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что RestaurantService удовлетворяет интерфейсу ports.RestaurantService.
var _ ports.RestaurantService = (*RestaurantService)(nil)

// RestaurantService — рестораны: запись в БД с очисткой кэша, чтение через cache-aside.
type RestaurantService struct {
	repo      ports.RestaurantRepository
	cache     *aside.Cache
	log       ports.Logger
	validator ports.Validator

	getByID func(context.Context, int64) (*domain.Restaurant, error)
	list    func(context.Context, domain.RestaurantFilter) ([]*domain.Restaurant, error)
}

// NewRestaurantService — DI-конструктор.
func NewRestaurantService(
	repo ports.RestaurantRepository,
	cache *aside.Cache,
	log ports.Logger,
	validator ports.Validator,
) *RestaurantService {
	return &RestaurantService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		getByID:   aside.Wrap(cache, aside.NSRestaurants, "get", repo.GetByID),
		list:      aside.Wrap(cache, aside.NSRestaurants, "list", repo.List),
	}
}

func (s *RestaurantService) Create(ctx context.Context, in *domain.RestaurantInput) (*domain.Restaurant, error) {
	if err := s.validator.ValidateRestaurant(ctx, in); err != nil {
		return nil, err
	}

	restaurant := &domain.Restaurant{}
	in.Apply(restaurant)
	if err := s.repo.Create(ctx, restaurant); err != nil {
		s.log.Errorf(ctx, "repo.Create restaurant failed name=%q err=%v", in.Name, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSRestaurants, aside.NSAnalytics)
	s.log.Infof(ctx, "restaurant created id=%d", restaurant.ID)
	return restaurant, nil
}

func (s *RestaurantService) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	restaurant, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, notFound("restaurant", id)
	}
	return restaurant, nil
}

// List — кухня сравнивается без учёта регистра, поэтому в ключ кэша идёт нижний регистр.
func (s *RestaurantService) List(ctx context.Context, filter domain.RestaurantFilter) ([]*domain.Restaurant, error) {
	filter.Cuisine = strings.ToLower(strings.TrimSpace(filter.Cuisine))
	return s.list(ctx, filter)
}

func (s *RestaurantService) Update(ctx context.Context, id int64, in *domain.RestaurantInput) (*domain.Restaurant, error) {
	if err := s.validator.ValidateRestaurant(ctx, in); err != nil {
		return nil, err
	}

	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, notFound("restaurant", id)
	}

	in.Apply(restaurant)
	if err := s.repo.Update(ctx, restaurant); err != nil {
		s.log.Errorf(ctx, "repo.Update restaurant failed id=%d err=%v", id, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSRestaurants, aside.NSAnalytics)
	return restaurant, nil
}

// Delete — вместе с рестораном удаляется меню, поэтому чистятся и связанные пространства.
func (s *RestaurantService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, aside.NSRestaurants, aside.NSMenu, aside.NSReviews, aside.NSAnalytics)
	s.log.Infof(ctx, "restaurant deleted id=%d", id)
	return nil
}
