package usecase

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что MenuService удовлетворяет интерфейсу ports.MenuService.
var _ ports.MenuService = (*MenuService)(nil)

// MenuService — позиции меню ресторанов.
type MenuService struct {
	repo        ports.MenuRepository
	restaurants ports.RestaurantRepository
	cache       *aside.Cache
	log         ports.Logger
	validator   ports.Validator

	getByID func(context.Context, int64) (*domain.MenuItem, error)
}

func NewMenuService(
	repo ports.MenuRepository,
	restaurants ports.RestaurantRepository,
	cache *aside.Cache,
	log ports.Logger,
	validator ports.Validator,
) *MenuService {
	return &MenuService{
		repo:        repo,
		restaurants: restaurants,
		cache:       cache,
		log:         log,
		validator:   validator,
		getByID:     aside.Wrap(cache, aside.NSMenu, "get", repo.GetByID),
	}
}

// Create — позиция добавляется только в существующий ресторан.
func (s *MenuService) Create(ctx context.Context, restaurantID int64, in *domain.MenuItemInput) (*domain.MenuItem, error) {
	if err := s.validator.ValidateMenuItem(ctx, in); err != nil {
		return nil, err
	}
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{RestaurantID: restaurantID}
	in.Apply(item)
	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Errorf(ctx, "repo.Create menu item failed restaurant_id=%d err=%v", restaurantID, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSMenu, aside.NSAnalytics)
	s.log.Infof(ctx, "menu item created id=%d restaurant_id=%d", item.ID, restaurantID)
	return item, nil
}

func (s *MenuService) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("menu item", id)
	}
	return item, nil
}

// ListByRestaurant — меню ресторана; для несуществующего ресторана — domain.ErrNotFound.
func (s *MenuService) ListByRestaurant(ctx context.Context, restaurantID int64, availableOnly bool) ([]*domain.MenuItem, error) {
	key := aside.Key(aside.NSMenu, "by_restaurant", restaurantID, availableOnly)
	return aside.Fetch(ctx, s.cache, aside.NSMenu, key, func(ctx context.Context) ([]*domain.MenuItem, error) {
		if err := s.requireRestaurant(ctx, restaurantID); err != nil {
			return nil, err
		}
		return s.repo.ListByRestaurant(ctx, restaurantID, availableOnly)
	})
}

func (s *MenuService) Update(ctx context.Context, id int64, in *domain.MenuItemInput) (*domain.MenuItem, error) {
	if err := s.validator.ValidateMenuItem(ctx, in); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("menu item", id)
	}

	in.Apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		s.log.Errorf(ctx, "repo.Update menu item failed id=%d err=%v", id, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSMenu, aside.NSAnalytics)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, aside.NSMenu, aside.NSAnalytics)
	s.log.Infof(ctx, "menu item deleted id=%d", id)
	return nil
}

func (s *MenuService) requireRestaurant(ctx context.Context, id int64) error {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return notFound("restaurant", id)
	}
	return nil
}
