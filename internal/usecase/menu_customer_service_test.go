package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/usecase"
	"github.com/Gunvolt24/zomato/pkg/logger"
)

func TestMenuCreate_UnknownRestaurant(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewMenuService(e.menu, e.restaurants, e.cache, logger.NewNop(), e.validator)
	in := &domain.MenuItemInput{Name: "Soup", Price: decimal.NewFromInt(3)}

	e.validator.EXPECT().ValidateMenuItem(gomock.Any(), in).Return(nil)
	e.restaurants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)

	_, err := svc.Create(context.Background(), 1, in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuCreate_VeganImpliesVegetarian(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewMenuService(e.menu, e.restaurants, e.cache, logger.NewNop(), e.validator)
	in := &domain.MenuItemInput{Name: "Salad", Price: decimal.NewFromInt(3), IsVegan: true}

	e.validator.EXPECT().ValidateMenuItem(gomock.Any(), in).Return(nil)
	e.restaurants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Restaurant{ID: 1}, nil)
	e.menu.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	item, err := svc.Create(context.Background(), 1, in)
	require.NoError(t, err)
	require.Equal(t, int64(1), item.RestaurantID)
	require.True(t, item.IsVegetarian)
	require.True(t, item.IsAvailable)
}

func TestMenuListByRestaurant_InvalidatedByItemUpdate(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewMenuService(e.menu, e.restaurants, e.cache, logger.NewNop(), e.validator)
	ctx := context.Background()

	e.restaurants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Restaurant{ID: 1}, nil).Times(2)
	e.menu.EXPECT().ListByRestaurant(gomock.Any(), int64(1), true).Return([]*domain.MenuItem{{ID: 5}}, nil).Times(2)

	_, err := svc.ListByRestaurant(ctx, 1, true)
	require.NoError(t, err)
	_, err = svc.ListByRestaurant(ctx, 1, true)
	require.NoError(t, err)

	in := &domain.MenuItemInput{Name: "Soup", Price: decimal.NewFromInt(4)}
	e.validator.EXPECT().ValidateMenuItem(gomock.Any(), in).Return(nil)
	e.menu.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.MenuItem{ID: 5, RestaurantID: 1}, nil)
	e.menu.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.Update(ctx, 5, in)
	require.NoError(t, err)

	_, err = svc.ListByRestaurant(ctx, 1, true)
	require.NoError(t, err)
}

func TestMenuDelete_ReferencedItemConflicts(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewMenuService(e.menu, e.restaurants, e.cache, logger.NewNop(), e.validator)

	e.menu.EXPECT().Delete(gomock.Any(), int64(5)).Return(fmt.Errorf("delete menu item: %w", domain.ErrConflict))

	require.ErrorIs(t, svc.Delete(context.Background(), 5), domain.ErrConflict)
}

func TestCustomerCreate_DuplicateEmail(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewCustomerService(e.customers, e.cache, logger.NewNop(), e.validator)
	in := &domain.CustomerInput{Name: "A", Email: "a@example.com"}

	e.validator.EXPECT().ValidateCustomer(gomock.Any(), in).Return(nil)
	e.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert customer: %w", domain.ErrConflict))

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestCustomerGetAndList_Cached(t *testing.T) {
	e := newEnv(t)
	svc := usecase.NewCustomerService(e.customers, e.cache, logger.NewNop(), e.validator)
	ctx := context.Background()

	e.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Customer{ID: 1, Email: "a@example.com"}, nil).Times(1)
	e.customers.EXPECT().List(gomock.Any(), 20, 0).Return([]*domain.Customer{{ID: 1}}, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "a@example.com", got.Email)

		list, err := svc.List(ctx, 20, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
}
