package usecase_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/cache/memory"
	"github.com/Gunvolt24/zomato/internal/ports/mocks"
	"github.com/Gunvolt24/zomato/pkg/logger"
)

// env — моки репозиториев + настоящий кэш в памяти.
type env struct {
	ctrl        *gomock.Controller
	store       *memory.Store
	cache       *aside.Cache
	restaurants *mocks.MockRestaurantRepository
	menu        *mocks.MockMenuRepository
	customers   *mocks.MockCustomerRepository
	orders      *mocks.MockOrderRepository
	reviews     *mocks.MockReviewRepository
	analytics   *mocks.MockAnalyticsRepository
	publisher   *mocks.MockEventPublisher
	validator   *mocks.MockValidator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memory.NewStore(0)
	return &env{
		ctrl:        ctrl,
		store:       store,
		cache:       aside.New(store, nil, logger.NewNop()),
		restaurants: mocks.NewMockRestaurantRepository(ctrl),
		menu:        mocks.NewMockMenuRepository(ctrl),
		customers:   mocks.NewMockCustomerRepository(ctrl),
		orders:      mocks.NewMockOrderRepository(ctrl),
		reviews:     mocks.NewMockReviewRepository(ctrl),
		analytics:   mocks.NewMockAnalyticsRepository(ctrl),
		publisher:   mocks.NewMockEventPublisher(ctrl),
		validator:   mocks.NewMockValidator(ctrl),
	}
}
