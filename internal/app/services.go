package app

import (
	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/internal/repo/postgres"
	rest "github.com/Gunvolt24/zomato/internal/transport/http"
	"github.com/Gunvolt24/zomato/internal/usecase"
	"github.com/Gunvolt24/zomato/pkg/validate"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Domain — собранный прикладной слой: сервисы для HTTP и сервис заказов для консьюмера.
type Domain struct {
	Services rest.Services
	Orders   *usecase.OrderService
}

// BuildDomain — репозитории Postgres, общий cache-aside и сервисы поверх них.
func BuildDomain(pool *pgxpool.Pool, cache *aside.Cache, publisher ports.EventPublisher, log ports.Logger) *Domain {
	validator := validate.NewValidator()

	restaurantRepo := postgres.NewRestaurantRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	orders := usecase.NewOrderService(usecase.OrderDeps{
		Orders:      orderRepo,
		Customers:   customerRepo,
		Restaurants: restaurantRepo,
		Menu:        menuRepo,
		Cache:       cache,
		Publisher:   publisher,
		Log:         log,
		Validator:   validator,
	})

	return &Domain{
		Orders: orders,
		Services: rest.Services{
			Restaurants: usecase.NewRestaurantService(restaurantRepo, cache, log, validator),
			Menu:        usecase.NewMenuService(menuRepo, restaurantRepo, cache, log, validator),
			Customers:   usecase.NewCustomerService(customerRepo, cache, log, validator),
			Orders:      orders,
			Reviews: usecase.NewReviewService(usecase.ReviewDeps{
				Reviews:     reviewRepo,
				Orders:      orderRepo,
				Restaurants: restaurantRepo,
				Customers:   customerRepo,
				Cache:       cache,
				Log:         log,
				Validator:   validator,
			}),
			Analytics: usecase.NewAnalyticsService(analyticsRepo, restaurantRepo, customerRepo, cache),
			Cache:     cache,
		},
	}
}
