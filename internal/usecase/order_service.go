package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/metrics"
	"github.com/Gunvolt24/zomato/pkg/validate"
)

// Проверка, что OrderService удовлетворяет интерфейсу ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// Результаты решения о смене статуса (метка result).
const (
	transitionAccepted = "accepted"
	transitionRejected = "rejected"
)

// OrderService — прикладная логика работы с заказами (без знаний о транспорте).
type OrderService struct {
	repo        ports.OrderRepository
	customers   ports.CustomerRepository
	restaurants ports.RestaurantRepository
	menu        ports.MenuRepository
	cache       *aside.Cache
	publisher   ports.EventPublisher
	log         ports.Logger
	validator   ports.Validator
	now         func() time.Time

	getByID func(context.Context, int64) (*domain.Order, error)
}

// OrderDeps — зависимости OrderService.
type OrderDeps struct {
	Orders      ports.OrderRepository
	Customers   ports.CustomerRepository
	Restaurants ports.RestaurantRepository
	Menu        ports.MenuRepository
	Cache       *aside.Cache
	Publisher   ports.EventPublisher
	Log         ports.Logger
	Validator   ports.Validator
}

// NewOrderService — DI-конструктор.
func NewOrderService(deps OrderDeps) *OrderService {
	return &OrderService{
		repo:        deps.Orders,
		customers:   deps.Customers,
		restaurants: deps.Restaurants,
		menu:        deps.Menu,
		cache:       deps.Cache,
		publisher:   deps.Publisher,
		log:         deps.Log,
		validator:   deps.Validator,
		now:         time.Now,
		getByID:     aside.Wrap(deps.Cache, aside.NSOrders, "get", deps.Orders.GetByID),
	}
}

// Create — оформление заказа.
// Шаги:
//  1. валидация запроса;
//  2. клиент и ресторан существуют, ресторан принимает заказы;
//  3. все позиции из меню этого ресторана и доступны, цена фиксируется в строке;
//  4. сумма пересчитывается по строкам, заказ сохраняется в транзакции;
//  5. очистка кэша и событие order.created.
func (s *OrderService) Create(ctx context.Context, in *domain.CreateOrderInput) (*domain.Order, error) {
	if err := s.validator.ValidateOrder(ctx, in); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, notFound("customer", in.CustomerID)
	}

	restaurant, err := s.restaurants.GetByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, notFound("restaurant", in.RestaurantID)
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("%w: restaurant %d is not accepting orders", domain.ErrValidation, restaurant.ID)
	}

	ids := make([]int64, 0, len(in.Items))
	for _, line := range in.Items {
		ids = append(ids, line.MenuItemID)
	}
	menuItems, err := s.menu.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID:          customer.ID,
		RestaurantID:        restaurant.ID,
		Status:              domain.StatusPlaced,
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: in.SpecialInstructions,
		Items:               make([]domain.OrderItem, 0, len(in.Items)),
	}
	if order.DeliveryAddress == "" {
		order.DeliveryAddress = customer.Address
	}
	for i, line := range in.Items {
		item, ok := menuItems[line.MenuItemID]
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: items[%d]: menu item %d does not exist", domain.ErrValidation, i, line.MenuItemID)
		case item.RestaurantID != restaurant.ID:
			return nil, fmt.Errorf("%w: items[%d]: menu item %d belongs to another restaurant", domain.ErrValidation, i, line.MenuItemID)
		case !item.IsAvailable:
			return nil, fmt.Errorf("%w: items[%d]: menu item %d is not available", domain.ErrValidation, i, line.MenuItemID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:      item.ID,
			Quantity:        line.Quantity,
			ItemPrice:       item.Price,
			SpecialRequests: line.SpecialRequests,
		})
	}
	if order.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery_address is required (customer %d has no address)", domain.ErrValidation, customer.ID)
	}
	if _, err := order.RecalculateTotal(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Create order failed customer_id=%d restaurant_id=%d err=%v",
			order.CustomerID, order.RestaurantID, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSOrders, aside.NSAnalytics)
	s.publish(ctx, domain.NewOrderEvent(domain.EventOrderCreated, order, "", order.OrderDate))
	s.log.Infof(ctx, "order created id=%d items=%d total=%s", order.ID, len(order.Items), order.TotalAmount.StringFixed(domain.MoneyScale))
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("order", id)
	}
	return order, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error) {
	key := aside.Key(aside.NSOrders, "by_customer", customerID, limit, offset)
	return aside.Fetch(ctx, s.cache, aside.NSOrders, key, func(ctx context.Context) ([]*domain.Order, error) {
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

// ListByRestaurant — пустой status означает «любой».
func (s *OrderService) ListByRestaurant(
	ctx context.Context, restaurantID int64, status domain.OrderStatus, limit, offset int,
) ([]*domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}
	key := aside.Key(aside.NSOrders, "by_restaurant", restaurantID, status, limit, offset)
	return aside.Fetch(ctx, s.cache, aside.NSOrders, key, func(ctx context.Context) ([]*domain.Order, error) {
		restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			return nil, notFound("restaurant", restaurantID)
		}
		return s.repo.ListByRestaurant(ctx, restaurantID, status, limit, offset)
	})
}

// UpdateStatus — переход по таблице статусов с сохранением через compare-and-set.
// Отказ (недопустимый переход или параллельное изменение) хранимый статус не меняет.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("order", id)
	}

	from := order.Status
	if err := order.TransitionTo(to, s.now().UTC()); err != nil {
		metrics.OrderTransitions.WithLabelValues(string(from), string(to), transitionRejected).Inc()
		s.log.Warnf(ctx, "order status change rejected id=%d %s -> %s: %v", id, from, to, err)
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, from, to, order.DeliveryTime); err != nil {
		metrics.OrderTransitions.WithLabelValues(string(from), string(to), transitionRejected).Inc()
		s.log.Warnf(ctx, "repo.UpdateStatus failed id=%d %s -> %s: %v", id, from, to, err)
		return nil, err
	}
	metrics.OrderTransitions.WithLabelValues(string(from), string(to), transitionAccepted).Inc()

	s.cache.Invalidate(ctx, aside.NSOrders, aside.NSAnalytics)
	s.publish(ctx, domain.NewOrderEvent(domain.EventOrderStatusChanged, order, from, s.now()))
	s.log.Infof(ctx, "order status changed id=%d %s -> %s", id, from, to)
	return order, nil
}

// ApplyStatusMessage — команда смены статуса из Kafka (raw JSON).
// Строгий разбор: неизвестные поля и данные после объекта — ошибка валидации.
func (s *OrderService) ApplyStatusMessage(ctx context.Context, raw []byte) error {
	var msg domain.StatusUpdateMessage
	if err := validate.DecodeStrict(raw, &msg); err != nil {
		s.log.Warnf(ctx, "invalid status message: %v", err)
		return err
	}
	if msg.OrderID <= 0 {
		return fmt.Errorf("%w: order_id must be positive", domain.ErrValidation)
	}
	to, err := domain.ParseOrderStatus(string(msg.Status))
	if err != nil {
		return err
	}

	if _, err := s.UpdateStatus(ctx, msg.OrderID, to); err != nil {
		return fmt.Errorf("apply status message order_id=%d: %w", msg.OrderID, err)
	}
	return nil
}

// publish — ошибка публикации логируется, запрос она не ломает.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if err := s.publisher.Publish(ctx, &event); err != nil {
		s.log.Warnf(ctx, "publish %s order_id=%d failed: %v", event.Type, event.OrderID, err)
	}
}
