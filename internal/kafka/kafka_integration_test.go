//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	cachemem "github.com/Gunvolt24/zomato/internal/cache/memory"
	"github.com/Gunvolt24/zomato/internal/domain"
	ikafka "github.com/Gunvolt24/zomato/internal/kafka"
	"github.com/Gunvolt24/zomato/internal/ports"
	pgrepo "github.com/Gunvolt24/zomato/internal/repo/postgres"
	"github.com/Gunvolt24/zomato/internal/testutil"
	"github.com/Gunvolt24/zomato/internal/usecase"
	"github.com/Gunvolt24/zomato/pkg/logger"
	"github.com/Gunvolt24/zomato/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

type stack struct {
	ctx    context.Context
	pool   *pgxpool.Pool
	kf     *testutil.KafkaEnv
	orders *pgrepo.OrderRepository
	svc    *usecase.OrderService
}

// newStack — Postgres + Redpanda, схема, сервис заказов с публикацией событий в eventsTopic.
func newStack(t *testing.T, eventsTopic string) *stack {
	t.Helper()

	// длинный контекст — на контейнеры
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrations(ctxStart, pg.Pool))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "zomato-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст — сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	logg, closeLog, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeLog() })

	var publisher ports.EventPublisher = ikafka.NopPublisher{}
	if eventsTopic != "" {
		require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], eventsTopic))
		producer := ikafka.NewProducer(&ikafka.ProducerConfig{Brokers: kf.Brokers, Topic: eventsTopic})
		t.Cleanup(func() { _ = producer.Close() })
		publisher = producer
	}

	orders := pgrepo.NewOrderRepository(pg.Pool)
	svc := usecase.NewOrderService(usecase.OrderDeps{
		Orders:      orders,
		Customers:   pgrepo.NewCustomerRepository(pg.Pool),
		Restaurants: pgrepo.NewRestaurantRepository(pg.Pool),
		Menu:        pgrepo.NewMenuRepository(pg.Pool),
		Cache:       aside.New(cachemem.NewStore(100), nil, logg),
		Publisher:   publisher,
		Log:         logg,
		Validator:   validate.NewValidator(),
	})
	return &stack{ctx: ctx, pool: pg.Pool, kf: kf, orders: orders, svc: svc}
}

// placeOrder — ресторан, клиент, позиция меню и заказ в статусе placed.
func (s *stack) placeOrder(t *testing.T) *domain.Order {
	t.Helper()
	restaurant := testutil.MakeRestaurant()
	require.NoError(t, pgrepo.NewRestaurantRepository(s.pool).Create(s.ctx, restaurant))
	customer := testutil.MakeCustomer()
	require.NoError(t, pgrepo.NewCustomerRepository(s.pool).Create(s.ctx, customer))
	item := testutil.MakeMenuItem(restaurant.ID, "12.50")
	require.NoError(t, pgrepo.NewMenuRepository(s.pool).Create(s.ctx, item))

	order, err := s.svc.Create(s.ctx, &domain.CreateOrderInput{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Items:        []domain.OrderItemInput{{MenuItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	return order
}

func (s *stack) startConsumer(t *testing.T, topic, group string) {
	t.Helper()
	logg := logger.NewNop()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
	}, s.svc, logg)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()
}

func (s *stack) waitStatus(t *testing.T, orderID int64, want domain.OrderStatus) {
	t.Helper()
	deadline := time.Now().Add(25 * time.Second)
	for {
		got, err := s.orders.GetByID(s.ctx, orderID)
		require.NoError(t, err)
		if got != nil && got.Status == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("order %d did not reach %s in time", orderID, want)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Команды смены статуса применяются по порядку
func TestKafka_StatusMessages_Applied_TC(t *testing.T) {
	s := newStack(t, "")
	order := s.placeOrder(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group)

	require.NoError(t, testutil.WriteMessages(s.ctx, s.kf.Brokers, topic,
		testutil.StatusMessage(order.ID, domain.StatusConfirmed),
		testutil.StatusMessage(order.ID, domain.StatusPreparing),
	))
	s.waitStatus(t, order.ID, domain.StatusPreparing)
}

// 2) Мусор и запрещённый переход коммитятся и не блокируют следующее валидное сообщение
func TestKafka_PermanentFailures_Skipped_TC(t *testing.T) {
	s := newStack(t, "")
	order := s.placeOrder(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group)

	require.NoError(t, testutil.WriteMessages(s.ctx, s.kf.Brokers, topic,
		[]byte(`{"order_id":`),                                   // битый JSON
		[]byte(`{"order_id":1,"status":"x","extra":true}`),       // неизвестное поле
		testutil.StatusMessage(order.ID, domain.StatusDelivered), // placed -> delivered запрещён
		testutil.StatusMessage(999999, domain.StatusConfirmed),   // заказа нет
		testutil.StatusMessage(order.ID, domain.StatusCancelled),
	))
	s.waitStatus(t, order.ID, domain.StatusCancelled)
}

// 3) Создание заказа и смена статуса публикуют события с ключом = id заказа
func TestKafka_OrderEvents_Published_TC(t *testing.T) {
	eventsTopic, group := testutil.UniqueTopicAndGroup("order-events-" + safe(t))
	s := newStack(t, eventsTopic)

	order := s.placeOrder(t)
	_, err := s.svc.UpdateStatus(s.ctx, order.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     s.kf.Brokers,
		Topic:       eventsTopic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	want := []domain.OrderEventType{domain.EventOrderCreated, domain.EventOrderStatusChanged}
	for _, typ := range want {
		msg, err := r.ReadMessage(s.ctx)
		require.NoError(t, err)

		var event domain.OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		require.Equal(t, typ, event.Type)
		require.Equal(t, order.ID, event.OrderID)
		require.Equal(t, string(typ), headerValue(msg.Headers, ikafka.HeaderEventType))
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
