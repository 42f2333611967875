package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

const orderColumns = `id, customer_id, restaurant_id, status, total_amount,
	delivery_address, special_instructions, order_date, delivery_time`

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — транзакционно сохраняет заказ и его строки; проставляет id, order_date и id строк.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (err error) {
	if order == nil || len(order.Items) == 0 {
		return errors.New("order is empty or has no items")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, transaction, &err)

	// 1) orders
	if err = transaction.QueryRow(ctx, `
		INSERT INTO orders (
			customer_id, restaurant_id, status, total_amount, delivery_address, special_instructions
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_date
	`,
		order.CustomerID, order.RestaurantID, string(order.Status), numeric(order.TotalAmount),
		order.DeliveryAddress, order.SpecialInstructions,
	).Scan(&order.ID, &order.OrderDate); err != nil {
		return wrapErr("insert order", err)
	}

	// 2) order_items через COPY
	if err = copyItems(ctx, transaction, order.ID, order.Items); err != nil {
		return err
	}

	// 3) id строк: COPY не возвращает их, порядок вставки совпадает с порядком id.
	rows, err := transaction.Query(ctx, `SELECT id FROM order_items WHERE order_id = $1 ORDER BY id`, order.ID)
	if err != nil {
		return wrapErr("select item ids", err)
	}
	i := 0
	for rows.Next() {
		if i >= len(order.Items) {
			break
		}
		if err := rows.Scan(&order.Items[i].ID); err != nil {
			rows.Close()
			return wrapErr("scan item id", err)
		}
		order.Items[i].OrderID = order.ID
		i++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return wrapErr("item ids rows", err)
	}

	// Завершаем транзакцию
	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — заказ со строками. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select order", err)
	}

	itemsByOrder, err := r.itemsFor(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]
	return order, nil
}

// ListByCustomer — постраничный список заказов клиента (новые первыми).
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error) {
	return r.listWithItems(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY order_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
}

// ListByRestaurant — заказы ресторана; пустой status — без фильтра.
func (r *OrderRepository) ListByRestaurant(
	ctx context.Context, restaurantID int64, status domain.OrderStatus, limit, offset int,
) ([]*domain.Order, error) {
	return r.listWithItems(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = $1 AND ($2::text = '' OR status = $2::text)
		ORDER BY order_date DESC, id DESC
		LIMIT $3 OFFSET $4
	`, restaurantID, string(status), limit, offset)
}

// UpdateStatus — compare-and-set по текущему статусу.
// Если заказ успели изменить, возвращает domain.ErrConflict с фактическим статусом.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context, id int64, from, to domain.OrderStatus, deliveryTime *time.Time,
) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET status = $3, delivery_time = COALESCE($4, delivery_time)
		WHERE id = $1 AND status = $2
	`, id, string(from), string(to), deliveryTime)
	if err != nil {
		return wrapErr("update order status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var current string
	err = r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("order", id)
	}
	if err != nil {
		return wrapErr("select order status", err)
	}
	return fmt.Errorf("order %d: %w: status changed concurrently (expected %s, now %s)",
		id, domain.ErrConflict, from, current)
}

// listWithItems — базовый SELECT страницы заказов + один запрос за строками всех заказов страницы.
func (r *OrderRepository) listWithItems(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("select orders", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, wrapErr("scan order", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("orders rows", err)
	}
	rows.Close()
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	itemsByOrder, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	// Склейка: порядок базового SELECT сохраняется.
	for _, order := range orders {
		order.Items = itemsByOrder[order.ID]
	}
	return orders, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, menu_item_id, quantity, item_price, special_requests
		FROM order_items
		WHERE order_id = ANY($1::bigint[])
		ORDER BY order_id, id
	`, orderIDs)
	if err != nil {
		return nil, wrapErr("select order items", err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, money(&item.ItemPrice), &item.SpecialRequests,
		); err != nil {
			return nil, wrapErr("scan order item", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("order items rows", err)
	}
	return result, nil
}

// copyItems — вставка строк заказа через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderID, item.MenuItemID, item.Quantity, numeric(item.ItemPrice), item.SpecialRequests})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "menu_item_id", "quantity", "item_price", "special_requests"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return wrapErr("copy order items", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(
		&order.ID, &order.CustomerID, &order.RestaurantID, &status, money(&order.TotalAmount),
		&order.DeliveryAddress, &order.SpecialInstructions, &order.OrderDate, &order.DeliveryTime,
	); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	return &order, nil
}
