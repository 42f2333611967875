package postgres

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Проверка, что AnalyticsRepository удовлетворяет интерфейсу ports.AnalyticsRepository.
var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)

// Сколько позиций попадает в сводку ресторана и сколько любимых ресторанов у клиента.
const (
	restaurantTopItems   = 5
	customerTopFavorites = 3
)

// AnalyticsRepository — агрегирующие запросы. Отменённые заказы в выручку не входят.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) RestaurantAnalytics(ctx context.Context, restaurantID int64) (*domain.RestaurantAnalytics, error) {
	result := &domain.RestaurantAnalytics{
		RestaurantID:   restaurantID,
		OrdersByStatus: make(map[domain.OrderStatus]int, len(domain.AllStatuses)),
	}

	// 1) заказы по статусам
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE restaurant_id = $1
		GROUP BY status
	`, restaurantID)
	if err != nil {
		return nil, wrapErr("select orders by status", err)
	}
	defer rows.Close()

	billable := 0
	for rows.Next() {
		var (
			status string
			count  int
			amount decimal.Decimal
		)
		if err := rows.Scan(&status, &count, money(&amount)); err != nil {
			return nil, wrapErr("scan status row", err)
		}
		st := domain.OrderStatus(status)
		result.OrdersByStatus[st] = count
		result.TotalOrders += count
		switch st {
		case domain.StatusDelivered:
			result.DeliveredOrders = count
		case domain.StatusCancelled:
			result.CancelledOrders = count
			continue
		}
		billable += count
		result.TotalRevenue = result.TotalRevenue.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("status rows", err)
	}
	rows.Close()

	result.AverageOrderValue = averageOf(result.TotalRevenue, billable)

	// 2) отзывы
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)::float8, COUNT(*)
		FROM reviews WHERE restaurant_id = $1
	`, restaurantID).Scan(&result.AverageRating, &result.ReviewCount); err != nil {
		return nil, wrapErr("select review stats", err)
	}

	// 3) популярные позиции
	result.PopularItems, err = r.PopularItems(ctx, restaurantID, restaurantTopItems)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AnalyticsRepository) CustomerAnalytics(ctx context.Context, customerID int64) (*domain.CustomerAnalytics, error) {
	result := &domain.CustomerAnalytics{CustomerID: customerID}

	var billable int
	if err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status <> 'cancelled'),
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0)
		FROM orders WHERE customer_id = $1
	`, customerID).Scan(&result.TotalOrders, &billable, money(&result.TotalSpent)); err != nil {
		return nil, wrapErr("select customer totals", err)
	}
	result.AverageOrderValue = averageOf(result.TotalSpent, billable)

	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, COUNT(*) AS cnt
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = $1
		GROUP BY r.id, r.name
		ORDER BY cnt DESC, r.id
		LIMIT $2
	`, customerID, customerTopFavorites)
	if err != nil {
		return nil, wrapErr("select favorite restaurants", err)
	}
	defer rows.Close()

	result.FavoriteRestaurants = make([]domain.FavoriteRestaurant, 0, customerTopFavorites)
	for rows.Next() {
		var fav domain.FavoriteRestaurant
		if err := rows.Scan(&fav.RestaurantID, &fav.Name, &fav.OrderCount); err != nil {
			return nil, wrapErr("scan favorite restaurant", err)
		}
		result.FavoriteRestaurants = append(result.FavoriteRestaurants, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("favorite rows", err)
	}
	return result, nil
}

// PopularItems — позиции с наибольшим проданным количеством; restaurantID == 0 — по всей платформе.
func (r *AnalyticsRepository) PopularItems(ctx context.Context, restaurantID int64, limit int) ([]domain.PopularItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			mi.id, mi.restaurant_id, mi.name,
			SUM(oi.quantity) AS qty,
			COUNT(DISTINCT oi.order_id),
			SUM(oi.quantity * oi.item_price)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.status <> 'cancelled'
		  AND ($1::bigint = 0 OR mi.restaurant_id = $1::bigint)
		GROUP BY mi.id, mi.restaurant_id, mi.name
		ORDER BY qty DESC, mi.id
		LIMIT $2
	`, restaurantID, limit)
	if err != nil {
		return nil, wrapErr("select popular items", err)
	}
	defer rows.Close()

	result := make([]domain.PopularItem, 0, limit)
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(
			&item.MenuItemID, &item.RestaurantID, &item.Name,
			&item.TotalQuantity, &item.OrderCount, money(&item.Revenue),
		); err != nil {
			return nil, wrapErr("scan popular item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("popular rows", err)
	}
	return result, nil
}

// averageOf — средний чек с округлением до копеек; без заказов — ноль.
func averageOf(total decimal.Decimal, orders int) decimal.Decimal {
	if orders <= 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(orders)), domain.MoneyScale)
}
