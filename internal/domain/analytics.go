package domain

import "github.com/shopspring/decimal"

// PopularItem — агрегат продаж позиции меню.
type PopularItem struct {
	MenuItemID    int64           `json:"menu_item_id"`
	RestaurantID  int64           `json:"restaurant_id"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"total_quantity"`
	OrderCount    int             `json:"order_count"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// RestaurantAnalytics — сводка по ресторану. Выручка считается без отменённых заказов.
type RestaurantAnalytics struct {
	RestaurantID      int64               `json:"restaurant_id"`
	TotalOrders       int                 `json:"total_orders"`
	DeliveredOrders   int                 `json:"delivered_orders"`
	CancelledOrders   int                 `json:"cancelled_orders"`
	OrdersByStatus    map[OrderStatus]int `json:"orders_by_status"`
	TotalRevenue      decimal.Decimal     `json:"total_revenue"`
	AverageOrderValue decimal.Decimal     `json:"average_order_value"`
	AverageRating     float64             `json:"average_rating"`
	ReviewCount       int                 `json:"review_count"`
	PopularItems      []PopularItem       `json:"popular_items"`
}

// FavoriteRestaurant — ресторан, в котором клиент заказывает чаще всего.
type FavoriteRestaurant struct {
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	OrderCount   int    `json:"order_count"`
}

// CustomerAnalytics — сводка по клиенту.
type CustomerAnalytics struct {
	CustomerID          int64                `json:"customer_id"`
	TotalOrders         int                  `json:"total_orders"`
	TotalSpent          decimal.Decimal      `json:"total_spent"`
	AverageOrderValue   decimal.Decimal      `json:"average_order_value"`
	FavoriteRestaurants []FavoriteRestaurant `json:"favorite_restaurants"`
}
