package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEventType — тип события заказа.
type OrderEventType string

const (
	EventOrderCreated       OrderEventType = "order.created"
	EventOrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent — событие, публикуемое в шину после изменения заказа.
type OrderEvent struct {
	Type         OrderEventType  `json:"type"`
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	RestaurantID int64           `json:"restaurant_id"`
	From         OrderStatus     `json:"from,omitempty"`
	To           OrderStatus     `json:"to"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// NewOrderEvent — событие по текущему состоянию заказа.
func NewOrderEvent(typ OrderEventType, o *Order, from OrderStatus, at time.Time) OrderEvent {
	return OrderEvent{
		Type:         typ,
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		From:         from,
		To:           o.Status,
		TotalAmount:  o.TotalAmount,
		OccurredAt:   at.UTC(),
	}
}
