package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order — заказ клиента в ресторане.
// Меняется только через TransitionTo и RecalculateTotal.
type Order struct {
	ID                  int64           `json:"id"`
	CustomerID          int64           `json:"customer_id"`
	RestaurantID        int64           `json:"restaurant_id"`
	Status              OrderStatus     `json:"status"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     string          `json:"delivery_address"`
	SpecialInstructions string          `json:"special_instructions"`
	OrderDate           time.Time       `json:"order_date"`
	DeliveryTime        *time.Time      `json:"delivery_time,omitempty"`
	Items               []OrderItem     `json:"items"`
}

// OrderItem — строка заказа; ItemPrice фиксирует цену позиции на момент заказа.
type OrderItem struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	MenuItemID      int64           `json:"menu_item_id"`
	Quantity        int             `json:"quantity"`
	ItemPrice       decimal.Decimal `json:"item_price"`
	SpecialRequests string          `json:"special_requests,omitempty"`
}

// CreateOrderInput — запрос на создание заказа.
type CreateOrderInput struct {
	CustomerID          int64            `json:"customer_id"`
	RestaurantID        int64            `json:"restaurant_id"`
	DeliveryAddress     string           `json:"delivery_address"`
	SpecialInstructions string           `json:"special_instructions"`
	Items               []OrderItemInput `json:"items"`
}

// OrderItemInput — строка запроса на создание заказа.
type OrderItemInput struct {
	MenuItemID      int64  `json:"menu_item_id"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"special_requests"`
}

// StatusUpdateMessage — команда смены статуса (тело сообщения Kafka).
type StatusUpdateMessage struct {
	OrderID int64       `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

// RecalculateTotal — пересчёт суммы заказа по строкам с округлением до копеек.
// Сумма сверх MaxMoney отклоняется (ErrValidation), заказ при этом не меняется.
func (o *Order) RecalculateTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].ItemPrice.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity))))
	}
	total = total.Round(MoneyScale)
	if err := CheckMoney("total_amount", total); err != nil {
		return decimal.Zero, err
	}
	o.TotalAmount = total
	return total, nil
}

// TransitionTo — переводит заказ в статус to, если переход разрешён.
// При отказе заказ не меняется.
func (o *Order) TransitionTo(to OrderStatus, at time.Time) error {
	if err := ValidateTransition(o.Status, to); err != nil {
		return err
	}
	o.Status = to
	if to == StatusDelivered {
		t := at
		o.DeliveryTime = &t
	}
	return nil
}

// CanBeReviewed — отзыв допустим только на доставленный заказ.
func (o *Order) CanBeReviewed() error {
	if o.Status != StatusDelivered {
		return fmt.Errorf("%w: order %d is %s, only delivered orders can be reviewed",
			ErrReviewNotAllowed, o.ID, o.Status)
	}
	return nil
}
