package domain

import "time"

// Review — отзыв на доставленный заказ; не больше одного на заказ.
type Review struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	OrderID      int64     `json:"order_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateReviewInput — запрос на создание отзыва.
type CreateReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
