package domain

import "time"

// Restaurant — ресторан. Rating пересчитывается из отзывов.
type Restaurant struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CuisineType string    `json:"cuisine_type"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"is_active"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RestaurantInput — данные для создания/полной замены ресторана.
// IsActive == nil трактуется как true.
type RestaurantInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisine_type"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	IsActive    *bool  `json:"is_active"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// Apply — переносит поля ввода в сущность (id, рейтинг и даты не трогает).
func (in *RestaurantInput) Apply(r *Restaurant) {
	r.Name = in.Name
	r.Description = in.Description
	r.CuisineType = in.CuisineType
	r.Address = in.Address
	r.PhoneNumber = in.PhoneNumber
	r.IsActive = in.IsActive == nil || *in.IsActive
	r.OpeningTime = in.OpeningTime
	r.ClosingTime = in.ClosingTime
}

// RestaurantFilter — параметры выборки списка ресторанов.
type RestaurantFilter struct {
	Cuisine    string
	ActiveOnly bool
	Limit      int
	Offset     int
}
