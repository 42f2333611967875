package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem — позиция меню ресторана.
type MenuItem struct {
	ID              int64           `json:"id"`
	RestaurantID    int64           `json:"restaurant_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsVegan         bool            `json:"is_vegan"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MenuItemInput — данные для создания/полной замены позиции меню.
type MenuItemInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsVegan         bool            `json:"is_vegan"`
	IsAvailable     *bool           `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
}

// Apply — переносит поля ввода в сущность.
func (in *MenuItemInput) Apply(m *MenuItem) {
	m.Name = in.Name
	m.Description = in.Description
	m.Price = in.Price
	m.Category = in.Category
	m.IsVegetarian = in.IsVegetarian || in.IsVegan
	m.IsVegan = in.IsVegan
	m.IsAvailable = in.IsAvailable == nil || *in.IsAvailable
	m.PreparationTime = in.PreparationTime
}

// MenuItemImport — запись файла импорта меню: позиция с привязкой к ресторану.
type MenuItemImport struct {
	RestaurantID int64 `json:"restaurant_id"`
	MenuItemInput
}
