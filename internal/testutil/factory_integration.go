//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/zomato/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeRestaurant — валидный активный ресторан.
func MakeRestaurant(opts ...func(*domain.Restaurant)) *domain.Restaurant {
	r := &domain.Restaurant{
		Name:        "Resto " + UniqSuffix(),
		Description: "test kitchen",
		CuisineType: "Italian",
		Address:     "Main st 1",
		PhoneNumber: "+1 202 555 0101",
		IsActive:    true,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MakeMenuItem — доступная позиция меню ресторана.
func MakeMenuItem(restaurantID int64, price string, opts ...func(*domain.MenuItem)) *domain.MenuItem {
	m := &domain.MenuItem{
		RestaurantID:    restaurantID,
		Name:            "Dish " + UniqSuffix(),
		Description:     "tasty",
		Price:           decimal.RequireFromString(price),
		Category:        "mains",
		IsAvailable:     true,
		PreparationTime: 15,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MakeCustomer — клиент с уникальным email.
func MakeCustomer(opts ...func(*domain.Customer)) *domain.Customer {
	c := &domain.Customer{
		Name:        "John Smith",
		Email:       "john-" + UniqSuffix() + "@example.com",
		PhoneNumber: "+1 202 555 0102",
		Address:     "Elm st 5",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MakeOrder — заказ в статусе placed со строками по позициям меню (по одной штуке).
func MakeOrder(customerID, restaurantID int64, items ...*domain.MenuItem) *domain.Order {
	o := &domain.Order{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Status:          domain.StatusPlaced,
		DeliveryAddress: "Elm st 5",
	}
	for _, m := range items {
		o.Items = append(o.Items, domain.OrderItem{MenuItemID: m.ID, Quantity: 1, ItemPrice: m.Price})
	}
	if _, err := o.RecalculateTotal(); err != nil {
		panic(err)
	}
	return o
}
