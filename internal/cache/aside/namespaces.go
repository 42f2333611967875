package aside

import (
	"fmt"
	"strings"
	"time"
)

// Пространства имён кэша: у каждого свой TTL и своя очистка при записи.
const (
	NSRestaurants = "restaurants"
	NSMenu        = "menu"
	NSCustomers   = "customers"
	NSOrders      = "orders"
	NSReviews     = "reviews"
	NSAnalytics   = "analytics"
)

// Namespaces — все известные пространства имён.
var Namespaces = []string{NSRestaurants, NSMenu, NSCustomers, NSOrders, NSReviews, NSAnalytics}

// DefaultTTLs — сроки жизни по умолчанию.
func DefaultTTLs() map[string]time.Duration {
	return map[string]time.Duration{
		NSRestaurants: 5 * time.Minute,
		NSMenu:        10 * time.Minute,
		NSCustomers:   5 * time.Minute,
		NSOrders:      2 * time.Minute,
		NSReviews:     5 * time.Minute,
		NSAnalytics:   15 * time.Minute,
	}
}

// IsKnownNamespace — ns входит в Namespaces.
func IsKnownNamespace(ns string) bool {
	for _, known := range Namespaces {
		if ns == known {
			return true
		}
	}
	return false
}

// Key — ключ вида "namespace:op:arg1:arg2".
// Один и тот же набор аргументов всегда даёт один и тот же ключ.
func Key(namespace, op string, args ...any) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte(':')
	b.WriteString(op)
	for _, a := range args {
		b.WriteByte(':')
		fmt.Fprint(&b, a)
	}
	return b.String()
}

// prefix — префикс всех ключей пространства имён.
func prefix(namespace string) string { return namespace + ":" }
