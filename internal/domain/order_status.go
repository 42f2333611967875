package domain

import (
	"fmt"
	"strings"
)

// OrderStatus — статус заказа в его жизненном цикле.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// AllStatuses — все статусы в порядке жизненного цикла.
var AllStatuses = []OrderStatus{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// transitions — таблица допустимых переходов; терминальные статусы без исходящих рёбер.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:         {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Valid — статус входит в перечисление.
func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal — из статуса нет переходов.
func (s OrderStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// NextStatuses — копия списка допустимых следующих статусов.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return append([]OrderStatus(nil), transitions[s]...)
}

func (s OrderStatus) String() string { return string(s) }

// ParseOrderStatus — разбор статуса из строки (регистр и пробелы по краям игнорируются).
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, raw)
	}
	return s, nil
}

// CanTransition — есть ли ребро from -> to в таблице переходов.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition — как CanTransition, но с описательной ошибкой.
func ValidateTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, to)
	}
	if CanTransition(from, to) {
		return nil
	}
	if from.Terminal() {
		return fmt.Errorf("%w: order is already %s", ErrInvalidTransition, from)
	}
	allowed := make([]string, 0, len(transitions[from]))
	for _, next := range transitions[from] {
		allowed = append(allowed, string(next))
	}
	return fmt.Errorf("%w: %s -> %s (allowed: %s)", ErrInvalidTransition, from, to, strings.Join(allowed, ", "))
}
