package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale — копейки: колонки сумм в БД объявлены как NUMERIC(10,2).
const MoneyScale = 2

// MaxMoney — наибольшая сумма, которая помещается в NUMERIC(10,2).
var MaxMoney = decimal.New(9_999_999_999, -MoneyScale)

func init() {
	// Суммы в JSON — числа, а не строки.
	decimal.MarshalJSONWithoutQuotes = true
}

// CheckMoney — сумма неотрицательна, не длиннее двух знаков после запятой и не больше MaxMoney.
func CheckMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	if !v.Equal(v.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: %s must have at most %d decimal places", ErrValidation, field, MoneyScale)
	}
	if v.GreaterThan(MaxMoney) {
		return fmt.Errorf("%w: %s must not exceed %s", ErrValidation, field, MaxMoney.StringFixed(MoneyScale))
	}
	return nil
}
