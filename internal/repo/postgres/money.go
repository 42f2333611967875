package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// numeric — decimal.Decimal как параметр запроса или значение COPY.
func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// moneyDest — приёмник NUMERIC для Scan; NULL читается как ноль.
type moneyDest struct {
	dst *decimal.Decimal
}

func money(dst *decimal.Decimal) *moneyDest { return &moneyDest{dst: dst} }

// ScanNumeric — реализация pgtype.NumericScanner.
func (m *moneyDest) ScanNumeric(v pgtype.Numeric) error {
	if !v.Valid {
		*m.dst = decimal.Zero
		return nil
	}
	if v.NaN || v.InfinityModifier != pgtype.Finite {
		return errors.New("money column holds NaN or infinity")
	}
	*m.dst = decimal.NewFromBigInt(v.Int, v.Exp).Round(domain.MoneyScale)
	return nil
}
