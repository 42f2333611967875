package postgres

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок Postgres, которые переводятся в доменные.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// wrapErr — оборачивает ошибку драйвера контекстом операции и
// переводит нарушения ограничений в domain.ErrConflict / domain.ErrValidation.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: duplicate value (%s)", op, domain.ErrConflict, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: referenced by or references missing row (%s)", op, domain.ErrConflict, pgErr.ConstraintName)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w: constraint %s", op, domain.ErrValidation, pgErr.ConstraintName)
		case codeNumericOutOfRange:
			return fmt.Errorf("%s: %w: numeric value out of range", op, domain.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFound — domain.ErrNotFound с указанием сущности.
func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
}
