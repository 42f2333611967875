package usecase

import (
	"fmt"

	"github.com/Gunvolt24/zomato/internal/domain"
)

// Размер выборки популярных позиций.
const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 50
)

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
}

// popularLimit — limit <= 0 даёт значение по умолчанию, сверху ограничен MaxPopularLimit.
func popularLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPopularLimit
	case limit > MaxPopularLimit:
		return MaxPopularLimit
	default:
		return limit
	}
}
