package domain

import "errors"

// Базовые (sentinel) ошибки доменного слоя.
// Слои выше оборачивают их через fmt.Errorf("...: %w", err) и проверяют через errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReviewNotAllowed  = errors.New("review not allowed")
	ErrConflict          = errors.New("conflict")
)

// IsPermanent — ошибка, повтор которой не изменит результат
// (битые данные, несуществующая сущность, запрещённый переход).
func IsPermanent(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrReviewNotAllowed) ||
		errors.Is(err, ErrConflict)
}
