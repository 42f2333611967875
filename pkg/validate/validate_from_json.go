package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// DecodeStrict — строгий разбор JSON: неизвестные поля и данные после объекта запрещены.
// Ошибки разбора оборачивают domain.ErrValidation.
func DecodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrValidation)
	}
	return nil
}

// ValidateMenuItemFromJSON — разбор и валидация записи импорта меню.
// Возвращает нормализованную запись (vegan ⇒ vegetarian, is_available по умолчанию true).
func ValidateMenuItemFromJSON(ctx context.Context, validator ports.Validator, raw []byte) (*domain.MenuItemImport, error) {
	var rec domain.MenuItemImport
	if err := DecodeStrict(raw, &rec); err != nil {
		return nil, err
	}
	if rec.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant_id обязателен", domain.ErrValidation)
	}
	if err := validator.ValidateMenuItem(ctx, &rec.MenuItemInput); err != nil {
		return nil, err
	}

	var item domain.MenuItem
	rec.Apply(&item)
	rec.IsVegetarian = item.IsVegetarian
	rec.IsAvailable = &item.IsAvailable
	return &rec, nil
}
