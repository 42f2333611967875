package validate

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что Validator удовлетворяет интерфейсу ports.Validator.
var _ ports.Validator = (*Validator)(nil)

// Ограничения входных данных.
const (
	MaxNameLen          = 100
	MaxCuisineLen       = 50
	MaxInstructionsLen  = 500
	MaxCommentLen       = 1000
	MaxPreparationTime  = 240
	MaxOrderItems       = 50
	MaxItemQuantity     = 100
	MinRating           = 1
	MaxRating           = 5
	clockLayout         = "15:04"
	phonePatternExample = "+7 (999) 123-45-67"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,18}[0-9]$`)

// Validator — проверка входных данных API. Любая ошибка оборачивает domain.ErrValidation.
type Validator struct{}

// NewValidator — конструктор Validator.
func NewValidator() *Validator { return &Validator{} }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

// ValidateRestaurant — обязательные поля, длины, телефон и часы работы "HH:MM".
func (v *Validator) ValidateRestaurant(_ context.Context, in *domain.RestaurantInput) error {
	if in == nil {
		return invalid("ресторан не может быть nil")
	}
	if err := requiredName("name", in.Name, MaxNameLen); err != nil {
		return err
	}
	if err := requiredName("cuisine_type", in.CuisineType, MaxCuisineLen); err != nil {
		return err
	}
	if strings.TrimSpace(in.Address) == "" {
		return invalid("address обязателен")
	}
	if err := optionalPhone(in.PhoneNumber); err != nil {
		return err
	}
	if err := optionalClock("opening_time", in.OpeningTime); err != nil {
		return err
	}
	return optionalClock("closing_time", in.ClosingTime)
}

// ValidateMenuItem — имя, положительная цена в пределах NUMERIC(10,2), время приготовления в [0, 240] минут.
func (v *Validator) ValidateMenuItem(_ context.Context, in *domain.MenuItemInput) error {
	if in == nil {
		return invalid("позиция меню не может быть nil")
	}
	if err := requiredName("name", in.Name, MaxNameLen); err != nil {
		return err
	}
	if !in.Price.IsPositive() {
		return invalid("price должен быть больше нуля")
	}
	if err := domain.CheckMoney("price", in.Price); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Category) > MaxCuisineLen {
		return invalid("category длиннее %d символов", MaxCuisineLen)
	}
	if in.PreparationTime < 0 || in.PreparationTime > MaxPreparationTime {
		return invalid("preparation_time должен быть в диапазоне 0..%d минут", MaxPreparationTime)
	}
	return nil
}

// ValidateCustomer — имя и корректный email; телефон, если указан.
func (v *Validator) ValidateCustomer(_ context.Context, in *domain.CustomerInput) error {
	if in == nil {
		return invalid("клиент не может быть nil")
	}
	if err := requiredName("name", in.Name, MaxNameLen); err != nil {
		return err
	}
	if strings.TrimSpace(in.Email) == "" {
		return invalid("email обязателен")
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return invalid("email некорректен")
	}
	return optionalPhone(in.PhoneNumber)
}

// ValidateOrder — идентификаторы и строки заказа (1..50 строк, количество 1..100).
// Принадлежность позиций ресторану проверяет сервис.
func (v *Validator) ValidateOrder(_ context.Context, in *domain.CreateOrderInput) error {
	if in == nil {
		return invalid("заказ не может быть nil")
	}
	if in.CustomerID <= 0 {
		return invalid("customer_id обязателен")
	}
	if in.RestaurantID <= 0 {
		return invalid("restaurant_id обязателен")
	}
	if utf8.RuneCountInString(in.SpecialInstructions) > MaxInstructionsLen {
		return invalid("special_instructions длиннее %d символов", MaxInstructionsLen)
	}
	if len(in.Items) == 0 {
		return invalid("items не должен быть пустым")
	}
	if len(in.Items) > MaxOrderItems {
		return invalid("items: не больше %d строк", MaxOrderItems)
	}
	for i := range in.Items {
		item := &in.Items[i]
		if item.MenuItemID <= 0 {
			return invalid("items[%d].menu_item_id обязателен", i)
		}
		if item.Quantity < 1 || item.Quantity > MaxItemQuantity {
			return invalid("items[%d].quantity должен быть в диапазоне 1..%d", i, MaxItemQuantity)
		}
		if utf8.RuneCountInString(item.SpecialRequests) > MaxInstructionsLen {
			return invalid("items[%d].special_requests длиннее %d символов", i, MaxInstructionsLen)
		}
	}
	return nil
}

// ValidateReview — оценка 1..5 и комментарий до 1000 символов.
func (v *Validator) ValidateReview(_ context.Context, in *domain.CreateReviewInput) error {
	if in == nil {
		return invalid("отзыв не может быть nil")
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return invalid("rating должен быть в диапазоне %d..%d", MinRating, MaxRating)
	}
	if utf8.RuneCountInString(in.Comment) > MaxCommentLen {
		return invalid("comment длиннее %d символов", MaxCommentLen)
	}
	return nil
}

func requiredName(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s обязателен", field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return invalid("%s длиннее %d символов", field, maxLen)
	}
	return nil
}

func optionalPhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return invalid("phone_number некорректен (пример: %s)", phonePatternExample)
	}
	return nil
}

func optionalClock(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(clockLayout, value); err != nil {
		return invalid("%s должен быть в формате HH:MM", field)
	}
	return nil
}
