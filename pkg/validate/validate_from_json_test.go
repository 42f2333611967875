package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/zomato/internal/domain"
)

func TestValidateMenuItemFromJSON_OK_Normalized(t *testing.T) {
	ctx := context.Background()

	rec, err := ValidateMenuItemFromJSON(ctx, NewValidator(), []byte(menuItemJSON(3, "Tofu Bowl", 9.5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RestaurantID != 3 || rec.Name != "Tofu Bowl" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.IsVegetarian {
		t.Fatalf("vegan item must be normalized to vegetarian")
	}
	if rec.IsAvailable == nil || !*rec.IsAvailable {
		t.Fatalf("is_available must default to true")
	}
}

func TestValidateMenuItemFromJSON_UnknownField(t *testing.T) {
	raw := `{"unknown":"x",` + menuItemJSON(1, "x", 1)[1:]
	_, err := ValidateMenuItemFromJSON(context.Background(), NewValidator(), []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("decode errors must wrap ErrValidation, got: %v", err)
	}
}

func TestValidateMenuItemFromJSON_TrailingData(t *testing.T) {
	raw := menuItemJSON(1, "x", 1) + "{}"
	_, err := ValidateMenuItemFromJSON(context.Background(), NewValidator(), []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateMenuItemFromJSON_MissingRestaurant(t *testing.T) {
	_, err := ValidateMenuItemFromJSON(context.Background(), NewValidator(), []byte(menuItemJSON(0, "x", 1)))
	if err == nil || !strings.Contains(err.Error(), "restaurant_id") {
		t.Fatalf("expected restaurant_id error, got: %v", err)
	}
}

func TestValidateMenuItemFromJSON_DomainError(t *testing.T) {
	_, err := ValidateMenuItemFromJSON(context.Background(), NewValidator(), []byte(menuItemJSON(1, "x", 0)))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

// ---- helpers ----

func menuItemJSON(restaurantID int64, name string, price float64) string {
	return `{
  "restaurant_id": ` + itoa(restaurantID) + `,
  "name": "` + name + `",
  "description": "house special",
  "price": ` + ftoa(price) + `,
  "category": "mains",
  "is_vegetarian": false,
  "is_vegan": true,
  "preparation_time": 15
}`
}
