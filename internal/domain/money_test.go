package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/zomato/internal/domain"
)

func TestCheckMoney(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		valid bool
	}{
		{"0", true},
		{"0.01", true},
		{"9.99", true},
		{"9.990", true},
		{"99999999.99", true},
		{"9.999", false},
		{"0.001", false},
		{"100000000", false},
		{"1e12", false},
		{"-1", false},
	}
	for _, tc := range cases {
		err := domain.CheckMoney("price", decimal.RequireFromString(tc.in))
		if tc.valid && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.in, err)
		}
		if !tc.valid && !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", tc.in, err)
		}
	}
}

func TestMoneyJSONIsNumber(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(domain.OrderItem{ItemPrice: decimal.RequireFromString("4.50"), Quantity: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := generic["item_price"].(float64); !ok {
		t.Fatalf("item_price must be a JSON number, got %s", raw)
	}

	var back domain.OrderItem
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal item: %v", err)
	}
	if !back.ItemPrice.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("round trip lost value: %s", back.ItemPrice)
	}
}
