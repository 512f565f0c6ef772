package extractor_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/extractor"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"currency token before number", "sold rice for rs 250", "250"},
		{"token with period", "sold rice for rs. 250", "250"},
		{"rupees word", "sold rice for rupees 250", "250"},
		{"rupee symbol", "sold rice for ₹250", "250"},
		{"number before token", "sold rice for 250 rs", "250"},
		{"no space between token and number", "bought sugar rs500", "500"},
		{"decimal amount", "sold milk rs 45.50", "45.5"},
		{"single fraction digit dropped", "sold milk rs 45.5", "45"},
		{"fraction cut at two digits", "sold milk rs 45.123", "45.12"},
		{"no amount", "sold some rice", "0"},
		{"first match wins", "sold rice rs 250 and wheat rs 300", "250"},
	}

	e := extractor.New(extractor.Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			want := decimal.RequireFromString(tt.want)
			if !got.Amount.Equal(want) {
				t.Errorf("amount = %s, want %s", got.Amount, want)
			}
		})
	}
}

func TestExtractType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.TransactionType
	}{
		{"plain sale", "sold 5 kg rice for rs 250", domain.TransactionTypeSale},
		{"buy keyword", "buy 10 kg wheat", domain.TransactionTypePurchase},
		{"purchase keyword", "purchase of dal", domain.TransactionTypePurchase},
		{"bought keyword", "bought sugar from market", domain.TransactionTypePurchase},
		{"supplier keyword", "got tea from supplier", domain.TransactionTypePurchase},
		{"substring match", "rebought salt", domain.TransactionTypePurchase},
		{"no keyword", "gave 2 packets biscuit rs 40", domain.TransactionTypeSale},
	}

	e := extractor.New(extractor.Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text); got.Type != tt.want {
				t.Errorf("type = %q, want %q", got.Type, tt.want)
			}
		})
	}
}

func TestExtractItem(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"known item", "sold 5 kg rice for rs 250", "rice"},
		{"unknown item falls back to general", "sold 2 soap bars rs 60", "general"},
		{"catalog order breaks tie", "sold wheat and rice today", "rice"},
		{"case-insensitive", "Sold 1 kg SUGAR rs 45", "sugar"},
	}

	e := extractor.New(extractor.Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text); got.Item != tt.want {
				t.Errorf("item = %q, want %q", got.Item, tt.want)
			}
		})
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"kg unit", "sold 5 kg rice for rs 250", 5},
		{"kg with period", "sold 5 kg. rice", 5},
		{"kilos", "sold 3 kilos wheat", 3},
		{"packets", "bought 10 packets sugar rs500", 10},
		{"units", "sold 4 units oil", 4},
		{"pieces", "sold 6 pieces biscuit", 6},
		{"no unit phrase defaults to one", "sold rice for rs 250", 1},
	}

	e := extractor.New(extractor.Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text); got.Quantity != tt.want {
				t.Errorf("quantity = %d, want %d", got.Quantity, tt.want)
			}
		})
	}
}

func TestExtractFullUtterance(t *testing.T) {
	e := extractor.New(extractor.Config{})

	got := e.Extract("sold 5 kg rice for rs 250")

	if got.Item != "rice" {
		t.Errorf("item = %q, want %q", got.Item, "rice")
	}
	if !got.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("amount = %s, want 250", got.Amount)
	}
	if got.Type != domain.TransactionTypeSale {
		t.Errorf("type = %q, want sale", got.Type)
	}
	if got.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", got.Quantity)
	}
	if got.PaymentMethod != "cash" {
		t.Errorf("payment_method = %q, want cash", got.PaymentMethod)
	}
}

func TestExtractCustomVocabulary(t *testing.T) {
	e := extractor.New(extractor.Config{
		Catalog:          []string{"soap", "shampoo"},
		PurchaseKeywords: []string{"restock"},
	})

	got := e.Extract("restock 2 units soap rs 80")

	if got.Item != "soap" {
		t.Errorf("item = %q, want %q", got.Item, "soap")
	}
	if got.Type != domain.TransactionTypePurchase {
		t.Errorf("type = %q, want purchase", got.Type)
	}
}
