package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		value    string
		currency string
	}{
		{"symbol first", "$85.50", "85.5", "$"},
		{"symbol with sign after", "$-85.50", "-85.5", "$"},
		{"sign before symbol", "-$85.50", "-85.5", "$"},
		{"euro", "€30", "30", "€"},
		{"thousands commas", "$1,234,567.89", "1234567.89", "$"},
		{"number first default currency", "85.50", "85.5", "$"},
		{"number first negative", "-100.50 USD", "-100.5", "USD"},
		{"number first with currency", "100.00 USD", "100", "USD"},
		{"quoted currency first", `"US Dollar" 100.00`, "100", `"US Dollar"`},
		{"quoted currency trailing", `100.00 "US Dollar"`, "100", `"US Dollar"`},
		{"word currency first", "USD 100.00", "100", "USD"},
		{"negative word currency", "-USD 100.00", "-100", "USD"},
		{"price annotation ignored", "10 CAD @ $0.75", "10", "CAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.currency, got.Currency)
			assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.value)),
				"value = %s, want %s", got.Value, tt.value)
		})
	}
}

func TestParseAmountRejects(t *testing.T) {
	for _, text := range []string{"", "not a number", "USD", "$", "--", "abc def"} {
		t.Run(text, func(t *testing.T) {
			_, ok := ParseAmount(text)
			assert.False(t, ok)
		})
	}
}

func TestFormatAmountValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		style NegativeStyle
		want  string
	}{
		{"positive", "100", SymbolBeforeSign, "$100.00"},
		{"negative symbol first", "-100", SymbolBeforeSign, "$-100.00"},
		{"negative sign first", "-100", SignBeforeSymbol, "-$100.00"},
		{"thousands", "-1234567.891", SignBeforeSymbol, "-$1,234,567.89"},
		{"rounds to two decimals", "50.005", SymbolBeforeSign, "$50.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmountValue(decimal.RequireFromString(tt.value), "$", tt.style)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertNegativeStyle(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		style  NegativeStyle
		want   string
	}{
		{"to sign first", "$-85.50", SignBeforeSymbol, "-$85.50"},
		{"to symbol first", "-$85.50", SymbolBeforeSign, "$-85.50"},
		{"already sign first", "-$85.50", SignBeforeSymbol, "-$85.50"},
		{"positive untouched", "$85.50", SignBeforeSymbol, "$85.50"},
		{"no currency untouched", "-85.50", SymbolBeforeSign, "-85.50"},
		{"suffix preserved", "$-10.00 @ 2.00 CAD", SignBeforeSymbol, "-$10.00 @ 2.00 CAD"},
		{"no digits untouched", "n/a", SignBeforeSymbol, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertNegativeStyle(tt.amount, tt.style))
		})
	}
}
