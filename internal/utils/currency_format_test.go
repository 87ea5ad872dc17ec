package utils_test

import (
	"testing"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"870", domain.CurrencyUSD, "$870.00"},
		{"1234.5", domain.CurrencyUSD, "$1,234.50"},
		{"1234567.891", domain.CurrencyUSD, "$1,234,567.89"},
		{"870", domain.CurrencyINR, "₹870.00"},
		{"123456", domain.CurrencyINR, "₹1,23,456.00"},
		{"12345678", domain.CurrencyINR, "₹1,23,45,678.00"},
		{"-42.1", domain.CurrencyUSD, "-$42.10"},
		{"0", domain.CurrencyUSD, "$0.00"},
	}

	for _, tt := range tests {
		got := utils.FormatCurrency(decimal.RequireFromString(tt.amount), tt.currency)
		assert.Equal(t, tt.want, got, "amount %s %s", tt.amount, tt.currency)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.50", utils.FormatAmount(decimal.RequireFromString("1234.5"), domain.CurrencyUSD))
	assert.Equal(t, "12,34,567.89", utils.FormatAmount(decimal.RequireFromString("1234567.891"), domain.CurrencyINR))
	assert.Equal(t, "-42.10", utils.FormatAmount(decimal.RequireFromString("-42.1"), domain.CurrencyUSD))
}
