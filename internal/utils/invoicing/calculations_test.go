package invoicing_test

import (
	"testing"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/utils/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAmount(t *testing.T) {
	item := domain.LineItem{Quantity: 3, Rate: decimal.RequireFromString("870.50")}
	assert.True(t, invoicing.LineAmount(item).Equal(decimal.RequireFromString("2611.50")))
}

func TestLineAmount_ZeroValues(t *testing.T) {
	// Missing numeric fields are treated as zero, never an error.
	assert.True(t, invoicing.LineAmount(domain.LineItem{}).IsZero())
	assert.True(t, invoicing.LineAmount(domain.LineItem{Quantity: 5}).IsZero())
	assert.True(t, invoicing.LineAmount(domain.LineItem{Rate: decimal.NewFromInt(100)}).IsZero())
}

func TestLineTax(t *testing.T) {
	item := domain.LineItem{
		Quantity: 2,
		Rate:     decimal.NewFromInt(500),
		TaxRate:  decimal.NewFromInt(18),
	}
	// 1000 * 18 / 100
	assert.True(t, invoicing.LineTax(item).Equal(decimal.NewFromInt(180)))
}

func TestLineTax_ZeroRate(t *testing.T) {
	item := domain.LineItem{Quantity: 1, Rate: decimal.NewFromInt(870)}
	assert.True(t, invoicing.LineTax(item).IsZero())
}

func TestRecalculateItem(t *testing.T) {
	item := domain.LineItem{
		Quantity: 4,
		Rate:     decimal.RequireFromString("25.25"),
		TaxRate:  decimal.NewFromInt(10),
	}
	invoicing.RecalculateItem(&item)

	assert.True(t, item.Amount.Equal(decimal.RequireFromString("101")))
	assert.True(t, item.TaxAmount.Equal(decimal.RequireFromString("10.1")))
}

func TestInvoiceTotals(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 1, Rate: decimal.NewFromInt(870), Amount: decimal.NewFromInt(870), TaxAmount: decimal.Zero},
		{Quantity: 2, Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(200), TaxAmount: decimal.NewFromInt(36)},
	}

	totals := invoicing.InvoiceTotals(items)

	assert.True(t, totals.SubTotal.Equal(decimal.NewFromInt(1070)))
	assert.True(t, totals.TotalTax.Equal(decimal.NewFromInt(36)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(1106)))
}

func TestInvoiceTotals_GrandTotalIsSubTotalPlusTax(t *testing.T) {
	items := []domain.LineItem{
		{Amount: decimal.RequireFromString("123.45"), TaxAmount: decimal.RequireFromString("6.17")},
		{Amount: decimal.RequireFromString("0.01"), TaxAmount: decimal.Zero},
		{Amount: decimal.RequireFromString("9999.99"), TaxAmount: decimal.RequireFromString("1800")},
	}

	totals := invoicing.InvoiceTotals(items)
	require.True(t, totals.Total.Equal(totals.SubTotal.Add(totals.TotalTax)))
}

func TestInvoiceTotals_UsesStoredTaxAmount(t *testing.T) {
	// The tax total sums the stored TaxAmount, not a recompute from the rate.
	items := []domain.LineItem{
		{Quantity: 1, Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18),
			Amount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(5)}, // stale on purpose
	}

	totals := invoicing.InvoiceTotals(items)
	assert.True(t, totals.TotalTax.Equal(decimal.NewFromInt(5)))
}

func TestInvoiceTotals_EmptyList(t *testing.T) {
	totals := invoicing.InvoiceTotals(nil)

	assert.True(t, totals.SubTotal.IsZero())
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.Total.IsZero())
}
