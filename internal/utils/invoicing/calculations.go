// Package invoicing holds the invoice business rules: per-line and
// invoice-level totals, the amount-in-words renderer and invoice numbering.
// Everything here is a pure function over the domain types.
package invoicing

import (
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineAmount returns quantity × rate for a line item. Zero-value fields
// contribute zero, so a half-filled form row always yields a renderable
// amount instead of an error.
func LineAmount(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromInt(item.Quantity).Mul(item.Rate)
}

// LineTax returns the tax for a line item: LineAmount × taxRate / 100.
func LineTax(item domain.LineItem) decimal.Decimal {
	return LineAmount(item).Mul(item.TaxRate).Div(oneHundred)
}

// RecalculateItem refreshes the derived Amount and TaxAmount fields from
// quantity, rate and tax rate. Callers must invoke this whenever any of the
// three inputs change; InvoiceTotals trusts the stored values.
func RecalculateItem(item *domain.LineItem) {
	item.Amount = LineAmount(*item)
	item.TaxAmount = LineTax(*item)
}

// InvoiceTotals derives the invoice-level aggregates from the item list.
// The tax total is summed from each item's stored TaxAmount, not recomputed
// from the rate (recompute-on-edit, not recompute-on-read). An empty list
// yields all zeros.
func InvoiceTotals(items []domain.LineItem) domain.InvoiceTotals {
	subTotal := decimal.Zero
	totalTax := decimal.Zero
	for _, item := range items {
		subTotal = subTotal.Add(item.Amount)
		totalTax = totalTax.Add(item.TaxAmount)
	}
	return domain.InvoiceTotals{
		SubTotal: subTotal,
		TotalTax: totalTax,
		Total:    subTotal.Add(totalTax),
	}
}
