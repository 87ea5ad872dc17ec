package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the flattened invoice document as persisted in the document
// store. Client info is spread over four scalar attributes and the item list
// and bank details are embedded JSON text, to satisfy the store's flat
// schema. It carries no invariants of its own beyond deserializing back to a
// valid UI-shape invoice.
//
// Monetary attributes are stored as decimal strings so amounts round-trip
// without float drift.
type Invoice struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	ContactName   string          `json:"contactName"`
	ContactNumber string          `json:"contactNumber"`
	ClientName    string          `json:"clientName"`
	ClientAddress string          `json:"clientAddress"`
	ClientPhone   string          `json:"clientPhone"`
	ClientEmail   string          `json:"clientEmail"`
	Subject       string          `json:"subject"`
	ItemsJSON     string          `json:"itemsJson"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	Total         decimal.Decimal `json:"total"`
	TotalInWords  string          `json:"totalInWords"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"paymentMethod"`
	BankDetails   string          `json:"bankDetailsJson"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
}
