package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// LineItemRequest is one billable row as submitted by the form. Amount and
// tax amount are never accepted from the client; the service recomputes them.
type LineItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	HSNSAC      string          `json:"hsnSac"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// ClientInfoRequest is the billed party block of the invoice form.
type ClientInfoRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SaveInvoiceRequest carries the editable invoice fields for create and
// update. Computed fields (per-item amounts, totals, amount in words) are
// derived server-side; number, status, currency and bank details fall back
// to defaults when omitted. Field-level validation happens in the service so
// the response carries the full message list rather than the first binding
// failure.
type SaveInvoiceRequest struct {
	InvoiceNumber string              `json:"invoiceNumber"`
	InvoiceDate   string              `json:"invoiceDate"`
	DueDate       string              `json:"dueDate"`
	ContactName   string              `json:"contactName"`
	ContactNumber string              `json:"contactNumber"`
	Client        ClientInfoRequest   `json:"client"`
	Subject       string              `json:"subject"`
	Items         []LineItemRequest   `json:"items"`
	Notes         string              `json:"notes"`
	PaymentMethod string              `json:"paymentMethod"`
	BankDetails   *domain.BankDetails `json:"bankDetails"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
}

// ToDomainInvoice assembles the editable fields into a domain invoice,
// applying the documented defaults. Derived fields are left zero for the
// service to fill in.
func (r SaveInvoiceRequest) ToDomainInvoice() domain.Invoice {
	items := make([]domain.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.LineItem{
			ID:          it.ID,
			Description: it.Description,
			HSNSAC:      it.HSNSAC,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			TaxRate:     it.TaxRate,
		}
	}

	bank := domain.DefaultBankDetails()
	if r.BankDetails != nil {
		bank = *r.BankDetails
	}

	currency := r.Currency
	if currency == "" {
		currency = domain.CurrencyUSD
	}

	status := domain.InvoiceStatus(r.Status)
	if status == "" {
		status = domain.InvoiceStatusDraft
	}

	return domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		ContactName:   r.ContactName,
		ContactNumber: r.ContactNumber,
		Client: domain.ClientInfo{
			Name:    r.Client.Name,
			Address: r.Client.Address,
			Phone:   r.Client.Phone,
			Email:   r.Client.Email,
		},
		Subject:       r.Subject,
		Items:         items,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
		BankDetails:   bank,
		Currency:      currency,
		Status:        status,
	}
}

// InvoiceResponse is the full UI-shape invoice returned by the API.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	InvoiceDate   string               `json:"invoiceDate"`
	DueDate       string               `json:"dueDate"`
	ContactName   string               `json:"contactName"`
	ContactNumber string               `json:"contactNumber"`
	Client        domain.ClientInfo    `json:"client"`
	Subject       string               `json:"subject"`
	Items         []domain.LineItem    `json:"items"`
	SubTotal      decimal.Decimal      `json:"subTotal"`
	TotalTax      decimal.Decimal      `json:"totalTax"`
	Total         decimal.Decimal      `json:"total"`
	TotalInWords  string               `json:"totalInWords"`
	Notes         string               `json:"notes"`
	PaymentMethod string               `json:"paymentMethod"`
	BankDetails   domain.BankDetails   `json:"bankDetails"`
	Currency      string               `json:"currency"`
	Status        domain.InvoiceStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain invoice to its API representation.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		ContactName:   inv.ContactName,
		ContactNumber: inv.ContactNumber,
		Client:        inv.Client,
		Subject:       inv.Subject,
		Items:         inv.Items,
		SubTotal:      inv.SubTotal,
		TotalTax:      inv.TotalTax,
		Total:         inv.Total,
		TotalInWords:  inv.TotalInWords,
		Notes:         inv.Notes,
		PaymentMethod: inv.PaymentMethod,
		BankDetails:   inv.BankDetails,
		Currency:      inv.Currency,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain invoices.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ListInvoicesResponse wraps a page of invoices with its pagination cursor.
type ListInvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Total      int64             `json:"total"`
	NextCursor string            `json:"nextCursor,omitempty"`
}
