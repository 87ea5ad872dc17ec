// Package mapping converts between the nested domain entities used by the
// API and the flattened document models persisted in the document store.
package mapping

import (
	"encoding/json"
	"log/slog"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/models"
)

// ToModelInvoice flattens a UI-shape invoice into its storage shape: scalar
// fields are copied verbatim, client info is spread over four attributes
// (absent optionals become empty strings, never absent), and the item list
// and bank details are serialized to embedded JSON text.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	itemsJSON, err := json.Marshal(d.Items)
	if err != nil {
		itemsJSON = []byte("[]")
	}
	bankJSON, err := json.Marshal(d.BankDetails)
	if err != nil {
		bankJSON = []byte("{}")
	}

	return models.Invoice{
		ID:            d.ID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		ContactName:   d.ContactName,
		ContactNumber: d.ContactNumber,
		ClientName:    d.Client.Name,
		ClientAddress: d.Client.Address,
		ClientPhone:   d.Client.Phone,
		ClientEmail:   d.Client.Email,
		Subject:       d.Subject,
		ItemsJSON:     string(itemsJSON),
		SubTotal:      d.SubTotal,
		TotalTax:      d.TotalTax,
		Total:         d.Total,
		TotalInWords:  d.TotalInWords,
		Notes:         d.Notes,
		PaymentMethod: d.PaymentMethod,
		BankDetails:   string(bankJSON),
		Currency:      d.Currency,
		Status:        string(d.Status),
	}
}

// ToDomainInvoice rebuilds the UI shape from a stored document. A missing or
// unparseable embedded blob is recovered with a safe default (empty item
// list, the company's default bank details) and logged, so a corrupt or
// legacy record still renders in the list view instead of failing it.
func ToDomainInvoice(m models.Invoice, logger *slog.Logger) domain.Invoice {
	if logger == nil {
		logger = slog.Default()
	}

	items := []domain.LineItem{}
	if m.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(m.ItemsJSON), &items); err != nil {
			logger.Warn("Failed to parse invoice items blob, substituting empty list",
				slog.String("invoice_id", m.ID),
				slog.String("error", err.Error()))
			items = []domain.LineItem{}
		}
	}

	bankDetails := domain.DefaultBankDetails()
	if m.BankDetails != "" {
		var parsed domain.BankDetails
		if err := json.Unmarshal([]byte(m.BankDetails), &parsed); err != nil {
			logger.Warn("Failed to parse invoice bank details blob, substituting defaults",
				slog.String("invoice_id", m.ID),
				slog.String("error", err.Error()))
		} else {
			bankDetails = parsed
		}
	}

	return domain.Invoice{
		DocumentFields: domain.DocumentFields{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		ContactName:   m.ContactName,
		ContactNumber: m.ContactNumber,
		Client: domain.ClientInfo{
			Name:    m.ClientName,
			Address: m.ClientAddress,
			Phone:   m.ClientPhone,
			Email:   m.ClientEmail,
		},
		Subject:       m.Subject,
		Items:         items,
		SubTotal:      m.SubTotal,
		TotalTax:      m.TotalTax,
		Total:         m.Total,
		TotalInWords:  m.TotalInWords,
		Notes:         m.Notes,
		PaymentMethod: m.PaymentMethod,
		BankDetails:   bankDetails,
		Currency:      m.Currency,
		Status:        domain.InvoiceStatus(m.Status),
	}
}

// ToDomainInvoiceSlice converts a slice of stored invoices.
func ToDomainInvoiceSlice(ms []models.Invoice, logger *slog.Logger) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m, logger)
	}
	return ds
}
