package repositories

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// InvoiceReader defines read operations for invoice documents.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its document ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices, newest first. cursorAfter is
	// the document ID to resume after; empty starts from the top. The second
	// return value is the backend's total document count.
	ListInvoices(ctx context.Context, limit int, cursorAfter string) ([]domain.Invoice, int64, error)

	// CountInvoices returns the total number of invoice documents.
	CountInvoices(ctx context.Context) (int64, error)
}

// InvoiceWriter defines write operations for invoice documents.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and returns it with backend-assigned
	// identity and timestamps.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice replaces the stored attributes of an existing invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, invoice domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice document.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
