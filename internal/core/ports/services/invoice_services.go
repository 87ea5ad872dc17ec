package services

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its document ID.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices, newest first.
	ListInvoices(ctx context.Context, params dto.ListParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines write operations for invoices. Both writes
// validate, recompute the derived fields and persist the flattened document.
type InvoiceWriterSvc interface {
	// CreateInvoice validates and persists a new invoice.
	CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice validates and replaces an existing invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceExportSvc defines export operations for invoices.
type InvoiceExportSvc interface {
	// RenderInvoicePDF renders the invoice as a PDF document and returns the
	// bytes together with a suggested filename.
	RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error)
}

// InvoiceSvcFacade combines all invoice service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceExportSvc
}
