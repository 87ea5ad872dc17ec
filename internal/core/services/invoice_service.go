package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/export"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/utils/invoicing"
	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
)

type invoiceService struct {
	repo     portsrepo.InvoiceRepositoryFacade
	renderer *export.InvoicePDF
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, renderer *export.InvoicePDF) portssvc.InvoiceSvcFacade {
	return &invoiceService{repo: repo, renderer: renderer}
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.repo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListParams) (*dto.ListInvoicesResponse, error) {
	cursorAfter, err := decodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	invoices, total, err := s.repo.ListInvoices(ctx, params.Limit, cursorAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	resp := &dto.ListInvoicesResponse{
		Invoices: dto.ToListInvoiceResponse(invoices),
		Total:    total,
	}
	if len(invoices) == params.Limit && params.Limit > 0 {
		last := invoices[len(invoices)-1]
		resp.NextCursor = pagination.EncodeToken(last.ID, last.CreatedAt)
	}
	return resp, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	inv := req.ToDomainInvoice()
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		inv.InvoiceNumber = invoicing.NewInvoiceNumber(time.Now())
	}

	if err := s.prepare(&inv); err != nil {
		return nil, err
	}

	saved, err := s.repo.SaveInvoice(ctx, inv)
	if err != nil {
		logger.Error("Failed to save invoice in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("Invoice created", slog.String("invoice_id", saved.ID), slog.String("invoice_number", saved.InvoiceNumber))
	return saved, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Make sure the target exists so a 404 beats a validation error.
	if _, err := s.repo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to load invoice for update: %w", err)
	}

	inv := req.ToDomainInvoice()
	if err := s.prepare(&inv); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateInvoice(ctx, invoiceID, inv)
	if err != nil {
		logger.Error("Failed to update invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	logger.Info("Invoice updated", slog.String("invoice_id", invoiceID))
	return updated, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.repo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := s.repo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load invoice for export: %w", err)
	}

	out, err := s.renderer.Render(inv)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.pdf", strings.ReplaceAll(inv.InvoiceNumber, "/", "-"))
	return out, filename, nil
}

// prepare recomputes the derived fields and runs the submission rules.
// Derived amounts are always overwritten; whatever the client sent for them
// is ignored.
func (s *invoiceService) prepare(inv *domain.Invoice) error {
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
		invoicing.RecalculateItem(&inv.Items[i])
	}

	msgs := invoicing.ValidateInvoice(*inv)
	switch inv.Status {
	case domain.InvoiceStatusDraft, domain.InvoiceStatusSent, domain.InvoiceStatusPaid, domain.InvoiceStatusOverdue:
	default:
		msgs = append(msgs, "Invalid status")
	}
	if len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	totals := invoicing.InvoiceTotals(inv.Items)
	inv.SubTotal = totals.SubTotal
	inv.TotalTax = totals.TotalTax
	inv.Total = totals.Total
	inv.TotalInWords = invoicing.AmountInWords(inv.Total, inv.Currency)
	return nil
}

// decodeCursor turns an opaque page token into the document ID the store
// resumes after. An empty token means the first page.
func decodeCursor(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	docID, _, err := pagination.DecodeToken(token)
	if err != nil {
		return "", apperrors.NewValidationError([]string{"Invalid pagination cursor"})
	}
	return docID, nil
}
