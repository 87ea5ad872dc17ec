package appwrite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/models"
	"github.com/Habib7442/apromax-admin/internal/utils/mapping"
)

type invoiceRepository struct {
	db           *Databases
	collectionID string
}

// NewInvoiceRepository creates a repository over the invoices collection.
func NewInvoiceRepository(db *Databases, collectionID string) repositories.InvoiceRepositoryFacade {
	return &invoiceRepository{db: db, collectionID: collectionID}
}

// invoiceDocument pairs the server's $-fields with the stored attributes.
// The model's own identity fields are json:"-" so the two embeds never fight
// over a key.
type invoiceDocument struct {
	DocumentMeta
	models.Invoice
}

func (doc invoiceDocument) toModel() models.Invoice {
	m := doc.Invoice
	m.ID = doc.DocumentMeta.ID
	m.CreatedAt = doc.Created()
	m.UpdatedAt = doc.Updated()
	return m
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var doc invoiceDocument
	if err := r.db.GetDocument(ctx, r.collectionID, invoiceID, &doc); err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(doc.toModel(), middleware.GetLoggerFromCtx(ctx))
	return &inv, nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, limit int, cursorAfter string) ([]domain.Invoice, int64, error) {
	list, err := r.db.ListDocuments(ctx, r.collectionID, ListOptions{
		Limit:       limit,
		CursorAfter: cursorAfter,
		OrderDesc:   "$createdAt",
	})
	if err != nil {
		return nil, 0, err
	}

	ms := make([]models.Invoice, 0, len(list.Documents))
	for _, raw := range list.Documents {
		var doc invoiceDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode invoice document: %w", err)
		}
		ms = append(ms, doc.toModel())
	}
	return mapping.ToDomainInvoiceSlice(ms, middleware.GetLoggerFromCtx(ctx)), int64(list.Total), nil
}

func (r *invoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	n, err := r.db.CountDocuments(ctx, r.collectionID)
	return int64(n), err
}

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	var doc invoiceDocument
	if err := r.db.CreateDocument(ctx, r.collectionID, mapping.ToModelInvoice(invoice), &doc); err != nil {
		return nil, err
	}
	saved := mapping.ToDomainInvoice(doc.toModel(), middleware.GetLoggerFromCtx(ctx))
	return &saved, nil
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, invoice domain.Invoice) (*domain.Invoice, error) {
	var doc invoiceDocument
	if err := r.db.UpdateDocument(ctx, r.collectionID, invoiceID, mapping.ToModelInvoice(invoice), &doc); err != nil {
		return nil, err
	}
	updated := mapping.ToDomainInvoice(doc.toModel(), middleware.GetLoggerFromCtx(ctx))
	return &updated, nil
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return r.db.DeleteDocument(ctx, r.collectionID, invoiceID)
}
