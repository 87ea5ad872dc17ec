package appwrite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	"github.com/Habib7442/apromax-admin/internal/models"
	"github.com/Habib7442/apromax-admin/internal/utils/mapping"
)

type contactRepository struct {
	db           *Databases
	collectionID string
}

// NewContactRepository creates a repository over the contact submissions
// collection.
func NewContactRepository(db *Databases, collectionID string) repositories.ContactRepositoryFacade {
	return &contactRepository{db: db, collectionID: collectionID}
}

type contactDocument struct {
	DocumentMeta
	models.Contact
}

func (doc contactDocument) toModel() models.Contact {
	m := doc.Contact
	m.ID = doc.DocumentMeta.ID
	m.CreatedAt = doc.Created()
	m.UpdatedAt = doc.Updated()
	return m
}

func (r *contactRepository) ListContacts(ctx context.Context, limit int, cursorAfter string) ([]domain.Contact, int64, error) {
	list, err := r.db.ListDocuments(ctx, r.collectionID, ListOptions{
		Limit:       limit,
		CursorAfter: cursorAfter,
		OrderDesc:   "$createdAt",
	})
	if err != nil {
		return nil, 0, err
	}

	ms := make([]models.Contact, 0, len(list.Documents))
	for _, raw := range list.Documents {
		var doc contactDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode contact document: %w", err)
		}
		ms = append(ms, doc.toModel())
	}
	return mapping.ToDomainContactSlice(ms), int64(list.Total), nil
}

func (r *contactRepository) CountContacts(ctx context.Context) (int64, error) {
	n, err := r.db.CountDocuments(ctx, r.collectionID)
	return int64(n), err
}

func (r *contactRepository) DeleteContact(ctx context.Context, contactID string) error {
	return r.db.DeleteDocument(ctx, r.collectionID, contactID)
}
