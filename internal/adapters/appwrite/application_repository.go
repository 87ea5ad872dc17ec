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

type applicationRepository struct {
	db           *Databases
	collectionID string
}

// NewApplicationRepository creates a repository over the job applications
// collection.
func NewApplicationRepository(db *Databases, collectionID string) repositories.ApplicationRepositoryFacade {
	return &applicationRepository{db: db, collectionID: collectionID}
}

type applicationDocument struct {
	DocumentMeta
	models.Application
}

func (doc applicationDocument) toModel() models.Application {
	m := doc.Application
	m.ID = doc.DocumentMeta.ID
	m.CreatedAt = doc.Created()
	m.UpdatedAt = doc.Updated()
	return m
}

func (r *applicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	var doc applicationDocument
	if err := r.db.GetDocument(ctx, r.collectionID, applicationID, &doc); err != nil {
		return nil, err
	}
	app := mapping.ToDomainApplication(doc.toModel())
	return &app, nil
}

func (r *applicationRepository) ListApplications(ctx context.Context, limit int, cursorAfter string) ([]domain.Application, int64, error) {
	list, err := r.db.ListDocuments(ctx, r.collectionID, ListOptions{
		Limit:       limit,
		CursorAfter: cursorAfter,
		OrderDesc:   "$createdAt",
	})
	if err != nil {
		return nil, 0, err
	}

	ms := make([]models.Application, 0, len(list.Documents))
	for _, raw := range list.Documents {
		var doc applicationDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode application document: %w", err)
		}
		ms = append(ms, doc.toModel())
	}
	return mapping.ToDomainApplicationSlice(ms), int64(list.Total), nil
}

func (r *applicationRepository) CountApplications(ctx context.Context) (int64, error) {
	n, err := r.db.CountDocuments(ctx, r.collectionID)
	return int64(n), err
}

func (r *applicationRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	return r.db.DeleteDocument(ctx, r.collectionID, applicationID)
}
