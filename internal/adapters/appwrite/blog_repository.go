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

type blogRepository struct {
	db           *Databases
	collectionID string
}

// NewBlogRepository creates a repository over the blog posts collection.
func NewBlogRepository(db *Databases, collectionID string) repositories.BlogRepositoryFacade {
	return &blogRepository{db: db, collectionID: collectionID}
}

type blogDocument struct {
	DocumentMeta
	models.BlogPost
}

func (doc blogDocument) toModel() models.BlogPost {
	m := doc.BlogPost
	m.ID = doc.DocumentMeta.ID
	m.CreatedAt = doc.Created()
	m.UpdatedAt = doc.Updated()
	return m
}

func (r *blogRepository) FindBlogPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	var doc blogDocument
	if err := r.db.GetDocument(ctx, r.collectionID, postID, &doc); err != nil {
		return nil, err
	}
	post := mapping.ToDomainBlogPost(doc.toModel())
	return &post, nil
}

func (r *blogRepository) ListBlogPosts(ctx context.Context, limit int, cursorAfter string) ([]domain.BlogPost, int64, error) {
	list, err := r.db.ListDocuments(ctx, r.collectionID, ListOptions{
		Limit:       limit,
		CursorAfter: cursorAfter,
		OrderDesc:   "$createdAt",
	})
	if err != nil {
		return nil, 0, err
	}

	ms := make([]models.BlogPost, 0, len(list.Documents))
	for _, raw := range list.Documents {
		var doc blogDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode blog document: %w", err)
		}
		ms = append(ms, doc.toModel())
	}
	return mapping.ToDomainBlogPostSlice(ms), int64(list.Total), nil
}

func (r *blogRepository) CountBlogPosts(ctx context.Context) (int64, error) {
	n, err := r.db.CountDocuments(ctx, r.collectionID)
	return int64(n), err
}

func (r *blogRepository) SaveBlogPost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	var doc blogDocument
	if err := r.db.CreateDocument(ctx, r.collectionID, mapping.ToModelBlogPost(post), &doc); err != nil {
		return nil, err
	}
	saved := mapping.ToDomainBlogPost(doc.toModel())
	return &saved, nil
}

func (r *blogRepository) UpdateBlogPost(ctx context.Context, postID string, post domain.BlogPost) (*domain.BlogPost, error) {
	var doc blogDocument
	if err := r.db.UpdateDocument(ctx, r.collectionID, postID, mapping.ToModelBlogPost(post), &doc); err != nil {
		return nil, err
	}
	updated := mapping.ToDomainBlogPost(doc.toModel())
	return &updated, nil
}

func (r *blogRepository) DeleteBlogPost(ctx context.Context, postID string) error {
	return r.db.DeleteDocument(ctx, r.collectionID, postID)
}
