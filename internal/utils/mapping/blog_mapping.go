package mapping

import (
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/models"
)

// ToModelBlogPost converts a domain blog post to its storage document.
func ToModelBlogPost(d domain.BlogPost) models.BlogPost {
	return models.BlogPost{
		ID:            d.ID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		Title:         d.Title,
		Slug:          d.Slug,
		Content:       d.Content,
		Excerpt:       d.Excerpt,
		Published:     d.Published,
		AuthorID:      d.AuthorID,
		FeaturedImage: d.FeaturedImage,
	}
}

// ToDomainBlogPost converts a stored blog document to its domain form.
func ToDomainBlogPost(m models.BlogPost) domain.BlogPost {
	return domain.BlogPost{
		DocumentFields: domain.DocumentFields{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Title:         m.Title,
		Slug:          m.Slug,
		Content:       m.Content,
		Excerpt:       m.Excerpt,
		Published:     m.Published,
		AuthorID:      m.AuthorID,
		FeaturedImage: m.FeaturedImage,
	}
}

// ToDomainBlogPostSlice converts a slice of stored blog documents.
func ToDomainBlogPostSlice(ms []models.BlogPost) []domain.BlogPost {
	ds := make([]domain.BlogPost, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBlogPost(m)
	}
	return ds
}
