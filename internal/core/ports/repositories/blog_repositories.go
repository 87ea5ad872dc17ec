package repositories

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// BlogReader defines read operations for blog posts.
type BlogReader interface {
	// FindBlogPostByID retrieves a specific post by its document ID.
	FindBlogPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)

	// ListBlogPosts retrieves a page of posts, newest first.
	ListBlogPosts(ctx context.Context, limit int, cursorAfter string) ([]domain.BlogPost, int64, error)

	// CountBlogPosts returns the total number of posts.
	CountBlogPosts(ctx context.Context) (int64, error)
}

// BlogWriter defines write operations for blog posts.
type BlogWriter interface {
	// SaveBlogPost persists a new post and returns it with backend-assigned
	// identity and timestamps.
	SaveBlogPost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)

	// UpdateBlogPost replaces the stored attributes of an existing post.
	UpdateBlogPost(ctx context.Context, postID string, post domain.BlogPost) (*domain.BlogPost, error)

	// DeleteBlogPost removes a post.
	DeleteBlogPost(ctx context.Context, postID string) error
}

// BlogRepositoryFacade combines all blog repository interfaces.
type BlogRepositoryFacade interface {
	BlogReader
	BlogWriter
}
