package services

import (
	"context"
	"io"

	"github.com/Habib7442/apromax-admin/internal/dto"
)

// BlogReaderSvc defines read operations for blog posts.
type BlogReaderSvc interface {
	// ListBlogPosts retrieves a page of posts, newest first.
	ListBlogPosts(ctx context.Context, params dto.ListParams) (*dto.ListBlogPostsResponse, error)
}

// BlogWriterSvc defines write operations for blog posts.
type BlogWriterSvc interface {
	// CreateBlogPost persists a new post authored by the given admin.
	CreateBlogPost(ctx context.Context, req dto.SaveBlogPostRequest, authorID string) (*dto.BlogPostResponse, error)

	// UpdateBlogPost replaces an existing post.
	UpdateBlogPost(ctx context.Context, postID string, req dto.SaveBlogPostRequest) (*dto.BlogPostResponse, error)

	// DeleteBlogPost removes a post.
	DeleteBlogPost(ctx context.Context, postID string) error
}

// BlogImageSvc defines image handling for blog posts.
type BlogImageSvc interface {
	// UploadImage stores a featured image and returns its file ID and
	// resolved view URL.
	UploadImage(ctx context.Context, filename string, r io.Reader) (*dto.UploadImageResponse, error)
}

// BlogSvcFacade combines all blog service interfaces.
type BlogSvcFacade interface {
	BlogReaderSvc
	BlogWriterSvc
	BlogImageSvc
}
