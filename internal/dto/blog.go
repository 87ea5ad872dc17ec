package dto

import (
	"time"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// SaveBlogPostRequest carries the editable post fields for create and
// update. An empty slug is derived from the title server-side.
type SaveBlogPostRequest struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug"`
	Content       string `json:"content" binding:"required"`
	Excerpt       string `json:"excerpt"`
	Published     bool   `json:"published"`
	FeaturedImage string `json:"featuredImage"`
}

// BlogPostResponse is one post as returned by the API. FeaturedImageURL is
// derived from the stored file ID; it is empty when the post has no image.
type BlogPostResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	Excerpt          string    `json:"excerpt"`
	Published        bool      `json:"published"`
	AuthorID         string    `json:"authorId"`
	FeaturedImage    string    `json:"featuredImage"`
	FeaturedImageURL string    `json:"featuredImageUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ToBlogPostResponse converts a domain post to its API representation.
// imageURL is the resolved view URL for the featured image, or "".
func ToBlogPostResponse(p *domain.BlogPost, imageURL string) BlogPostResponse {
	return BlogPostResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Content:          p.Content,
		Excerpt:          p.Excerpt,
		Published:        p.Published,
		AuthorID:         p.AuthorID,
		FeaturedImage:    p.FeaturedImage,
		FeaturedImageURL: imageURL,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ListBlogPostsResponse wraps a page of posts.
type ListBlogPostsResponse struct {
	Blogs      []BlogPostResponse `json:"blogs"`
	Total      int64              `json:"total"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

// UploadImageResponse is returned after a blog image upload.
type UploadImageResponse struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
}
