package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/utils"
	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
)

type blogService struct {
	repo   portsrepo.BlogRepositoryFacade
	images portsrepo.FileStore
}

// NewBlogService creates the blog posts service.
func NewBlogService(repo portsrepo.BlogRepositoryFacade, images portsrepo.FileStore) portssvc.BlogSvcFacade {
	return &blogService{repo: repo, images: images}
}

func (s *blogService) imageURL(fileID string) string {
	if fileID == "" {
		return ""
	}
	return s.images.FileViewURL(fileID)
}

func (s *blogService) ListBlogPosts(ctx context.Context, params dto.ListParams) (*dto.ListBlogPostsResponse, error) {
	cursorAfter, err := decodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.repo.ListBlogPosts(ctx, params.Limit, cursorAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	resp := &dto.ListBlogPostsResponse{
		Blogs: make([]dto.BlogPostResponse, len(posts)),
		Total: total,
	}
	for i := range posts {
		resp.Blogs[i] = dto.ToBlogPostResponse(&posts[i], s.imageURL(posts[i].FeaturedImage))
	}
	if len(posts) == params.Limit && params.Limit > 0 {
		last := posts[len(posts)-1]
		resp.NextCursor = pagination.EncodeToken(last.ID, last.CreatedAt)
	}
	return resp, nil
}

func (s *blogService) CreateBlogPost(ctx context.Context, req dto.SaveBlogPostRequest, authorID string) (*dto.BlogPostResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	post := s.assemble(req)
	post.AuthorID = authorID

	saved, err := s.repo.SaveBlogPost(ctx, post)
	if err != nil {
		logger.Error("Failed to save blog post in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	logger.Info("Blog post created", slog.String("post_id", saved.ID), slog.String("slug", saved.Slug))
	resp := dto.ToBlogPostResponse(saved, s.imageURL(saved.FeaturedImage))
	return &resp, nil
}

func (s *blogService) UpdateBlogPost(ctx context.Context, postID string, req dto.SaveBlogPostRequest) (*dto.BlogPostResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.repo.FindBlogPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog post for update: %w", err)
	}

	post := s.assemble(req)
	post.AuthorID = existing.AuthorID

	updated, err := s.repo.UpdateBlogPost(ctx, postID, post)
	if err != nil {
		logger.Error("Failed to update blog post in repository", slog.String("error", err.Error()), slog.String("post_id", postID))
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	logger.Info("Blog post updated", slog.String("post_id", postID))
	resp := dto.ToBlogPostResponse(updated, s.imageURL(updated.FeaturedImage))
	return &resp, nil
}

func (s *blogService) DeleteBlogPost(ctx context.Context, postID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	post, err := s.repo.FindBlogPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to load blog post for delete: %w", err)
	}
	if post.FeaturedImage != "" {
		if err := s.images.DeleteFile(ctx, post.FeaturedImage); err != nil {
			logger.Warn("Failed to delete featured image", slog.String("error", err.Error()), slog.String("file_id", post.FeaturedImage))
		}
	}

	if err := s.repo.DeleteBlogPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	logger.Info("Blog post deleted", slog.String("post_id", postID))
	return nil
}

func (s *blogService) UploadImage(ctx context.Context, filename string, r io.Reader) (*dto.UploadImageResponse, error) {
	fileID, err := s.images.UploadFile(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload blog image: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Blog image uploaded", slog.String("file_id", fileID))
	return &dto.UploadImageResponse{
		FileID: fileID,
		URL:    s.images.FileViewURL(fileID),
	}, nil
}

// assemble builds the domain post from the editable fields, deriving the
// slug from the title when one was not supplied.
func (s *blogService) assemble(req dto.SaveBlogPostRequest) domain.BlogPost {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	return domain.BlogPost{
		Title:         req.Title,
		Slug:          slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
	}
}
