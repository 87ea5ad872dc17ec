package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/middleware"
)

// maxBlogImageSize caps featured image uploads at 5MB.
const maxBlogImageSize = 5 << 20

// BlogHandler handles blog management requests.
type BlogHandler struct {
	blogService portssvc.BlogSvcFacade
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService portssvc.BlogSvcFacade) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// registerBlogRoutes sets up the blog routes on the authenticated group.
func registerBlogRoutes(rg *gin.RouterGroup, blogService portssvc.BlogSvcFacade) {
	h := NewBlogHandler(blogService)

	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.ListBlogPosts)
		blogs.POST("", h.CreateBlogPost)
		blogs.PUT("/:id", h.UpdateBlogPost)
		blogs.DELETE("/:id", h.DeleteBlogPost)
		blogs.POST("/images", h.UploadImage)
	}
}

// ListBlogPosts godoc
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListBlogPostsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blogs [get]
func (h *BlogHandler) ListBlogPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.blogService.ListBlogPosts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination cursor"})
			return
		}
		logger.Error("Failed to list blog posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBlogPost godoc
// @Summary Create blog post
// @Description Persists a new post authored by the current admin. An empty slug is derived from the title.
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body dto.SaveBlogPostRequest true "Post fields"
// @Success 201 {object} dto.BlogPostResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blogs [post]
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: bindingErrors(err)})
		return
	}

	authorID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.blogService.CreateBlogPost(c.Request.Context(), req, authorID)
	if err != nil {
		logger.Error("Failed to create blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateBlogPost godoc
// @Summary Update blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param blog body dto.SaveBlogPostRequest true "Post fields"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blogs/{id} [put]
func (h *BlogHandler) UpdateBlogPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: bindingErrors(err)})
		return
	}

	resp, err := h.blogService.UpdateBlogPost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Blog post not found"})
			return
		}
		logger.Error("Failed to update blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update blog post"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBlogPost godoc
// @Summary Delete blog post
// @Description Removes the post and its featured image file.
// @Tags blogs
// @Produce json
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlogPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.blogService.DeleteBlogPost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Blog post not found"})
			return
		}
		logger.Error("Failed to delete blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete blog post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload blog image
// @Description Stores a featured image and returns its file ID and view URL.
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} dto.UploadImageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blogs/images [post]
func (h *BlogHandler) UploadImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file is required"})
		return
	}
	if fileHeader.Size > maxBlogImageSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read image"})
		return
	}
	defer file.Close()

	resp, err := h.blogService.UploadImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.Error("Failed to upload blog image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}
