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

// ApplicationHandler handles job application requests.
type ApplicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService portssvc.ApplicationSvcFacade) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// registerApplicationRoutes sets up the application routes on the
// authenticated group.
func registerApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := NewApplicationHandler(applicationService)

	applications := rg.Group("/applications")
	{
		applications.GET("", h.ListApplications)
		applications.DELETE("/:id", h.DeleteApplication)
		applications.GET("/:id/resume", h.GetResumeURL)
	}
}

// ListApplications godoc
// @Summary List job applications
// @Tags applications
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListApplicationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.applicationService.ListApplications(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination cursor"})
			return
		}
		logger.Error("Failed to list applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list applications"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteApplication godoc
// @Summary Delete job application
// @Description Removes the application and its stored resume file.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.applicationService.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
			return
		}
		logger.Error("Failed to delete application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete application"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetResumeURL godoc
// @Summary Get resume view URL
// @Description Resolves the applicant's resume to its backend view URL.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.ResumeURLResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/{id}/resume [get]
func (h *ApplicationHandler) GetResumeURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	url, err := h.applicationService.ResumeURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resume not found"})
			return
		}
		logger.Error("Failed to resolve resume URL", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve resume URL"})
		return
	}

	c.JSON(http.StatusOK, dto.ResumeURLResponse{URL: url})
}
