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

// ContactHandler handles contact-form submission requests.
type ContactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService portssvc.ContactSvcFacade) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// registerContactRoutes sets up the contact routes on the authenticated group.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := NewContactHandler(contactService)

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

// ListContacts godoc
// @Summary List contact submissions
// @Tags contacts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListContactsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.contactService.ListContacts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination cursor"})
			return
		}
		logger.Error("Failed to list contacts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteContact godoc
// @Summary Delete contact submission
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.contactService.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
			return
		}
		logger.Error("Failed to delete contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete contact"})
		return
	}

	c.Status(http.StatusNoContent)
}
