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

// InvoiceHandler handles invoice management requests.
type InvoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// registerInvoiceRoutes sets up the invoice routes on the authenticated group.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := NewInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.CreateInvoice)
		invoices.GET("/:id", h.GetInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.GET("/:id/pdf", h.ExportInvoicePDF)
	}
}

// ListInvoices godoc
// @Summary List invoices
// @Description Returns a page of invoices, newest first.
// @Tags invoices
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination cursor"})
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInvoice godoc
// @Summary Get invoice
// @Description Returns a single invoice in its nested UI shape.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	inv, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// CreateInvoice godoc
// @Summary Create invoice
// @Description Validates the submission, computes the derived fields, and persists the invoice.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.SaveInvoiceRequest true "Invoice fields"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: vErr.Messages})
			return
		}
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// UpdateInvoice godoc
// @Summary Update invoice
// @Description Replaces an invoice after revalidating and recomputing the derived fields.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice fields"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	inv, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var vErr *apperrors.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: vErr.Messages})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		default:
			logger.Error("Failed to update invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// DeleteInvoice godoc
// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportInvoicePDF godoc
// @Summary Export invoice as PDF
// @Description Renders the invoice in the printed layout and returns it as a download.
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) ExportInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	out, filename, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to export invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export invoice"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
