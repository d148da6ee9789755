package handler

import (
	"context"

	prepressapp "github.com/flexo/backend/internal/application/prepress"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrinterService is the part of prepressapp.PrinterService used over HTTP
type PrinterService interface {
	Create(ctx context.Context, req prepressapp.PrinterRequest) (*prepressapp.PrinterResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*prepressapp.PrinterResponse, error)
	List(ctx context.Context, filter prepressapp.PrinterListFilter) ([]prepressapp.PrinterResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req prepressapp.PrinterRequest) (*prepressapp.PrinterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PrinterHandler handles printer endpoints
type PrinterHandler struct {
	BaseHandler
	printerService PrinterService
}

// NewPrinterHandler creates a new PrinterHandler
func NewPrinterHandler(printerService PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Create godoc
// @ID           createPrinter
// @Summary      Create a printer
// @Description  A press installed at a customer. The customer cannot change after creation.
// @Tags         printer
// @Accept       json
// @Produce      json
// @Param        request body prepressapp.PrinterRequest true "Printer"
// @Success      201 {object} APIResponse[prepressapp.PrinterResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /printer [post]
func (h *PrinterHandler) Create(c *gin.Context) {
	var req prepressapp.PrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	printer, err := h.printerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, printer)
}

// GetByID godoc
// @ID           getPrinter
// @Summary      Get a printer
// @Tags         printer
// @Produce      json
// @Param        id path string true "Printer ID" format(uuid)
// @Success      200 {object} APIResponse[prepressapp.PrinterResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /printer/{id} [get]
func (h *PrinterHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "printer")
		return
	}
	printer, err := h.printerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, printer)
}

// List godoc
// @ID           listPrinters
// @Summary      List printers
// @Tags         printer
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(name, manufacturer, model, colors, customerId, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        customerId query string false "Owning customer" format(uuid)
// @Success      200 {object} APIResponse[[]prepressapp.PrinterResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /printer [get]
func (h *PrinterHandler) List(c *gin.Context) {
	var filter prepressapp.PrinterListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	printers, total, err := h.printerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, printers, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updatePrinter
// @Summary      Update a printer
// @Tags         printer
// @Accept       json
// @Produce      json
// @Param        id      path string true "Printer ID" format(uuid)
// @Param        request body prepressapp.PrinterRequest true "Printer"
// @Success      200 {object} APIResponse[prepressapp.PrinterResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /printer/{id} [put]
func (h *PrinterHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "printer")
		return
	}
	var req prepressapp.PrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	printer, err := h.printerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, printer)
}

// Delete godoc
// @ID           deletePrinter
// @Summary      Delete a printer
// @Description  Refused while profiles or service orders reference it
// @Tags         printer
// @Param        id path string true "Printer ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /printer/{id} [delete]
func (h *PrinterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "printer")
		return
	}
	if err := h.printerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
