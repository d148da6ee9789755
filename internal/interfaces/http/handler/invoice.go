package handler

import (
	"context"

	billingapp "github.com/flexo/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceService is the part of billingapp.InvoiceService used over HTTP
type InvoiceService interface {
	Create(ctx context.Context, req billingapp.CreateInvoiceRequest) (*billingapp.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error)
	List(ctx context.Context, filter billingapp.InvoiceListFilter) ([]billingapp.InvoiceResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req billingapp.UpdateInvoiceRequest) (*billingapp.InvoiceResponse, error)
	Issue(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error)
	Pay(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error)
}

// InvoiceHandler handles invoice (faturamento) endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create godoc
// @ID           createInvoice
// @Summary      Invoice finished orders
// @Description  All orders must belong to the customer, be finished or delivered, not be replacements
// @Description  and not be invoiced yet. The orders are marked with the new invoice.
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body billingapp.CreateInvoiceRequest true "Customer and orders"
// @Success      201 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// GetByID godoc
// @ID           getInvoice
// @Summary      Get an invoice
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "invoice")
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// List godoc
// @ID           listInvoices
// @Summary      List invoices
// @Tags         invoice
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        limit      query int    false "Page size" default(10) maximum(100)
// @Param        search     query string false "Search text"
// @Param        sortKey    query string false "Sort field" Enums(number, status, total, issueDate, dueDate, customerId, createdAt)
// @Param        sortValue  query string false "Sort direction" Enums(asc, desc)
// @Param        customerId query string false "Customer" format(uuid)
// @Param        status     query string false "Status" Enums(open, issued, paid, cancelled)
// @Success      200 {object} APIResponse[[]billingapp.InvoiceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, invoices, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateInvoice
// @Summary      Edit due date and notes of an open invoice
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Invoice ID" format(uuid)
// @Param        request body billingapp.UpdateInvoiceRequest true "Changes"
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "invoice")
		return
	}
	var req billingapp.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Issue godoc
// @ID           issueInvoice
// @Summary      Issue an open invoice
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{id}/issue [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	h.transition(c, h.invoiceService.Issue)
}

// Pay godoc
// @ID           payInvoice
// @Summary      Mark an issued invoice as paid
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{id}/pay [post]
func (h *InvoiceHandler) Pay(c *gin.Context) {
	h.transition(c, h.invoiceService.Pay)
}

// Cancel godoc
// @ID           cancelInvoice
// @Summary      Cancel an invoice
// @Description  Open and issued invoices can be cancelled. Their orders become billable again.
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	h.transition(c, h.invoiceService.Cancel)
}

func (h *InvoiceHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID) (*billingapp.InvoiceResponse, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "invoice")
		return
	}
	invoice, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}
