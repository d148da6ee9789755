package handler

import (
	"context"
	"mime"
	"net/http"

	reportapp "github.com/flexo/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Document kinds reported to DocumentObserver
const (
	DocumentServiceOrder = "serviceorder"
	DocumentInvoice      = "invoice"
	DocumentOrders       = "orders"
	DocumentOrdersXLSX   = "orders_xlsx"
	DocumentReplacements = "replacements"
)

// ReportService is the part of reportapp.ReportService used over HTTP
type ReportService interface {
	ServiceOrderPDF(ctx context.Context, id uuid.UUID) (*reportapp.Document, error)
	InvoicePDF(ctx context.Context, id uuid.UUID) (*reportapp.Document, error)
	ArchiveInvoice(ctx context.Context, id uuid.UUID) (*reportapp.ArchiveResponse, error)
	OrdersPDF(ctx context.Context, req reportapp.OrdersReportRequest) (*reportapp.Document, error)
	OrdersXLSX(ctx context.Context, req reportapp.OrdersReportRequest) (*reportapp.Document, error)
	ReplacementsPDF(ctx context.Context, req reportapp.PeriodRequest) (*reportapp.Document, error)
}

// DocumentObserver counts generated documents
type DocumentObserver interface {
	ObserveDocument(kind string, cached bool)
}

// ReportHandler streams generated PDF and XLSX documents
type ReportHandler struct {
	BaseHandler
	reportService ReportService
	observer      DocumentObserver
}

// NewReportHandler creates a new ReportHandler. observer may be nil.
func NewReportHandler(reportService ReportService, observer DocumentObserver) *ReportHandler {
	return &ReportHandler{reportService: reportService, observer: observer}
}

// ServiceOrderSheet godoc
// @ID           serviceOrderSheet
// @Summary      Production sheet of a service order
// @Tags         report
// @Produce      application/pdf
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/serviceorder/{id} [get]
func (h *ReportHandler) ServiceOrderSheet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	doc, err := h.reportService.ServiceOrderPDF(c.Request.Context(), id)
	h.send(c, DocumentServiceOrder, doc, err)
}

// InvoiceSheet godoc
// @ID           invoiceSheet
// @Summary      Invoice PDF
// @Tags         report
// @Produce      application/pdf
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/invoice/{id} [get]
func (h *ReportHandler) InvoiceSheet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "invoice")
		return
	}
	doc, err := h.reportService.InvoicePDF(c.Request.Context(), id)
	h.send(c, DocumentInvoice, doc, err)
}

// ArchiveInvoice godoc
// @ID           archiveInvoice
// @Summary      Archive the invoice PDF in object storage
// @Description  Returns a presigned download URL
// @Tags         report
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[reportapp.ArchiveResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/invoice/{id}/archive [post]
func (h *ReportHandler) ArchiveInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "invoice")
		return
	}
	archive, err := h.reportService.ArchiveInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, archive)
}

// Orders godoc
// @ID           ordersReport
// @Summary      Order report of a period
// @Description  Orders table with totals per product type. Periods span at most 366 days.
// @Tags         report
// @Produce      application/pdf
// @Param        from        query string true  "From (YYYY-MM-DD)"
// @Param        to          query string true  "To, inclusive (YYYY-MM-DD)"
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/orders [get]
func (h *ReportHandler) Orders(c *gin.Context) {
	var req reportapp.OrdersReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.reportService.OrdersPDF(c.Request.Context(), req)
	h.send(c, DocumentOrders, doc, err)
}

// OrdersXLSX godoc
// @ID           ordersSpreadsheet
// @Summary      Order report of a period as a spreadsheet
// @Tags         report
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from        query string true  "From (YYYY-MM-DD)"
// @Param        to          query string true  "To, inclusive (YYYY-MM-DD)"
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/orders.xlsx [get]
func (h *ReportHandler) OrdersXLSX(c *gin.Context) {
	var req reportapp.OrdersReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.reportService.OrdersXLSX(c.Request.Context(), req)
	h.send(c, DocumentOrdersXLSX, doc, err)
}

// Replacements godoc
// @ID           replacementsReport
// @Summary      Replacement loss report of a period
// @Tags         report
// @Produce      application/pdf
// @Param        from query string true "From (YYYY-MM-DD)"
// @Param        to   query string true "To, inclusive (YYYY-MM-DD)"
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /report/replacements [get]
func (h *ReportHandler) Replacements(c *gin.Context) {
	var req reportapp.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.reportService.ReplacementsPDF(c.Request.Context(), req)
	h.send(c, DocumentReplacements, doc, err)
}

// send streams doc inline. Browsers open PDFs in place and download XLSX.
func (h *ReportHandler) send(c *gin.Context, kind string, doc *reportapp.Document, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if h.observer != nil {
		h.observer.ObserveDocument(kind, doc.Cached)
	}
	disposition := mime.FormatMediaType("inline", map[string]string{"filename": doc.Filename})
	c.Header("Content-Disposition", disposition)
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
