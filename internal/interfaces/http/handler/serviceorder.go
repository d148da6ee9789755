package handler

import (
	"context"
	"strconv"

	productionapp "github.com/flexo/backend/internal/application/production"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceOrderService is the part of productionapp.ServiceOrderService used over HTTP
type ServiceOrderService interface {
	Create(ctx context.Context, req productionapp.ServiceOrderRequest) (*productionapp.ServiceOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*productionapp.ServiceOrderResponse, error)
	List(ctx context.Context, filter productionapp.ServiceOrderListFilter) ([]productionapp.ServiceOrderResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req productionapp.ServiceOrderRequest) (*productionapp.ServiceOrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByNumber(ctx context.Context, number int64) (*productionapp.ServiceOrderResponse, error)
	Summary(ctx context.Context, filter productionapp.ServiceOrderListFilter) (*productionapp.SummaryResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req productionapp.StatusRequest) (*productionapp.ServiceOrderResponse, error)
	CreateReplacement(ctx context.Context, originalID uuid.UUID, req productionapp.ReplacementRequest) (*productionapp.ServiceOrderResponse, error)
}

// ServiceOrderHandler handles service order endpoints
type ServiceOrderHandler struct {
	BaseHandler
	orderService ServiceOrderService
}

// NewServiceOrderHandler creates a new ServiceOrderHandler
func NewServiceOrderHandler(orderService ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderService: orderService}
}

// Create godoc
// @ID           createServiceOrder
// @Summary      Create a service order
// @Description  Allocates the next order number and prices the order from its product details.
// @Tags         serviceorder
// @Accept       json
// @Produce      json
// @Param        request body productionapp.ServiceOrderRequest true "Order"
// @Success      201 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder [post]
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var req productionapp.ServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetByID godoc
// @ID           getServiceOrder
// @Summary      Get a service order
// @Tags         serviceorder
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List godoc
// @ID           listServiceOrders
// @Summary      List service orders
// @Tags         serviceorder
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(number, status, productType, price, dueDate, customerId, finishedAt, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        status      query string false "Status" Enums(pending, in_production, finished, delivered, cancelled)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Param        replacement query bool   false "Only replacements, or only regular orders"
// @Param        invoiced    query bool   false "Invoiced flag"
// @Param        from        query string false "Created from (YYYY-MM-DD)"
// @Param        to          query string false "Created until, inclusive (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder [get]
func (h *ServiceOrderHandler) List(c *gin.Context) {
	var filter productionapp.ServiceOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, orders, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateServiceOrder
// @Summary      Update a service order
// @Description  Only pending orders are editable. The price is recomputed.
// @Tags         serviceorder
// @Accept       json
// @Produce      json
// @Param        id      path string true "Order ID" format(uuid)
// @Param        request body productionapp.ServiceOrderRequest true "Order"
// @Success      200 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/{id} [put]
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	var req productionapp.ServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	order, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete godoc
// @ID           deleteServiceOrder
// @Summary      Delete a service order
// @Description  Only pending orders can be deleted
// @Tags         serviceorder
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetByNumber godoc
// @ID           getServiceOrderByNumber
// @Summary      Get a service order by its number
// @Tags         serviceorder
// @Produce      json
// @Param        number path int true "Order number"
// @Success      200 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/number/{number} [get]
func (h *ServiceOrderHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number < 1 {
		h.BadRequest(c, "Invalid order number")
		return
	}
	order, err := h.orderService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Summary godoc
// @ID           summarizeServiceOrders
// @Summary      Totals of the filtered orders
// @Description  Footer of the order list: measure and amount per product type, billable and loss totals.
// @Description  Accepts the list filters. Cancelled orders are not counted.
// @Tags         serviceorder
// @Produce      json
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Param        from        query string false "Created from (YYYY-MM-DD)"
// @Param        to          query string false "Created until, inclusive (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[productionapp.SummaryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/summary [get]
func (h *ServiceOrderHandler) Summary(c *gin.Context) {
	var filter productionapp.ServiceOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	summary, err := h.orderService.Summary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ChangeStatus godoc
// @ID           changeServiceOrderStatus
// @Summary      Move an order through its lifecycle
// @Description  pending > in_production > finished > delivered. Pending and in-production orders can be cancelled.
// @Tags         serviceorder
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Order ID" format(uuid)
// @Param        request body productionapp.StatusRequest true "Target status"
// @Success      200 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/{id}/status [put]
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	var req productionapp.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	order, err := h.orderService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// CreateReplacement godoc
// @ID           createReplacement
// @Summary      Open a replacement of a produced order
// @Description  The original must be finished or delivered and not itself a replacement.
// @Description  The copy is priced like the original and counted as a loss.
// @Tags         serviceorder
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Original order ID" format(uuid)
// @Param        request body productionapp.ReplacementRequest true "Reason and responsible party"
// @Success      201 {object} APIResponse[productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /serviceorder/{id}/replacement [post]
func (h *ServiceOrderHandler) CreateReplacement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "service order")
		return
	}
	var req productionapp.ReplacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	order, err := h.orderService.CreateReplacement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
