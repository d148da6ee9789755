package handler

import (
	"context"

	partnerapp "github.com/flexo/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransportService is the part of partnerapp.TransportService used over HTTP
type TransportService interface {
	Create(ctx context.Context, req partnerapp.TransportRequest) (*partnerapp.TransportResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*partnerapp.TransportResponse, error)
	List(ctx context.Context, filter partnerapp.TransportListFilter) ([]partnerapp.TransportResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req partnerapp.TransportRequest) (*partnerapp.TransportResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransportHandler handles transport endpoints
type TransportHandler struct {
	BaseHandler
	transportService TransportService
}

// NewTransportHandler creates a new TransportHandler
func NewTransportHandler(transportService TransportService) *TransportHandler {
	return &TransportHandler{transportService: transportService}
}

// Create godoc
// @ID           createTransport
// @Summary      Create a transport
// @Tags         transport
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.TransportRequest true "Transport"
// @Success      201 {object} APIResponse[partnerapp.TransportResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /transport [post]
func (h *TransportHandler) Create(c *gin.Context) {
	var req partnerapp.TransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	transport, err := h.transportService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, transport)
}

// GetByID godoc
// @ID           getTransport
// @Summary      Get a transport
// @Tags         transport
// @Produce      json
// @Param        id path string true "Transport ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.TransportResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /transport/{id} [get]
func (h *TransportHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "transport")
		return
	}
	transport, err := h.transportService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transport)
}

// List godoc
// @ID           listTransports
// @Summary      List carriers
// @Tags         transport
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(name, active, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        active    query bool   false "Active flag"
// @Success      200 {object} APIResponse[[]partnerapp.TransportResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /transport [get]
func (h *TransportHandler) List(c *gin.Context) {
	var filter partnerapp.TransportListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	transports, total, err := h.transportService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, transports, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateTransport
// @Summary      Update a transport
// @Tags         transport
// @Accept       json
// @Produce      json
// @Param        id      path string true "Transport ID" format(uuid)
// @Param        request body partnerapp.TransportRequest true "Transport"
// @Success      200 {object} APIResponse[partnerapp.TransportResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /transport/{id} [put]
func (h *TransportHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "transport")
		return
	}
	var req partnerapp.TransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	transport, err := h.transportService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transport)
}

// Delete godoc
// @ID           deleteTransport
// @Summary      Delete a transport
// @Description  Refused while customers or service orders reference it
// @Tags         transport
// @Param        id path string true "Transport ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /transport/{id} [delete]
func (h *TransportHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "transport")
		return
	}
	if err := h.transportService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
