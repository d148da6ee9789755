package handler

import (
	"context"

	prepressapp "github.com/flexo/backend/internal/application/prepress"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurveService is the part of prepressapp.CurveService used over HTTP
type CurveService interface {
	Create(ctx context.Context, req prepressapp.CurveRequest) (*prepressapp.CurveResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*prepressapp.CurveResponse, error)
	List(ctx context.Context, filter prepressapp.CurveListFilter) ([]prepressapp.CurveResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req prepressapp.CurveRequest) (*prepressapp.CurveResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CurveHandler handles curve endpoints
type CurveHandler struct {
	BaseHandler
	curveService CurveService
}

// NewCurveHandler creates a new CurveHandler
func NewCurveHandler(curveService CurveService) *CurveHandler {
	return &CurveHandler{curveService: curveService}
}

// Create godoc
// @ID           createCurve
// @Summary      Create a curve
// @Description  Dot-gain compensation curve. Points are input/output percentages with increasing input.
// @Tags         curve
// @Accept       json
// @Produce      json
// @Param        request body prepressapp.CurveRequest true "Curve"
// @Success      201 {object} APIResponse[prepressapp.CurveResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /curve [post]
func (h *CurveHandler) Create(c *gin.Context) {
	var req prepressapp.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	curve, err := h.curveService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, curve)
}

// GetByID godoc
// @ID           getCurve
// @Summary      Get a curve
// @Tags         curve
// @Produce      json
// @Param        id path string true "Curve ID" format(uuid)
// @Success      200 {object} APIResponse[prepressapp.CurveResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /curve/{id} [get]
func (h *CurveHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "curve")
		return
	}
	curve, err := h.curveService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, curve)
}

// List godoc
// @ID           listCurves
// @Summary      List curves
// @Tags         curve
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(name, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]prepressapp.CurveResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /curve [get]
func (h *CurveHandler) List(c *gin.Context) {
	var filter prepressapp.CurveListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	curves, total, err := h.curveService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, curves, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateCurve
// @Summary      Update a curve
// @Tags         curve
// @Accept       json
// @Produce      json
// @Param        id      path string true "Curve ID" format(uuid)
// @Param        request body prepressapp.CurveRequest true "Curve"
// @Success      200 {object} APIResponse[prepressapp.CurveResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /curve/{id} [put]
func (h *CurveHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "curve")
		return
	}
	var req prepressapp.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	curve, err := h.curveService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, curve)
}

// Delete godoc
// @ID           deleteCurve
// @Summary      Delete a curve
// @Description  Refused while a profile color uses it
// @Tags         curve
// @Param        id path string true "Curve ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /curve/{id} [delete]
func (h *CurveHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "curve")
		return
	}
	if err := h.curveService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
