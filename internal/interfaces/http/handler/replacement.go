package handler

import (
	"context"

	productionapp "github.com/flexo/backend/internal/application/production"
	"github.com/gin-gonic/gin"
)

// ReplacementService is the part of productionapp.ReplacementService used over HTTP
type ReplacementService interface {
	List(ctx context.Context, filter productionapp.ReplacementListFilter) ([]productionapp.ServiceOrderResponse, int64, error)
	Losses(ctx context.Context, filter productionapp.ReplacementListFilter) (*productionapp.LossesResponse, error)
}

// ReplacementHandler serves the replacement view over service orders
type ReplacementHandler struct {
	BaseHandler
	replacementService ReplacementService
}

// NewReplacementHandler creates a new ReplacementHandler
func NewReplacementHandler(replacementService ReplacementService) *ReplacementHandler {
	return &ReplacementHandler{replacementService: replacementService}
}

// List godoc
// @ID           listReplacements
// @Summary      List replacements
// @Tags         replacement
// @Produce      json
// @Param        page        query int    false "Page number" default(1)
// @Param        limit       query int    false "Page size" default(10) maximum(100)
// @Param        search      query string false "Search text"
// @Param        sortKey     query string false "Sort field"
// @Param        sortValue   query string false "Sort direction" Enums(asc, desc)
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Param        from        query string false "Created from (YYYY-MM-DD)"
// @Param        to          query string false "Created until, inclusive (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]productionapp.ServiceOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /replacement [get]
func (h *ReplacementHandler) List(c *gin.Context) {
	var filter productionapp.ReplacementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	orders, total, err := h.replacementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, orders, total, page.Page, page.Limit)
}

// Losses godoc
// @ID           replacementLosses
// @Summary      Replacement losses of a period
// @Description  Amounts grouped by responsible party and by reason. Cancelled replacements are not counted.
// @Tags         replacement
// @Produce      json
// @Param        customerId  query string false "Customer" format(uuid)
// @Param        productType query string false "Product type" Enums(cliche_corrugated, die_cut_block)
// @Param        from        query string false "Created from (YYYY-MM-DD)"
// @Param        to          query string false "Created until, inclusive (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[productionapp.LossesResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /replacement/losses [get]
func (h *ReplacementHandler) Losses(c *gin.Context) {
	var filter productionapp.ReplacementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	losses, err := h.replacementService.Losses(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, losses)
}
