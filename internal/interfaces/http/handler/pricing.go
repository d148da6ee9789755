package handler

import (
	"context"

	pricingapp "github.com/flexo/backend/internal/application/pricing"
	"github.com/gin-gonic/gin"
)

// QuoteService prices lines without storing anything
type QuoteService interface {
	PriceTable(ctx context.Context) pricingapp.PriceTableResponse
	Quote(ctx context.Context, req pricingapp.QuoteRequest) (*pricingapp.QuoteResponse, error)
}

// PricingHandler exposes the price table and ad hoc quotes
type PricingHandler struct {
	BaseHandler
	quoteService QuoteService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(quoteService QuoteService) *PricingHandler {
	return &PricingHandler{quoteService: quoteService}
}

// Quote godoc
// @ID           quotePrices
// @Summary      Price cliché and die-cut lines
// @Description  Cliché lines are priced per cm² of plate area, die-cut lines per linear metre
// @Description  and m² with the origin's minimum. The summary totals each product type.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.QuoteRequest true "Lines"
// @Success      200 {object} APIResponse[pricingapp.QuoteResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req pricingapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	quote, err := h.quoteService.Quote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// PriceTable godoc
// @ID           getPriceTable
// @Summary      Current price table
// @Tags         pricing
// @Produce      json
// @Success      200 {object} APIResponse[pricingapp.PriceTableResponse]
// @Security     BearerAuth
// @Router       /pricing/table [get]
func (h *PricingHandler) PriceTable(c *gin.Context) {
	h.Success(c, h.quoteService.PriceTable(c.Request.Context()))
}
