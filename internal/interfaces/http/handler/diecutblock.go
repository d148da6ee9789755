package handler

import (
	"context"

	toolingapp "github.com/flexo/backend/internal/application/tooling"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DieCutBlockService is the part of toolingapp.DieCutBlockService used over HTTP
type DieCutBlockService interface {
	Create(ctx context.Context, req toolingapp.DieCutBlockRequest) (*toolingapp.DieCutBlockResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*toolingapp.DieCutBlockResponse, error)
	List(ctx context.Context, filter toolingapp.DieCutBlockListFilter) ([]toolingapp.DieCutBlockResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req toolingapp.DieCutBlockRequest) (*toolingapp.DieCutBlockResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Quote(ctx context.Context, id uuid.UUID, quantity int) (*toolingapp.DieCutBlockQuoteResponse, error)
}

// DieCutBlockHandler handles die-cut block endpoints
type DieCutBlockHandler struct {
	BaseHandler
	blockService DieCutBlockService
}

// NewDieCutBlockHandler creates a new DieCutBlockHandler
func NewDieCutBlockHandler(blockService DieCutBlockService) *DieCutBlockHandler {
	return &DieCutBlockHandler{blockService: blockService}
}

// Create godoc
// @ID           createDieCutBlock
// @Summary      Create a die-cut block
// @Description  Code is unique. Code and customer cannot change after creation.
// @Tags         diecutblock
// @Accept       json
// @Produce      json
// @Param        request body toolingapp.DieCutBlockRequest true "Block"
// @Success      201 {object} APIResponse[toolingapp.DieCutBlockResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock [post]
func (h *DieCutBlockHandler) Create(c *gin.Context) {
	var req toolingapp.DieCutBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	block, err := h.blockService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, block)
}

// GetByID godoc
// @ID           getDieCutBlock
// @Summary      Get a die-cut block
// @Tags         diecutblock
// @Produce      json
// @Param        id path string true "Block ID" format(uuid)
// @Success      200 {object} APIResponse[toolingapp.DieCutBlockResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock/{id} [get]
func (h *DieCutBlockHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "die-cut block")
		return
	}
	block, err := h.blockService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, block)
}

// List godoc
// @ID           listDieCutBlocks
// @Summary      List die-cut blocks
// @Tags         diecutblock
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(code, origin, customerId, description, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        customerId query string false "Owning customer" format(uuid)
// @Param        origin     query string false "Origin" Enums(national, imported)
// @Success      200 {object} APIResponse[[]toolingapp.DieCutBlockResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock [get]
func (h *DieCutBlockHandler) List(c *gin.Context) {
	var filter toolingapp.DieCutBlockListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	blocks, total, err := h.blockService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, blocks, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateDieCutBlock
// @Summary      Update a die-cut block
// @Tags         diecutblock
// @Accept       json
// @Produce      json
// @Param        id      path string true "Block ID" format(uuid)
// @Param        request body toolingapp.DieCutBlockRequest true "Block"
// @Success      200 {object} APIResponse[toolingapp.DieCutBlockResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock/{id} [put]
func (h *DieCutBlockHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "die-cut block")
		return
	}
	var req toolingapp.DieCutBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	block, err := h.blockService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, block)
}

// Delete godoc
// @ID           deleteDieCutBlock
// @Summary      Delete a die-cut block
// @Description  Refused while service orders reference it
// @Tags         diecutblock
// @Param        id path string true "Block ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock/{id} [delete]
func (h *DieCutBlockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "die-cut block")
		return
	}
	if err := h.blockService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// BlockQuoteQuery is the query of the block quote endpoint
type BlockQuoteQuery struct {
	Quantity int `form:"quantity" binding:"omitempty,min=1,max=100000"`
}

// Quote godoc
// @ID           quoteDieCutBlock
// @Summary      Price copies of a stored block
// @Description  Uses the current die-cut price table. Quantity defaults to 1.
// @Tags         diecutblock
// @Produce      json
// @Param        id       path  string true  "Block ID" format(uuid)
// @Param        quantity query int    false "Copies" default(1)
// @Success      200 {object} APIResponse[toolingapp.DieCutBlockQuoteResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /diecutblock/{id}/quote [get]
func (h *DieCutBlockHandler) Quote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "die-cut block")
		return
	}
	var q BlockQuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}
	if q.Quantity == 0 {
		q.Quantity = 1
	}
	quote, err := h.blockService.Quote(c.Request.Context(), id, q.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}
