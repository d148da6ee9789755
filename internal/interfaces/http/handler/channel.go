package handler

import (
	"context"

	notificationapp "github.com/flexo/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChannelService is the part of notificationapp.ChannelService used over HTTP
type ChannelService interface {
	Create(ctx context.Context, req notificationapp.ChannelRequest) (*notificationapp.ChannelResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*notificationapp.ChannelResponse, error)
	List(ctx context.Context, filter notificationapp.ChannelListFilter) ([]notificationapp.ChannelResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req notificationapp.ChannelRequest) (*notificationapp.ChannelResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChannelHandler handles channel endpoints
type ChannelHandler struct {
	BaseHandler
	channelService ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(channelService ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// Create godoc
// @ID           createChannel
// @Summary      Create a channel
// @Tags         channel
// @Accept       json
// @Produce      json
// @Param        request body notificationapp.ChannelRequest true "Channel"
// @Success      201 {object} APIResponse[notificationapp.ChannelResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /channel [post]
func (h *ChannelHandler) Create(c *gin.Context) {
	var req notificationapp.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	channel, err := h.channelService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, channel)
}

// GetByID godoc
// @ID           getChannel
// @Summary      Get a channel
// @Tags         channel
// @Produce      json
// @Param        id path string true "Channel ID" format(uuid)
// @Success      200 {object} APIResponse[notificationapp.ChannelResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /channel/{id} [get]
func (h *ChannelHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "channel")
		return
	}
	channel, err := h.channelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, channel)
}

// List godoc
// @ID           listChannels
// @Summary      List notification channels
// @Tags         channel
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(name, active, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        active    query bool   false "Active flag"
// @Success      200 {object} APIResponse[[]notificationapp.ChannelResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /channel [get]
func (h *ChannelHandler) List(c *gin.Context) {
	var filter notificationapp.ChannelListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	channels, total, err := h.channelService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, channels, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateChannel
// @Summary      Update a channel
// @Tags         channel
// @Accept       json
// @Produce      json
// @Param        id      path string true "Channel ID" format(uuid)
// @Param        request body notificationapp.ChannelRequest true "Channel"
// @Success      200 {object} APIResponse[notificationapp.ChannelResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /channel/{id} [put]
func (h *ChannelHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "channel")
		return
	}
	var req notificationapp.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	channel, err := h.channelService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, channel)
}

// Delete godoc
// @ID           deleteChannel
// @Summary      Delete a channel
// @Description  Refused while notifications are posted on it
// @Tags         channel
// @Param        id path string true "Channel ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /channel/{id} [delete]
func (h *ChannelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "channel")
		return
	}
	if err := h.channelService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
