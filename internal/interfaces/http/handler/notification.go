package handler

import (
	"context"
	"errors"
	"io"

	notificationapp "github.com/flexo/backend/internal/application/notification"
	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationService is the part of notificationapp.NotificationService used over HTTP
type NotificationService interface {
	Create(ctx context.Context, req notificationapp.NotificationRequest) (*notificationapp.NotificationResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter notificationapp.NotificationListFilter) ([]notificationapp.NotificationResponse, int64, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*notificationapp.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*notificationapp.NotificationResponse, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID, req notificationapp.MarkAllReadRequest) (*notificationapp.MarkAllReadResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID, canPublish bool) error
}

// publishRoute is the allowed-route entry guarding POST /notification
const publishRoute = "/notification"

// NotificationHandler serves the caller's notification feed. Broadcasts
// and notifications addressed to the caller are visible.
type NotificationHandler struct {
	BaseHandler
	notificationService NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Create godoc
// @ID           createNotification
// @Summary      Post a notification
// @Description  A missing recipientId broadcasts to every user. The channel must be active.
// @Tags         notification
// @Accept       json
// @Produce      json
// @Param        request body notificationapp.NotificationRequest true "Notification"
// @Success      201 {object} APIResponse[notificationapp.NotificationResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req notificationapp.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	n, err := h.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, n)
}

// List godoc
// @ID           listNotifications
// @Summary      List the caller's notifications
// @Tags         notification
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search title and message"
// @Param        sortKey   query string false "Sort field" Enums(title, readAt, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        channelId query string false "Channel" format(uuid)
// @Param        unread    query bool   false "Only unread"
// @Success      200 {object} APIResponse[[]notificationapp.NotificationResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var filter notificationapp.NotificationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	items, total, err := h.notificationService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, items, total, page.Page, page.Limit)
}

// GetByID godoc
// @ID           getNotification
// @Summary      Get a notification
// @Tags         notification
// @Produce      json
// @Param        id path string true "Notification ID" format(uuid)
// @Success      200 {object} APIResponse[notificationapp.NotificationResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification/{id} [get]
func (h *NotificationHandler) GetByID(c *gin.Context) {
	h.withNotification(c, h.notificationService.GetByID)
}

// MarkRead godoc
// @ID           markNotificationRead
// @Summary      Mark a notification as read
// @Tags         notification
// @Produce      json
// @Param        id path string true "Notification ID" format(uuid)
// @Success      200 {object} APIResponse[notificationapp.NotificationResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.withNotification(c, h.notificationService.MarkRead)
}

// MarkAllRead godoc
// @ID           markAllNotificationsRead
// @Summary      Mark every visible notification as read
// @Tags         notification
// @Accept       json
// @Produce      json
// @Param        request body notificationapp.MarkAllReadRequest false "Restrict to one channel"
// @Success      200 {object} APIResponse[notificationapp.MarkAllReadResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var req notificationapp.MarkAllReadRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}
	result, err := h.notificationService.MarkAllRead(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteNotification
// @Summary      Delete a notification
// @Description  Broadcasts can only be deleted by callers allowed to publish notifications.
// @Tags         notification
// @Param        id path string true "Notification ID" format(uuid)
// @Success      204
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /notification/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "notification")
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), userID, id, canPublish(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *NotificationHandler) withNotification(c *gin.Context, fn func(ctx context.Context, userID, id uuid.UUID) (*notificationapp.NotificationResponse, error)) {
	userID, err := callerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "notification")
		return
	}
	n, err := fn(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// canPublish mirrors the route guard on POST /notification
func canPublish(c *gin.Context) bool {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		return false
	}
	return identity.Role(claims.Role) == identity.RoleAdmin || identity.CanAccess(claims.AllowedRoutes, publishRoute)
}
