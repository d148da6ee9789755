package notification

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// =============================================================================
// Channel DTOs
// =============================================================================

// ChannelRequest is the body of create and update
type ChannelRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=500"`
	Active      *bool      `json:"active"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// ChannelResponse represents a channel in API responses
type ChannelResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Version     int        `json:"version"`
}

// ChannelListFilter represents filter options for the channel list
type ChannelListFilter struct {
	listing.Query
	Active *bool `form:"active"`
}

// ToChannelResponse converts a domain channel to a response DTO
func ToChannelResponse(c *notification.Channel) ChannelResponse {
	return ChannelResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToChannelResponses converts a slice of channels
func ToChannelResponses(channels []notification.Channel) []ChannelResponse {
	out := make([]ChannelResponse, len(channels))
	for i := range channels {
		out[i] = ToChannelResponse(&channels[i])
	}
	return out
}

// =============================================================================
// Notification DTOs
// =============================================================================

// NotificationRequest posts a notification. A nil recipient broadcasts it.
type NotificationRequest struct {
	ChannelID   uuid.UUID  `json:"channelId" binding:"required"`
	RecipientID *uuid.UUID `json:"recipientId"`
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Message     string     `json:"message" binding:"max=2000"`
	Link        string     `json:"link" binding:"max=500"`
}

// MarkAllReadRequest optionally restricts mark-all-read to one channel
type MarkAllReadRequest struct {
	ChannelID *uuid.UUID `json:"channelId"`
}

// MarkAllReadResponse reports how many notifications changed
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	ChannelID   uuid.UUID  `json:"channelId"`
	RecipientID *uuid.UUID `json:"recipientId"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Link        string     `json:"link"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"readAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NotificationListFilter represents filter options for the notification list
type NotificationListFilter struct {
	listing.Query
	ChannelID string `form:"channelId" binding:"omitempty,uuid"`
	Unread    *bool  `form:"unread"`
}

// ToNotificationResponse converts a domain notification to a response DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		ChannelID:   n.ChannelID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
		Read:        n.IsRead(),
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of notifications
func ToNotificationResponses(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(items))
	for i := range items {
		out[i] = ToNotificationResponse(&items[i])
	}
	return out
}
