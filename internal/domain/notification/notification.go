package notification

import (
	"context"
	"strings"
	"time"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter keys understood by NotificationRepository.FindAll
const (
	FilterChannelID   = "channel_id"
	FilterRecipientID = "recipient_id"
	FilterUnread      = "unread"
)

// Notification is a message posted on a channel, optionally addressed to one user
type Notification struct {
	shared.BaseEntity
	ChannelID   uuid.UUID
	RecipientID *uuid.UUID
	Title       string
	Message     string
	Link        string
	ReadAt      *time.Time
}

func NewNotification(channelID uuid.UUID, title, message string) (*Notification, error) {
	if channelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Notification must belong to a channel")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot exceed 200 characters")
	}
	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		ChannelID:  channelID,
		Title:      title,
		Message:    strings.TrimSpace(message),
	}, nil
}

// For addresses the notification to a single user
func (n *Notification) For(userID uuid.UUID) *Notification {
	n.RecipientID = &userID
	return n
}

func (n *Notification) WithLink(link string) *Notification {
	n.Link = strings.TrimSpace(link)
	return n
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// IsBroadcast reports whether every user sees the notification
func (n *Notification) IsBroadcast() bool {
	return n.RecipientID == nil
}

// MarkRead is idempotent. A broadcast has one read state shared by all
// its readers.
func (n *Notification) MarkRead(at time.Time) {
	if n.ReadAt != nil {
		return
	}
	n.ReadAt = &at
	n.Touch()
}

// VisibleTo reports whether the user may see the notification
func (n *Notification) VisibleTo(userID uuid.UUID) bool {
	return n.RecipientID == nil || *n.RecipientID == userID
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Notification, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkAllRead marks every unread notification visible to the user as read
	MarkAllRead(ctx context.Context, userID uuid.UUID, channelID *uuid.UUID, at time.Time) (int64, error)
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error)
}
