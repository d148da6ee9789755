package notification

import (
	"context"
	"time"

	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationService handles the notification feed of the signed-in user
type NotificationService struct {
	notificationRepo notification.NotificationRepository
	channelRepo      notification.ChannelRepository
	now              func() time.Time
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo notification.NotificationRepository, channelRepo notification.ChannelRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		channelRepo:      channelRepo,
		now:              time.Now,
	}
}

// Create posts a notification on an existing channel
func (s *NotificationService) Create(ctx context.Context, req NotificationRequest) (*NotificationResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	if !channel.Active {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Channel is inactive")
	}
	n, err := notification.NewNotification(channel.ID, req.Title, req.Message)
	if err != nil {
		return nil, err
	}
	if req.RecipientID != nil {
		n.For(*req.RecipientID)
	}
	n.WithLink(req.Link)

	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	response := ToNotificationResponse(n)
	return &response, nil
}

// List returns the notifications visible to the user
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, filter NotificationListFilter) ([]NotificationResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	domainFilter.Filters[notification.FilterRecipientID] = userID
	if filter.ChannelID != "" {
		id, err := uuid.Parse(filter.ChannelID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "channelId must be a UUID")
		}
		domainFilter.Filters[notification.FilterChannelID] = id
	}
	if filter.Unread != nil {
		domainFilter.Filters[notification.FilterUnread] = *filter.Unread
	}

	items, err := s.notificationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.notificationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToNotificationResponses(items), total, nil
}

// GetByID returns one notification when the user may see it
func (s *NotificationService) GetByID(ctx context.Context, userID, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.visible(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	response := ToNotificationResponse(n)
	return &response, nil
}

// MarkRead marks one notification as read. Broadcasts share their read
// state, so reading one marks it read for every user.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.visible(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !n.IsRead() {
		n.MarkRead(s.now())
		if err := s.notificationRepo.Save(ctx, n); err != nil {
			return nil, err
		}
	}
	response := ToNotificationResponse(n)
	return &response, nil
}

// MarkAllRead marks every unread notification visible to the user as read,
// broadcasts included
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID, req MarkAllReadRequest) (*MarkAllReadResponse, error) {
	n, err := s.notificationRepo.MarkAllRead(ctx, userID, req.ChannelID, s.now())
	if err != nil {
		return nil, err
	}
	return &MarkAllReadResponse{Updated: n}, nil
}

// Delete removes a notification. A broadcast disappears for everyone, so
// only callers allowed to publish may delete one.
func (s *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID, canPublish bool) error {
	n, err := s.visible(ctx, userID, id)
	if err != nil {
		return err
	}
	if n.IsBroadcast() && !canPublish {
		return shared.NewDomainError("FORBIDDEN", "Only publishers can delete a broadcast notification")
	}
	return s.notificationRepo.Delete(ctx, id)
}

// visible hides notifications addressed to someone else behind NOT_FOUND
func (s *NotificationService) visible(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.VisibleTo(userID) {
		return nil, shared.NotFound("Notification")
	}
	return n, nil
}
