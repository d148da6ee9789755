package persistence

import (
	"context"
	"time"

	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errChannelNotFound      = shared.NotFound("Channel")
	errNotificationNotFound = shared.NotFound("Notification")
)

// GormChannelRepository implements ChannelRepository using GORM
type GormChannelRepository struct {
	db *gorm.DB
}

func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

func (r *GormChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Channel, error) {
	var model models.ChannelModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errChannelNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormChannelRepository) FindByName(ctx context.Context, name string) (*notification.Channel, error) {
	var model models.ChannelModel
	if err := first(conn(ctx, r.db).Where("LOWER(name) = LOWER(?)", name), &model, errChannelNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormChannelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.Channel, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.ChannelModel{}), filter), filter, ChannelSortFields, "name")
	if err != nil {
		return nil, err
	}
	var channelModels []models.ChannelModel
	if err := query.Find(&channelModels).Error; err != nil {
		return nil, err
	}
	channels := make([]notification.Channel, len(channelModels))
	for i, model := range channelModels {
		channels[i] = *model.ToDomain()
	}
	return channels, nil
}

func (r *GormChannelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.ChannelModel{}), filter))
}

func (r *GormChannelRepository) Save(ctx context.Context, channel *notification.Channel) error {
	return saveVersioned(conn(ctx, r.db), models.ChannelModelFromDomain(channel), channel)
}

func (r *GormChannelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.ChannelModel{}, id, errChannelNotFound)
}

func (r *GormChannelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.ChannelModel{}).Where("LOWER(name) = LOWER(?)", name))
}

func (r *GormChannelRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name", "description")
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}
	return query
}

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errNotificationNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists notifications. The recipient_id filter returns broadcasts
// plus the ones addressed to that user.
func (r *GormNotificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.Notification, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.NotificationModel{}), filter), filter, NotificationSortFields, "created_at")
	if err != nil {
		return nil, err
	}
	var notificationModels []models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}
	notifications := make([]notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		notifications[i] = *model.ToDomain()
	}
	return notifications, nil
}

func (r *GormNotificationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.NotificationModel{}), filter))
}

func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return conn(ctx, r.db).Save(models.NotificationModelFromDomain(n)).Error
}

func (r *GormNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.NotificationModel{}, id, errNotificationNotFound)
}

// MarkAllRead marks the unread notifications visible to userID as read,
// optionally limited to one channel, and returns how many changed.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, channelID *uuid.UUID, at time.Time) (int64, error) {
	query := conn(ctx, r.db).Model(&models.NotificationModel{}).
		Where("read_at IS NULL").
		Where("(recipient_id IS NULL OR recipient_id = ?)", userID)
	if channelID != nil {
		query = query.Where("channel_id = ?", *channelID)
	}
	result := query.Updates(map[string]any{"read_at": at, "updated_at": at})
	return result.RowsAffected, result.Error
}

func (r *GormNotificationRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.NotificationModel{}).Where("channel_id = ?", channelID))
}

func (r *GormNotificationRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "title", "message")
	for key, value := range filter.Filters {
		switch key {
		case notification.FilterChannelID:
			query = query.Where("channel_id = ?", value)
		case notification.FilterRecipientID:
			query = query.Where("(recipient_id IS NULL OR recipient_id = ?)", value)
		case notification.FilterUnread:
			if unread, ok := value.(bool); ok {
				if unread {
					query = query.Where("read_at IS NULL")
				} else {
					query = query.Where("read_at IS NOT NULL")
				}
			}
		}
	}
	return query
}

var (
	_ notification.ChannelRepository      = (*GormChannelRepository)(nil)
	_ notification.NotificationRepository = (*GormNotificationRepository)(nil)
)
