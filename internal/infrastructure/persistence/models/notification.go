package models

import (
	"time"

	"github.com/flexo/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// ChannelModel is the persistence model for notification channels.
type ChannelModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true"`
}

func (ChannelModel) TableName() string {
	return "channels"
}

func (m *ChannelModel) ToDomain() *notification.Channel {
	return &notification.Channel{
		BaseAggregateRoot: m.Aggregate(),
		Name:              m.Name,
		Description:       m.Description,
		Active:            m.Active,
	}
}

func ChannelModelFromDomain(c *notification.Channel) *ChannelModel {
	m := &ChannelModel{
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
	}
	m.SetAggregate(c.BaseAggregateRoot)
	return m
}

// NotificationModel is the persistence model for notifications.
type NotificationModel struct {
	BaseModel
	ChannelID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Message     string     `gorm:"type:text"`
	Link        string     `gorm:"type:varchar(500)"`
	ReadAt      *time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseEntity:  m.Entity(),
		ChannelID:   m.ChannelID,
		RecipientID: m.RecipientID,
		Title:       m.Title,
		Message:     m.Message,
		Link:        m.Link,
		ReadAt:      m.ReadAt,
	}
}

func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{
		ChannelID:   n.ChannelID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
		ReadAt:      n.ReadAt,
	}
	m.SetEntity(n.BaseEntity)
	return m
}
