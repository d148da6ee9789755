package models

import (
	"time"

	"github.com/flexo/backend/internal/domain/identity"
)

// UserModel is the persistence model for users. Allowed routes are a JSON array.
type UserModel struct {
	AggregateModel
	Name           string              `gorm:"type:varchar(200);not null"`
	Email          string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string              `gorm:"type:varchar(255);not null"`
	Role           identity.Role       `gorm:"type:varchar(20);not null;index"`
	AllowedRoutes  []string            `gorm:"type:jsonb;serializer:json;not null"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time
	LastLoginIP    string `gorm:"type:varchar(45)"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.Aggregate(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		AllowedRoutes:     m.AllowedRoutes,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}
}

func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Name:           u.Name,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		AllowedRoutes:  u.AllowedRoutes,
		Status:         u.Status,
		LastLoginAt:    u.LastLoginAt,
		LastLoginIP:    u.LastLoginIP,
		FailedAttempts: u.FailedAttempts,
		LockedUntil:    u.LockedUntil,
	}
	m.SetAggregate(u.BaseAggregateRoot)
	return m
}
