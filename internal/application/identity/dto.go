package identity

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// LoginRequest contains the input for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,max=72"`
	IP       string `json:"-"` // client IP for login tracking
}

// RefreshRequest carries the refresh token to rotate
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutInput identifies the tokens to revoke
type LogoutInput struct {
	UserID       uuid.UUID
	AccessJTI    string
	AccessTTL    time.Duration
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest contains the input for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken           string        `json:"accessToken"`
	RefreshToken          string        `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time     `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time     `json:"refreshTokenExpiresAt"`
	TokenType             string        `json:"tokenType"`
	User                  *UserResponse `json:"user,omitempty"`
}

// =============================================================================
// User DTOs
// =============================================================================

// CreateUserRequest is the body of an admin user creation. An empty
// allowedRoutes takes the role preset.
type CreateUserRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	Email         string     `json:"email" binding:"required,email,max=200"`
	Password      string     `json:"password" binding:"required,min=8,max=72"`
	Role          string     `json:"role" binding:"required,oneof=admin manager operator viewer"`
	AllowedRoutes []string   `json:"allowedRoutes" binding:"omitempty,max=50,dive,min=1,max=100"`
	CreatedBy     *uuid.UUID `json:"-"`
}

// UpdateUserRequest replaces profile and access of a user
type UpdateUserRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=200"`
	Email         string   `json:"email" binding:"required,email,max=200"`
	Role          string   `json:"role" binding:"required,oneof=admin manager operator viewer"`
	AllowedRoutes []string `json:"allowedRoutes" binding:"omitempty,max=50,dive,min=1,max=100"`
}

// ResetPasswordRequest sets a new password without the old one
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	listing.Query
	Role   string `form:"role" binding:"omitempty,oneof=admin manager operator viewer"`
	Status string `form:"status" binding:"omitempty,oneof=active locked deactivated"`
}

// UserResponse represents a user in API responses. It is also the body of /user/me.
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	AllowedRoutes []string   `json:"allowedRoutes"`
	Status        string     `json:"status"`
	Active        bool       `json:"active"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Version       int        `json:"version"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	routes := u.AllowedRoutes
	if routes == nil {
		routes = []string{}
	}
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		AllowedRoutes: routes,
		Status:        string(u.Status),
		Active:        u.Status != identity.UserStatusDeactivated,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		Version:       u.Version,
	}
}

// ToUserResponses converts a slice of users
func ToUserResponses(users []identity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
