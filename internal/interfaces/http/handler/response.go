package handler

import "github.com/flexo/backend/internal/interfaces/http/dto"

// Swagger-only shapes. Handlers write dto.Response; these generics let the
// annotations name the concrete data type of each endpoint.

// APIResponse is the envelope with a typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// SuccessResponse is returned by deletes and other calls without a body
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// MessageData confirms an action, e.g. "Password changed"
type MessageData struct {
	Message string `json:"message" example:"Password changed"`
}
