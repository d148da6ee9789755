// Package handler holds the gin handlers of the /api/v1 endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/logger"
	"github.com/flexo/backend/internal/interfaces/http/dto"
	"github.com/flexo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Non-domain errors never reach the client verbatim
const internalErrorMessage = "An internal error occurred"

var errNoCaller = errors.New("no authenticated user in context")

// BaseHandler is embedded by every resource handler for the response
// envelope helpers
type BaseHandler struct{}

func callerID(c *gin.Context) (uuid.UUID, error) {
	raw := middleware.GetJWTUserID(c)
	if raw == "" {
		return uuid.Nil, errNoCaller
	}
	return uuid.Parse(raw)
}

// createdBy is the audit pointer stored on new records
func createdBy(c *gin.Context) *uuid.UUID {
	if id, err := callerID(c); err == nil {
		return &id
	}
	return nil
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	return id, err == nil
}

func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta adds the pagination block of list endpoints
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes the error envelope. The request ID lets support find the
// matching log line.
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

func (h *BaseHandler) InvalidID(c *gin.Context, resource string) {
	h.BadRequest(c, "Invalid "+resource+" ID format")
}

func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// BindError answers a failed ShouldBind*. Field rule violations get the
// per-field listing; anything else is a malformed body or query.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		middleware.HandleValidationError(c, err)
		return
	}
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Malformed request: "+err.Error())
}

// HandleError answers with the status mapped to a DomainError code. Any
// other error is logged with the route and hidden behind a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		code := dto.NormalizeErrorCode(de.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, de.Message)
		return
	}
	logger.L(c.Request.Context()).Error("Unhandled error",
		zap.Error(err),
		zap.String("route", c.FullPath()),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, internalErrorMessage)
}
