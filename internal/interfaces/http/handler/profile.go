package handler

import (
	"context"

	prepressapp "github.com/flexo/backend/internal/application/prepress"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileService is the part of prepressapp.ProfileService used over HTTP
type ProfileService interface {
	Create(ctx context.Context, req prepressapp.ProfileRequest) (*prepressapp.ProfileResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*prepressapp.ProfileResponse, error)
	List(ctx context.Context, filter prepressapp.ProfileListFilter) ([]prepressapp.ProfileResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req prepressapp.ProfileRequest) (*prepressapp.ProfileResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	BaseHandler
	profileService ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create godoc
// @ID           createProfile
// @Summary      Create a profile
// @Description  Print profile of a printer. Colors may not exceed the printer stations.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body prepressapp.ProfileRequest true "Profile"
// @Success      201 {object} APIResponse[prepressapp.ProfileResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /profile [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var req prepressapp.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	profile, err := h.profileService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, profile)
}

// GetByID godoc
// @ID           getProfile
// @Summary      Get a profile
// @Tags         profile
// @Produce      json
// @Param        id path string true "Profile ID" format(uuid)
// @Success      200 {object} APIResponse[prepressapp.ProfileResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "profile")
		return
	}
	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// List godoc
// @ID           listProfiles
// @Summary      List profiles
// @Tags         profile
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10) maximum(100)
// @Param        search    query string false "Search text"
// @Param        sortKey   query string false "Sort field" Enums(name, lineature, dotType, printerId, createdAt)
// @Param        sortValue query string false "Sort direction" Enums(asc, desc)
// @Param        printerId query string false "Printer" format(uuid)
// @Success      200 {object} APIResponse[[]prepressapp.ProfileResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) List(c *gin.Context) {
	var filter prepressapp.ProfileListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	profiles, total, err := h.profileService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, profiles, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateProfile
// @Summary      Update a profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id      path string true "Profile ID" format(uuid)
// @Param        request body prepressapp.ProfileRequest true "Profile"
// @Success      200 {object} APIResponse[prepressapp.ProfileResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "profile")
		return
	}
	var req prepressapp.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	profile, err := h.profileService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// Delete godoc
// @ID           deleteProfile
// @Summary      Delete a profile
// @Description  Refused while service orders reference it
// @Tags         profile
// @Param        id path string true "Profile ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "profile")
		return
	}
	if err := h.profileService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
