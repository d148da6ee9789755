package identity

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles user management operations (admin only)
type UserService struct {
	userRepo  identity.UserRepository
	presets   identity.RolePresets
	revoked   auth.Revocations
	events    shared.EventPublisher
	config    AuthServiceConfig
	logger    *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	presets identity.RolePresets,
	revocations auth.Revocations,
	events shared.EventPublisher,
	config AuthServiceConfig,
	logger *zap.Logger,
) *UserService {
	if presets == nil {
		presets = identity.DefaultRolePresets()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo: userRepo,
		presets:  presets,
		revoked:  revocations,
		events:   events,
		config:   config,
		logger:   logger,
	}
}

// Create creates a new user. The email must be unique.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}
	user, err := identity.NewUser(req.Name, req.Email, req.Password, identity.Role(req.Role), req.AllowedRoutes, s.presets)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		user.SetCreatedBy(*req.CreatedBy)
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToUserResponses(users), total, nil
}

// Update replaces profile, role and allowed routes. Demoting the last
// admin is refused. Tokens of the user are revoked because they carry
// the old routes.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sameEmail(user.Email, req.Email) {
		if err := s.ensureEmailFree(ctx, req.Email); err != nil {
			return nil, err
		}
	}

	role := identity.Role(req.Role)
	if user.IsAdmin() && role != identity.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, user); err != nil {
			return nil, err
		}
	}

	routes := req.AllowedRoutes
	if len(routes) == 0 {
		routes = s.presets.RoutesFor(role)
	}
	accessChanged := role != user.Role || !equalRoutes(user.AllowedRoutes, routes)

	if err := user.Update(req.Name, req.Email); err != nil {
		return nil, err
	}
	if err := user.SetAccess(role, routes); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if accessChanged {
		s.revokeTokens(ctx, user.ID)
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Activate re-enables a user and clears any lock
func (s *UserService) Activate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Activate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// Deactivate blocks logins and revokes the user's tokens
func (s *UserService) Deactivate(ctx context.Context, actorID, id uuid.UUID) (*UserResponse, error) {
	if actorID == id {
		return nil, shared.NewDomainError("INVALID_STATE", "You cannot deactivate your own account")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		if err := s.ensureNotLastAdmin(ctx, user); err != nil {
			return nil, err
		}
	}
	user.Deactivate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.revokeTokens(ctx, user.ID)
	response := ToUserResponse(user)
	return &response, nil
}

// ResetPassword sets a new password without checking the old one
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.SetPassword(req.Password); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	s.revokeTokens(ctx, user.ID)
	s.logger.Info("User password reset", zap.String("user_id", id.String()))
	return nil
}

// Delete removes a user. Admins cannot delete themselves nor the last admin.
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return shared.NewDomainError("INVALID_STATE", "You cannot delete your own account")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		if err := s.ensureNotLastAdmin(ctx, user); err != nil {
			return err
		}
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.revokeTokens(ctx, id)
	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}
	return nil
}

// ensureNotLastAdmin refuses to take away the last admin who can still sign
// in. Removing a deactivated admin never needs the check.
func (s *UserService) ensureNotLastAdmin(ctx context.Context, user *identity.User) error {
	if user.Status == identity.UserStatusDeactivated {
		return nil
	}
	admins, err := s.userRepo.CountActiveByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return shared.NewDomainError("INVALID_STATE", "At least one admin must remain")
	}
	return nil
}

func (s *UserService) revokeTokens(ctx context.Context, id uuid.UUID) {
	if s.revoked == nil {
		return
	}
	if err := s.revoked.RevokeUser(ctx, id.String(), s.config.RefreshTTL); err != nil {
		s.logger.Error("Failed to revoke user tokens", zap.String("user_id", id.String()), zap.Error(err))
	}
}

func sameEmail(a, b string) bool {
	return normalizeEmail(a) == normalizeEmail(b)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func equalRoutes(current, next []string) bool {
	normalized, err := identity.NormalizeRoutes(next)
	if err != nil || len(normalized) != len(current) {
		return false
	}
	for i := range current {
		if current[i] != normalized[i] {
			return false
		}
	}
	return true
}
