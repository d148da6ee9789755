package persistence

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errUserNotFound = shared.NotFound("User")

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errUserNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by login email, case-insensitively
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	query := conn(ctx, r.db).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if err := first(query, &model, errUserNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.UserModel{}), filter), filter, UserSortFields, "name")
	if err != nil {
		return nil, err
	}
	var userModels []models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]identity.User, len(userModels))
	for i, model := range userModels {
		users[i] = *model.ToDomain()
	}
	return users, nil
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.UserModel{}), filter))
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return saveVersioned(conn(ctx, r.db), models.UserModelFromDomain(user), user)
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.UserModel{}, id, errUserNotFound)
}

// ExistsByEmail checks if a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

// CountActiveByRole counts users holding role who can still sign in.
// Locked accounts count, their lock clears itself.
func (r *GormUserRepository) CountActiveByRole(ctx context.Context, role identity.Role) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.UserModel{}).
		Where("role = ? AND status <> ?", role, identity.UserStatusDeactivated))
}

func (r *GormUserRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name", "email")
	for key, value := range filter.Filters {
		switch key {
		case "role":
			query = query.Where("role = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
