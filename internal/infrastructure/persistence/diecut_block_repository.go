package persistence

import (
	"context"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errDieCutBlockNotFound = shared.NotFound("Die-cut block")

// GormDieCutBlockRepository implements DieCutBlockRepository using GORM
type GormDieCutBlockRepository struct {
	db *gorm.DB
}

func NewGormDieCutBlockRepository(db *gorm.DB) *GormDieCutBlockRepository {
	return &GormDieCutBlockRepository{db: db}
}

func (r *GormDieCutBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*tooling.DieCutBlock, error) {
	var model models.DieCutBlockModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errDieCutBlockNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormDieCutBlockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tooling.DieCutBlock, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.DieCutBlockModel{}), filter), filter, DieCutBlockSortFields, "code")
	if err != nil {
		return nil, err
	}
	var blockModels []models.DieCutBlockModel
	if err := query.Find(&blockModels).Error; err != nil {
		return nil, err
	}
	blocks := make([]tooling.DieCutBlock, len(blockModels))
	for i, model := range blockModels {
		blocks[i] = *model.ToDomain()
	}
	return blocks, nil
}

func (r *GormDieCutBlockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.DieCutBlockModel{}), filter))
}

func (r *GormDieCutBlockRepository) Save(ctx context.Context, block *tooling.DieCutBlock) error {
	return saveVersioned(conn(ctx, r.db), models.DieCutBlockModelFromDomain(block), block)
}

func (r *GormDieCutBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.DieCutBlockModel{}, id, errDieCutBlockNotFound)
}

func (r *GormDieCutBlockRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.DieCutBlockModel{}).Where("code = ?", code))
}

func (r *GormDieCutBlockRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.DieCutBlockModel{}).Where("customer_id = ?", customerID))
}

func (r *GormDieCutBlockRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "code", "description", "location")
	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "origin":
			query = query.Where("origin = ?", value)
		}
	}
	return query
}

var _ tooling.DieCutBlockRepository = (*GormDieCutBlockRepository)(nil)
