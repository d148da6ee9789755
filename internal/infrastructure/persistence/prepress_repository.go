package persistence

import (
	"context"

	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errPrinterNotFound = shared.NotFound("Printer")
	errCurveNotFound   = shared.NotFound("Curve")
	errProfileNotFound = shared.NotFound("Profile")
)

// GormPrinterRepository implements PrinterRepository using GORM
type GormPrinterRepository struct {
	db *gorm.DB
}

func NewGormPrinterRepository(db *gorm.DB) *GormPrinterRepository {
	return &GormPrinterRepository{db: db}
}

func (r *GormPrinterRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error) {
	var model models.PrinterModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errPrinterNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds printers matching the filter. Supported filter key: customer_id.
func (r *GormPrinterRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Printer, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.PrinterModel{}), filter), filter, PrinterSortFields, "name")
	if err != nil {
		return nil, err
	}
	var printerModels []models.PrinterModel
	if err := query.Find(&printerModels).Error; err != nil {
		return nil, err
	}
	printers := make([]prepress.Printer, len(printerModels))
	for i, model := range printerModels {
		printers[i] = *model.ToDomain()
	}
	return printers, nil
}

func (r *GormPrinterRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.PrinterModel{}), filter))
}

func (r *GormPrinterRepository) Save(ctx context.Context, printer *prepress.Printer) error {
	return saveVersioned(conn(ctx, r.db), models.PrinterModelFromDomain(printer), printer)
}

func (r *GormPrinterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.PrinterModel{}, id, errPrinterNotFound)
}

func (r *GormPrinterRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.PrinterModel{}).Where("customer_id = ?", customerID))
}

func (r *GormPrinterRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name", "manufacturer", "model")
	if customerID, ok := filter.Filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}
	return query
}

// GormCurveRepository implements CurveRepository using GORM
type GormCurveRepository struct {
	db *gorm.DB
}

func NewGormCurveRepository(db *gorm.DB) *GormCurveRepository {
	return &GormCurveRepository{db: db}
}

func (r *GormCurveRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Curve, error) {
	var model models.CurveModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errCurveNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormCurveRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]prepress.Curve, error) {
	if len(ids) == 0 {
		return []prepress.Curve{}, nil
	}
	var curveModels []models.CurveModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&curveModels).Error; err != nil {
		return nil, err
	}
	return curvesToDomain(curveModels), nil
}

func (r *GormCurveRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Curve, error) {
	query := applySearch(conn(ctx, r.db).Model(&models.CurveModel{}), filter.Search, "name", "description")
	query, err := paginate(query, filter, CurveSortFields, "name")
	if err != nil {
		return nil, err
	}
	var curveModels []models.CurveModel
	if err := query.Find(&curveModels).Error; err != nil {
		return nil, err
	}
	return curvesToDomain(curveModels), nil
}

func (r *GormCurveRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(applySearch(conn(ctx, r.db).Model(&models.CurveModel{}), filter.Search, "name", "description"))
}

func (r *GormCurveRepository) Save(ctx context.Context, curve *prepress.Curve) error {
	return saveVersioned(conn(ctx, r.db), models.CurveModelFromDomain(curve), curve)
}

func (r *GormCurveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.CurveModel{}, id, errCurveNotFound)
}

func (r *GormCurveRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.CurveModel{}).Where("LOWER(name) = LOWER(?)", name))
}

func curvesToDomain(curveModels []models.CurveModel) []prepress.Curve {
	curves := make([]prepress.Curve, len(curveModels))
	for i, model := range curveModels {
		curves[i] = *model.ToDomain()
	}
	return curves
}

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error) {
	var model models.ProfileModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errProfileNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Profile, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.ProfileModel{}), filter), filter, ProfileSortFields, "name")
	if err != nil {
		return nil, err
	}
	var profileModels []models.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]prepress.Profile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

func (r *GormProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.ProfileModel{}), filter))
}

func (r *GormProfileRepository) Save(ctx context.Context, profile *prepress.Profile) error {
	return saveVersioned(conn(ctx, r.db), models.ProfileModelFromDomain(profile), profile)
}

func (r *GormProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.ProfileModel{}, id, errProfileNotFound)
}

func (r *GormProfileRepository) ExistsByPrinterAndName(ctx context.Context, printerID uuid.UUID, name string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.ProfileModel{}).
		Where("printer_id = ? AND LOWER(name) = LOWER(?)", printerID, name))
}

func (r *GormProfileRepository) CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.ProfileModel{}).Where("printer_id = ?", printerID))
}

// CountByCurve counts profiles with a color separation using curveID. Colors
// are stored as a JSON array, so the id is matched as text.
func (r *GormProfileRepository) CountByCurve(ctx context.Context, curveID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.ProfileModel{}).
		Where("CAST(colors AS TEXT) LIKE ?", "%"+curveID.String()+"%"))
}

func (r *GormProfileRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name")
	if printerID, ok := filter.Filters["printer_id"]; ok {
		query = query.Where("printer_id = ?", printerID)
	}
	return query
}

var (
	_ prepress.PrinterRepository = (*GormPrinterRepository)(nil)
	_ prepress.CurveRepository   = (*GormCurveRepository)(nil)
	_ prepress.ProfileRepository = (*GormProfileRepository)(nil)
)
