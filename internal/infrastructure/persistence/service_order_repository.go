package persistence

import (
	"context"
	"fmt"

	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errServiceOrderNotFound = shared.NotFound("Service order")

// GormServiceOrderRepository implements ServiceOrderRepository using GORM
type GormServiceOrderRepository struct {
	db *gorm.DB
}

// NewGormServiceOrderRepository creates a new GormServiceOrderRepository
func NewGormServiceOrderRepository(db *gorm.DB) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{db: db}
}

// FindByID finds a service order by its ID
func (r *GormServiceOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ServiceOrder, error) {
	var model models.ServiceOrderModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errServiceOrderNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a service order by its sequential number
func (r *GormServiceOrderRepository) FindByNumber(ctx context.Context, number int64) (*production.ServiceOrder, error) {
	var model models.ServiceOrderModel
	if err := first(conn(ctx, r.db).Where("number = ?", number), &model, errServiceOrderNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds service orders by ids, ordered by number
func (r *GormServiceOrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]production.ServiceOrder, error) {
	if len(ids) == 0 {
		return []production.ServiceOrder{}, nil
	}
	var orderModels []models.ServiceOrderModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order("number ASC").Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return ordersToDomain(orderModels), nil
}

// FindAll finds service orders matching the filter
func (r *GormServiceOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ServiceOrder, error) {
	query, err := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&models.ServiceOrderModel{}), filter)
	if err != nil {
		return nil, err
	}
	query, err = paginate(query, filter, ServiceOrderSortFields, "number")
	if err != nil {
		return nil, err
	}
	var orderModels []models.ServiceOrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return ordersToDomain(orderModels), nil
}

// FindAllUnpaginated returns every order matching the filter ordered by number
func (r *GormServiceOrderRepository) FindAllUnpaginated(ctx context.Context, filter shared.Filter) ([]production.ServiceOrder, error) {
	query, err := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&models.ServiceOrderModel{}), filter)
	if err != nil {
		return nil, err
	}
	var orderModels []models.ServiceOrderModel
	if err := query.Order("number ASC").Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return ordersToDomain(orderModels), nil
}

// Count counts service orders matching the filter
func (r *GormServiceOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	query, err := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&models.ServiceOrderModel{}), filter)
	if err != nil {
		return 0, err
	}
	return count(query)
}

// Save creates or updates a service order
func (r *GormServiceOrderRepository) Save(ctx context.Context, order *production.ServiceOrder) error {
	return saveVersioned(conn(ctx, r.db), models.ServiceOrderModelFromDomain(order), order)
}

// SaveAll saves several orders in one transaction
func (r *GormServiceOrderRepository) SaveAll(ctx context.Context, orders []*production.ServiceOrder) error {
	if len(orders) == 0 {
		return nil
	}
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := saveVersioned(tx, models.ServiceOrderModelFromDomain(o), o); err != nil {
				return fmt.Errorf("save service order %d: %w", o.Number, err)
			}
		}
		return nil
	})
}

// Delete deletes a service order
func (r *GormServiceOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.ServiceOrderModel{}, id, errServiceOrderNotFound)
}

// NextNumber allocates the next order number
func (r *GormServiceOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	return nextNumber(conn(ctx, r.db), models.ServiceOrderModel{}.TableName())
}

func (r *GormServiceOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID)
}

func (r *GormServiceOrderRepository) CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "printer_id = ?", printerID)
}

func (r *GormServiceOrderRepository) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "profile_id = ?", profileID)
}

func (r *GormServiceOrderRepository) CountByTransport(ctx context.Context, transportID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "transport_id = ?", transportID)
}

func (r *GormServiceOrderRepository) CountByDieCutBlock(ctx context.Context, blockID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "die_cut_block_id = ?", blockID)
}

func (r *GormServiceOrderRepository) countWhere(ctx context.Context, cond string, arg any) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.ServiceOrderModel{}).Where(cond, arg))
}

func (r *GormServiceOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	query = applySearch(query, filter.Search, "description", "notes", "CAST(number AS TEXT)")

	for key, value := range filter.Filters {
		switch key {
		case production.FilterCustomerID:
			query = query.Where("customer_id = ?", value)
		case production.FilterStatus:
			if statuses, ok := value.([]production.Status); ok {
				query = query.Where("status IN ?", statuses)
			} else {
				query = query.Where("status = ?", value)
			}
		case production.FilterProductType:
			query = query.Where("product_type = ?", value)
		case production.FilterReplacement:
			query = query.Where("is_replacement = ?", value)
		case production.FilterInvoiced:
			invoiced, ok := value.(bool)
			if !ok {
				return nil, errInvalidFilter
			}
			if invoiced {
				query = query.Where("invoice_id IS NOT NULL")
			} else {
				query = query.Where("invoice_id IS NULL")
			}
		case production.FilterInvoiceID:
			query = query.Where("invoice_id = ?", value)
		case production.FilterFrom:
			query = query.Where("created_at >= ?", value)
		case production.FilterTo:
			query = query.Where("created_at < ?", value)
		}
	}
	return query, nil
}

func ordersToDomain(orderModels []models.ServiceOrderModel) []production.ServiceOrder {
	orders := make([]production.ServiceOrder, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders
}

var _ production.ServiceOrderRepository = (*GormServiceOrderRepository)(nil)
