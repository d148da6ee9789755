package persistence

import (
	"context"

	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReportReadModel serves report rows through gorm. It backs the reports
// when the pgx read model is disabled, e.g. on the sqlite dev database.
type GormReportReadModel struct {
	db *gorm.DB
}

// NewGormReportReadModel creates a new GormReportReadModel
func NewGormReportReadModel(db *gorm.DB) *GormReportReadModel {
	return &GormReportReadModel{db: db}
}

// Orders returns the non-cancelled orders created in the period
func (r *GormReportReadModel) Orders(ctx context.Context, filter report.OrderFilter) ([]report.OrderRow, error) {
	query := r.period(ctx, filter.Period)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	return r.rows(ctx, query)
}

// Replacements returns the non-cancelled replacement orders of the period
func (r *GormReportReadModel) Replacements(ctx context.Context, period report.Period) ([]report.OrderRow, error) {
	return r.rows(ctx, r.period(ctx, period).Where("is_replacement = ?", true))
}

func (r *GormReportReadModel) period(ctx context.Context, p report.Period) *gorm.DB {
	return conn(ctx, r.db).Model(&models.ServiceOrderModel{}).
		Where("created_at >= ? AND created_at < ?", p.From, p.End()).
		Where("status <> ?", production.StatusCancelled)
}

func (r *GormReportReadModel) rows(ctx context.Context, query *gorm.DB) ([]report.OrderRow, error) {
	var orderModels []models.ServiceOrderModel
	if err := query.Order("number ASC").Find(&orderModels).Error; err != nil {
		return nil, err
	}
	if len(orderModels) == 0 {
		return []report.OrderRow{}, nil
	}

	names, err := r.customerNames(ctx, orderModels)
	if err != nil {
		return nil, err
	}

	rows := make([]report.OrderRow, len(orderModels))
	for i := range orderModels {
		rows[i] = toOrderRow(orderModels[i].ToDomain(), names[orderModels[i].CustomerID])
	}
	return rows, nil
}

func (r *GormReportReadModel) customerNames(ctx context.Context, orderModels []models.ServiceOrderModel) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(orderModels))
	ids := make([]uuid.UUID, 0, len(orderModels))
	for _, m := range orderModels {
		if _, ok := seen[m.CustomerID]; !ok {
			seen[m.CustomerID] = struct{}{}
			ids = append(ids, m.CustomerID)
		}
	}

	var customers []models.CustomerModel
	if err := conn(ctx, r.db).Select("id", "name").Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names, nil
}

func toOrderRow(o *production.ServiceOrder, customerName string) report.OrderRow {
	row := report.OrderRow{
		ID:           o.ID,
		Number:       o.Number,
		CreatedAt:    o.CreatedAt,
		CustomerID:   o.CustomerID,
		CustomerName: customerName,
		ProductType:  o.ProductType,
		Description:  o.Description,
		Status:       o.Status,
		Price:        o.Price,
		Corrugated:   o.Corrugated,
		DieCut:       o.DieCut,
	}
	if o.Replacement != nil {
		row.IsReplacement = true
		row.ReplacedOrderNumber = o.Replacement.OriginalNumber
		row.ReplacementReason = o.Replacement.Reason
		row.Responsible = o.Replacement.Responsible
	}
	return row
}

var _ report.ReadModel = (*GormReportReadModel)(nil)
