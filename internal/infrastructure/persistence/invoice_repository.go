package persistence

import (
	"context"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errInvoiceNotFound = shared.NotFound("Invoice")

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice with its items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	query := conn(ctx, r.db).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id)
	if err := first(query, &model, errInvoiceNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds invoices matching the filter, items included
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.InvoiceModel{}), filter), filter, InvoiceSortFields, "number")
	if err != nil {
		return nil, err
	}
	var invoiceModels []models.InvoiceModel
	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.InvoiceModel{}), filter))
}

// Save creates or updates an invoice. Items are replaced as a whole.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := saveVersioned(tx, model, invoice, "Items"); err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", model.ID).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if len(model.Items) == 0 {
			return nil
		}
		return tx.Create(&model.Items).Error
	})
}

// NextNumber allocates the next invoice number
func (r *GormInvoiceRepository) NextNumber(ctx context.Context) (int64, error) {
	return nextNumber(conn(ctx, r.db), models.InvoiceModel{}.TableName())
}

func (r *GormInvoiceRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "notes", "CAST(number AS TEXT)")
	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
