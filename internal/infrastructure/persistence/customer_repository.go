package persistence

import (
	"context"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errCustomerNotFound = shared.NotFound("Customer")

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errCustomerNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple customers by their IDs
func (r *GormCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Customer, error) {
	if len(ids) == 0 {
		return []partner.Customer{}, nil
	}
	var customerModels []models.CustomerModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return customersToDomain(customerModels), nil
}

// FindByDocument finds a customer by CNPJ/CPF digits
func (r *GormCustomerRepository) FindByDocument(ctx context.Context, document string) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := first(conn(ctx, r.db).Where("document = ?", document), &model, errCustomerNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	query, err := r.applyFilter(conn(ctx, r.db).Model(&models.CustomerModel{}), filter)
	if err != nil {
		return nil, err
	}
	var customerModels []models.CustomerModel
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return customersToDomain(customerModels), nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&models.CustomerModel{}), filter))
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return saveVersioned(conn(ctx, r.db), models.CustomerModelFromDomain(customer), customer)
}

// Delete deletes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.CustomerModel{}, id, errCustomerNotFound)
}

// ExistsByDocument checks whether a customer with the document exists
func (r *GormCustomerRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.CustomerModel{}).Where("document = ?", document))
}

// CountByTransport counts customers whose default carrier is transportID
func (r *GormCustomerRepository) CountByTransport(ctx context.Context, transportID uuid.UUID) (int64, error) {
	return count(conn(ctx, r.db).Model(&models.CustomerModel{}).Where("transport_id = ?", transportID))
}

func (r *GormCustomerRepository) applyFilter(query *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	return paginate(r.applyFilterWithoutPagination(query, filter), filter, CustomerSortFields, "name")
}

func (r *GormCustomerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name", "trade_name", "document", "email", "city")

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "city":
			query = query.Where("city = ?", value)
		case "state":
			query = query.Where("state = ?", value)
		case "transport_id":
			query = query.Where("transport_id = ?", value)
		}
	}
	return query
}

func customersToDomain(customerModels []models.CustomerModel) []partner.Customer {
	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)

// GormTransportRepository implements TransportRepository using GORM
type GormTransportRepository struct {
	db *gorm.DB
}

var errTransportNotFound = shared.NotFound("Transport")

func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{db: db}
}

func (r *GormTransportRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Transport, error) {
	var model models.TransportModel
	if err := first(conn(ctx, r.db).Where("id = ?", id), &model, errTransportNotFound); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormTransportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Transport, error) {
	query, err := paginate(r.scope(conn(ctx, r.db).Model(&models.TransportModel{}), filter), filter, TransportSortFields, "name")
	if err != nil {
		return nil, err
	}
	var transportModels []models.TransportModel
	if err := query.Find(&transportModels).Error; err != nil {
		return nil, err
	}
	transports := make([]partner.Transport, len(transportModels))
	for i, model := range transportModels {
		transports[i] = *model.ToDomain()
	}
	return transports, nil
}

func (r *GormTransportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return count(r.scope(conn(ctx, r.db).Model(&models.TransportModel{}), filter))
}

func (r *GormTransportRepository) Save(ctx context.Context, transport *partner.Transport) error {
	return saveVersioned(conn(ctx, r.db), models.TransportModelFromDomain(transport), transport)
}

func (r *GormTransportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &models.TransportModel{}, id, errTransportNotFound)
}

func (r *GormTransportRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.TransportModel{}).Where("LOWER(name) = LOWER(?)", name))
}

func (r *GormTransportRepository) scope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "name", "document", "email")
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}
	return query
}

var _ partner.TransportRepository = (*GormTransportRepository)(nil)
