package partner

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CustomerReferenceCounter counts the records of one kind that reference a customer
type CustomerReferenceCounter interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo  partner.CustomerRepository
	transportRepo partner.TransportRepository
	orders        CustomerReferenceCounter
	printers      CustomerReferenceCounter
	blocks        CustomerReferenceCounter
	events        shared.EventPublisher
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	transportRepo partner.TransportRepository,
	orders, printers, blocks CustomerReferenceCounter,
	events shared.EventPublisher,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		transportRepo: transportRepo,
		orders:        orders,
		printers:      printers,
		blocks:        blocks,
		events:        events,
	}
}

// Create creates a new customer. The document must be unique.
func (s *CustomerService) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Document)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByDocument(ctx, customer.Document)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this document already exists")
	}

	if err := s.apply(ctx, customer, req); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		customer.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	if filter.City != "" {
		domainFilter.Filters["city"] = filter.City
	}
	if filter.State != "" {
		domainFilter.Filters["state"] = strings.ToUpper(filter.State)
	}
	if filter.TransportID != "" {
		id, err := uuid.Parse(filter.TransportID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "transportId must be a UUID")
		}
		domainFilter.Filters["transport_id"] = id
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCustomerResponses(customers), total, nil
}

// Update replaces the customer data
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	document := valueobject.OnlyDigits(req.Document)
	if document != customer.Document {
		exists, err := s.customerRepo.ExistsByDocument(ctx, document)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this document already exists")
		}
	}

	if err := s.apply(ctx, customer, req); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Activate re-enables a customer
func (s *CustomerService) Activate(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate blocks new orders for a customer
func (s *CustomerService) Deactivate(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *CustomerService) setActive(ctx context.Context, id uuid.UUID, active bool) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		err = customer.Activate()
	} else {
		err = customer.Deactivate()
	}
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer that nothing references
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	checks := []struct {
		counter  CustomerReferenceCounter
		referrer string
	}{
		{s.orders, "service orders"},
		{s.printers, "printers"},
		{s.blocks, "die-cut blocks"},
	}
	for _, check := range checks {
		if check.counter == nil {
			continue
		}
		n, err := check.counter.CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return shared.InUse("Customer", check.referrer)
		}
	}
	return s.customerRepo.Delete(ctx, id)
}

// apply copies the request onto the customer, checking the carrier exists
func (s *CustomerService) apply(ctx context.Context, customer *partner.Customer, req CustomerRequest) error {
	if err := customer.Update(req.Name, req.TradeName, req.Document, req.StateRegistration); err != nil {
		return err
	}
	if err := customer.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
		return err
	}
	addr, err := req.Address.toValue()
	if err != nil {
		return err
	}
	customer.SetAddress(addr)

	if req.TransportID != nil {
		if _, err := s.transportRepo.FindByID(ctx, *req.TransportID); err != nil {
			return err
		}
	}
	customer.SetTransport(req.TransportID)
	customer.SetNotes(req.Notes)
	return nil
}
