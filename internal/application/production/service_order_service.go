package production

import (
	"context"
	"fmt"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/google/uuid"
)

// CustomerFinder loads the customer of an order
type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error)
}

// PrinterFinder loads the press an order is prepared for
type PrinterFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error)
}

// ProfileFinder loads the profile an order is prepared with
type ProfileFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error)
}

// TransportFinder loads the carrier of an order
type TransportFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Transport, error)
}

// BlockFinder loads a stored die-cut block
type BlockFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tooling.DieCutBlock, error)
}

// References groups the lookups used to validate the links of an order
type References struct {
	Customers  CustomerFinder
	Printers   PrinterFinder
	Profiles   ProfileFinder
	Transports TransportFinder
	Blocks     BlockFinder
}

// ServiceOrderService handles service orders and replacements
type ServiceOrderService struct {
	orderRepo production.ServiceOrderRepository
	refs      References
	prices    pricing.PriceTable
	events    shared.EventPublisher
}

// NewServiceOrderService creates a new ServiceOrderService
func NewServiceOrderService(
	orderRepo production.ServiceOrderRepository,
	refs References,
	prices pricing.PriceTable,
	events shared.EventPublisher,
) *ServiceOrderService {
	return &ServiceOrderService{
		orderRepo: orderRepo,
		refs:      refs,
		prices:    prices,
		events:    events,
	}
}

// Create allocates the next number and stores a priced pending order
func (s *ServiceOrderService) Create(ctx context.Context, req ServiceOrderRequest) (*ServiceOrderResponse, error) {
	customer, err := s.refs.Customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, shared.NewDomainError("INACTIVE_CUSTOMER", "Customer is inactive and cannot receive new orders")
	}

	spec, err := req.spec()
	if err != nil {
		return nil, err
	}
	if err := s.resolveBlock(ctx, customer.ID, spec.DieCut); err != nil {
		return nil, err
	}

	transportID := req.TransportID
	if transportID == nil {
		transportID = customer.TransportID
	}
	printerID, profileID, err := s.resolveReferences(ctx, customer.ID, req.PrinterID, req.ProfileID, transportID)
	if err != nil {
		return nil, err
	}

	number, err := s.orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	order, err := production.NewServiceOrder(number, customer.ID, spec)
	if err != nil {
		return nil, err
	}
	if err := order.SetReferences(printerID, profileID, transportID); err != nil {
		return nil, err
	}
	if err := order.Reprice(s.prices); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		order.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, order); err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *ServiceOrderService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// GetByNumber retrieves an order by its sequential number
func (s *ServiceOrderService) GetByNumber(ctx context.Context, number int64) (*ServiceOrderResponse, error) {
	order, err := s.orderRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *ServiceOrderService) List(ctx context.Context, filter ServiceOrderListFilter) ([]ServiceOrderResponse, int64, error) {
	domainFilter, err := filter.toDomain()
	if err != nil {
		return nil, 0, err
	}
	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToServiceOrderResponses(orders), total, nil
}

// Summary totals every order matching the filter, across all pages.
// Cancelled orders are left out.
func (s *ServiceOrderService) Summary(ctx context.Context, filter ServiceOrderListFilter) (*SummaryResponse, error) {
	domainFilter, err := filter.toDomain()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAllUnpaginated(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.Status != production.StatusCancelled {
			kept = append(kept, o)
		}
	}
	summary := ToSummaryResponse(pricing.Aggregate(lineTotals(kept)))
	return &summary, nil
}

// Update replaces the content of a pending order and reprices it
func (s *ServiceOrderService) Update(ctx context.Context, id uuid.UUID, req ServiceOrderRequest) (*ServiceOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spec, err := req.spec()
	if err != nil {
		return nil, err
	}
	if err := s.resolveBlock(ctx, order.CustomerID, spec.DieCut); err != nil {
		return nil, err
	}
	printerID, profileID, err := s.resolveReferences(ctx, order.CustomerID, req.PrinterID, req.ProfileID, req.TransportID)
	if err != nil {
		return nil, err
	}

	if err := order.Update(spec); err != nil {
		return nil, err
	}
	if err := order.SetReferences(printerID, profileID, req.TransportID); err != nil {
		return nil, err
	}
	if err := order.Reprice(s.prices); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// ChangeStatus moves an order to another status
func (s *ServiceOrderService) ChangeStatus(ctx context.Context, id uuid.UUID, req StatusRequest) (*ServiceOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.ChangeStatus(production.Status(req.Status), req.Reason); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, order); err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// Delete removes a pending order that is not on an invoice
func (s *ServiceOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.CanDelete() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Only pending orders can be deleted (order %d is %s)", order.Number, order.Status))
	}
	return s.orderRepo.Delete(ctx, id)
}

// CreateReplacement opens a reposição of a finished or delivered order.
// The new order is priced like any other and counted as a loss.
func (s *ServiceOrderService) CreateReplacement(ctx context.Context, originalID uuid.UUID, req ReplacementRequest) (*ServiceOrderResponse, error) {
	original, err := s.orderRepo.FindByID(ctx, originalID)
	if err != nil {
		return nil, err
	}
	if original.IsReplacement() {
		// replace the root order so losses stay attributed to one original
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Order %d is already a replacement of order %d", original.Number, original.Replacement.OriginalNumber))
	}

	number, err := s.orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	order, err := production.NewReplacementOrder(number, original, req.Reason, production.ResponsibleParty(req.Responsible))
	if err != nil {
		return nil, err
	}
	if err := order.Reprice(s.prices); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		order.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, order); err != nil {
		return nil, err
	}
	response := ToServiceOrderResponse(order)
	return &response, nil
}

// resolveReferences checks that the printer belongs to the customer, that
// the profile belongs to the printer and that the carrier exists. A profile
// without a printer selects the profile's printer.
func (s *ServiceOrderService) resolveReferences(
	ctx context.Context,
	customerID uuid.UUID,
	printerID, profileID, transportID *uuid.UUID,
) (*uuid.UUID, *uuid.UUID, error) {
	if profileID != nil {
		profile, err := s.refs.Profiles.FindByID(ctx, *profileID)
		if err != nil {
			return nil, nil, err
		}
		if printerID == nil {
			id := profile.PrinterID
			printerID = &id
		} else if *printerID != profile.PrinterID {
			return nil, nil, shared.NewDomainError("INVALID_PROFILE", "Profile does not belong to the selected printer")
		}
	}
	if printerID != nil {
		printer, err := s.refs.Printers.FindByID(ctx, *printerID)
		if err != nil {
			return nil, nil, err
		}
		if !printer.BelongsTo(customerID) {
			return nil, nil, shared.NewDomainError("INVALID_PRINTER", "Printer does not belong to the customer")
		}
	}
	if transportID != nil {
		if _, err := s.refs.Transports.FindByID(ctx, *transportID); err != nil {
			return nil, nil, err
		}
	}
	return printerID, profileID, nil
}

// resolveBlock copies the stored block dimensions into die-cut details
// that reference a block
func (s *ServiceOrderService) resolveBlock(ctx context.Context, customerID uuid.UUID, details *production.DieCutBlockDetails) error {
	if details == nil || details.DieCutBlockID == nil {
		return nil
	}
	block, err := s.refs.Blocks.FindByID(ctx, *details.DieCutBlockID)
	if err != nil {
		return err
	}
	if block.CustomerID != customerID {
		return shared.NewDomainError("INVALID_DIE_CUT_BLOCK", "Die-cut block belongs to another customer")
	}
	details.Origin = block.Origin
	details.WidthMM = block.WidthMM
	details.HeightMM = block.HeightMM
	details.LinearMeters = block.LinearMeters
	return nil
}

func (f ServiceOrderListFilter) toDomain() (shared.Filter, error) {
	domainFilter := f.Query.Filter()
	if f.CustomerID != "" {
		id, err := uuid.Parse(f.CustomerID)
		if err != nil {
			return domainFilter, shared.NewDomainError("INVALID_FILTER", "customerId must be a UUID")
		}
		domainFilter.Filters[production.FilterCustomerID] = id
	}
	if f.Status != "" {
		domainFilter.Filters[production.FilterStatus] = f.Status
	}
	if f.ProductType != "" {
		domainFilter.Filters[production.FilterProductType] = f.ProductType
	}
	if f.Replacement != nil {
		domainFilter.Filters[production.FilterReplacement] = *f.Replacement
	}
	if f.Invoiced != nil {
		domainFilter.Filters[production.FilterInvoiced] = *f.Invoiced
	}
	return f.Period.Apply(domainFilter, production.FilterFrom, production.FilterTo)
}

func lineTotals(orders []production.ServiceOrder) []pricing.LineTotal {
	lines := make([]pricing.LineTotal, len(orders))
	for i := range orders {
		lines[i] = orders[i].LineTotal()
	}
	return lines
}
