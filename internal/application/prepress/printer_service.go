package prepress

import (
	"context"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerFinder loads the customer a printer belongs to
type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error)
}

// PrinterReferenceCounter counts the records that use a printer
type PrinterReferenceCounter interface {
	CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error)
}

// PrinterService handles customer presses
type PrinterService struct {
	printerRepo prepress.PrinterRepository
	customers   CustomerFinder
	profiles    PrinterReferenceCounter
	orders      PrinterReferenceCounter
}

// NewPrinterService creates a new PrinterService
func NewPrinterService(
	printerRepo prepress.PrinterRepository,
	customers CustomerFinder,
	profiles, orders PrinterReferenceCounter,
) *PrinterService {
	return &PrinterService{
		printerRepo: printerRepo,
		customers:   customers,
		profiles:    profiles,
		orders:      orders,
	}
}

// Create registers a press for an existing customer
func (s *PrinterService) Create(ctx context.Context, req PrinterRequest) (*PrinterResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	printer, err := prepress.NewPrinter(req.CustomerID, req.Name, req.Colors)
	if err != nil {
		return nil, err
	}
	if err := printer.Update(req.Name, req.Manufacturer, req.Model, req.Colors, req.MaxWidthMM, req.Notes); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		printer.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.printerRepo.Save(ctx, printer); err != nil {
		return nil, err
	}
	response := ToPrinterResponse(printer)
	return &response, nil
}

// GetByID retrieves a printer by ID
func (s *PrinterService) GetByID(ctx context.Context, id uuid.UUID) (*PrinterResponse, error) {
	printer, err := s.printerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPrinterResponse(printer)
	return &response, nil
}

// List retrieves printers, optionally of one customer
func (s *PrinterService) List(ctx context.Context, filter PrinterListFilter) ([]PrinterResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.CustomerID != "" {
		id, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "customerId must be a UUID")
		}
		domainFilter.Filters["customer_id"] = id
	}

	printers, err := s.printerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.printerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPrinterResponses(printers), total, nil
}

// Update replaces the printer data; the owner does not change
func (s *PrinterService) Update(ctx context.Context, id uuid.UUID, req PrinterRequest) (*PrinterResponse, error) {
	printer, err := s.printerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := printer.Update(req.Name, req.Manufacturer, req.Model, req.Colors, req.MaxWidthMM, req.Notes); err != nil {
		return nil, err
	}
	if err := s.printerRepo.Save(ctx, printer); err != nil {
		return nil, err
	}
	response := ToPrinterResponse(printer)
	return &response, nil
}

// Delete removes a printer without profiles or service orders
func (s *PrinterService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.printerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := ensureUnreferenced(ctx, s.profiles, id, "Printer", "profiles"); err != nil {
		return err
	}
	if err := ensureUnreferenced(ctx, s.orders, id, "Printer", "service orders"); err != nil {
		return err
	}
	return s.printerRepo.Delete(ctx, id)
}

func ensureUnreferenced(ctx context.Context, counter PrinterReferenceCounter, id uuid.UUID, resource, referrer string) error {
	if counter == nil {
		return nil
	}
	n, err := counter.CountByPrinter(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return shared.InUse(resource, referrer)
	}
	return nil
}
