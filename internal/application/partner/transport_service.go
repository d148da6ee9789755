package partner

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransportReferenceCounter counts the records that reference a carrier
type TransportReferenceCounter interface {
	CountByTransport(ctx context.Context, transportID uuid.UUID) (int64, error)
}

// TransportService handles carrier maintenance
type TransportService struct {
	transportRepo partner.TransportRepository
	customers     TransportReferenceCounter
	orders        TransportReferenceCounter
}

// NewTransportService creates a new TransportService
func NewTransportService(transportRepo partner.TransportRepository, customers, orders TransportReferenceCounter) *TransportService {
	return &TransportService{
		transportRepo: transportRepo,
		customers:     customers,
		orders:        orders,
	}
}

// Create registers a carrier. Names are unique.
func (s *TransportService) Create(ctx context.Context, req TransportRequest) (*TransportResponse, error) {
	transport, err := partner.NewTransport(req.Name, req.Document)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, transport.Name); err != nil {
		return nil, err
	}
	if err := transport.Update(req.Name, req.Document, req.Phone, req.Email, req.Notes); err != nil {
		return nil, err
	}
	if req.Active != nil {
		transport.SetActive(*req.Active)
	}
	if req.CreatedBy != nil {
		transport.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.transportRepo.Save(ctx, transport); err != nil {
		return nil, err
	}
	response := ToTransportResponse(transport)
	return &response, nil
}

// GetByID retrieves a carrier by ID
func (s *TransportService) GetByID(ctx context.Context, id uuid.UUID) (*TransportResponse, error) {
	transport, err := s.transportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransportResponse(transport)
	return &response, nil
}

// List retrieves carriers with filtering and pagination
func (s *TransportService) List(ctx context.Context, filter TransportListFilter) ([]TransportResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	transports, err := s.transportRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transportRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToTransportResponses(transports), total, nil
}

// Update replaces the carrier data
func (s *TransportService) Update(ctx context.Context, id uuid.UUID, req TransportRequest) (*TransportResponse, error) {
	transport, err := s.transportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(req.Name), transport.Name) {
		if err := s.ensureUniqueName(ctx, req.Name); err != nil {
			return nil, err
		}
	}
	if err := transport.Update(req.Name, req.Document, req.Phone, req.Email, req.Notes); err != nil {
		return nil, err
	}
	if req.Active != nil {
		transport.SetActive(*req.Active)
	}

	if err := s.transportRepo.Save(ctx, transport); err != nil {
		return nil, err
	}
	response := ToTransportResponse(transport)
	return &response, nil
}

// Delete removes a carrier that no customer or order uses
func (s *TransportService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.transportRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if s.customers != nil {
		n, err := s.customers.CountByTransport(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return shared.InUse("Transport", "customers")
		}
	}
	if s.orders != nil {
		n, err := s.orders.CountByTransport(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return shared.InUse("Transport", "service orders")
		}
	}
	return s.transportRepo.Delete(ctx, id)
}

func (s *TransportService) ensureUniqueName(ctx context.Context, name string) error {
	exists, err := s.transportRepo.ExistsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A transport with this name already exists")
	}
	return nil
}
