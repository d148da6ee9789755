package tooling

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/google/uuid"
)

// CustomerFinder loads the owner of a block
type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error)
}

// BlockReferenceCounter counts the service orders that use a block
type BlockReferenceCounter interface {
	CountByDieCutBlock(ctx context.Context, blockID uuid.UUID) (int64, error)
}

// DieCutBlockService handles the die-cut block stock
type DieCutBlockService struct {
	blockRepo tooling.DieCutBlockRepository
	customers CustomerFinder
	orders    BlockReferenceCounter
	prices    pricing.PriceTable
}

// NewDieCutBlockService creates a new DieCutBlockService
func NewDieCutBlockService(
	blockRepo tooling.DieCutBlockRepository,
	customers CustomerFinder,
	orders BlockReferenceCounter,
	prices pricing.PriceTable,
) *DieCutBlockService {
	return &DieCutBlockService{
		blockRepo: blockRepo,
		customers: customers,
		orders:    orders,
		prices:    prices,
	}
}

// Create registers a block. Codes are unique across customers.
func (s *DieCutBlockService) Create(ctx context.Context, req DieCutBlockRequest) (*DieCutBlockResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	block, err := tooling.NewDieCutBlock(req.Code, req.CustomerID, req.spec())
	if err != nil {
		return nil, err
	}

	exists, err := s.blockRepo.ExistsByCode(ctx, block.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A die-cut block with this code already exists")
	}
	if req.CreatedBy != nil {
		block.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.blockRepo.Save(ctx, block); err != nil {
		return nil, err
	}
	response := ToDieCutBlockResponse(block)
	return &response, nil
}

// GetByID retrieves a block by ID
func (s *DieCutBlockService) GetByID(ctx context.Context, id uuid.UUID) (*DieCutBlockResponse, error) {
	block, err := s.blockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDieCutBlockResponse(block)
	return &response, nil
}

// List retrieves blocks filtered by customer and origin
func (s *DieCutBlockService) List(ctx context.Context, filter DieCutBlockListFilter) ([]DieCutBlockResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.CustomerID != "" {
		id, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "customerId must be a UUID")
		}
		domainFilter.Filters["customer_id"] = id
	}
	if filter.Origin != "" {
		domainFilter.Filters["origin"] = strings.ToLower(filter.Origin)
	}

	blocks, err := s.blockRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.blockRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToDieCutBlockResponses(blocks), total, nil
}

// Update replaces the measurable attributes of a block
func (s *DieCutBlockService) Update(ctx context.Context, id uuid.UUID, req DieCutBlockRequest) (*DieCutBlockResponse, error) {
	block, err := s.blockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := block.Update(req.spec()); err != nil {
		return nil, err
	}
	if err := s.blockRepo.Save(ctx, block); err != nil {
		return nil, err
	}
	response := ToDieCutBlockResponse(block)
	return &response, nil
}

// Delete removes a block no service order uses
func (s *DieCutBlockService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.blockRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if s.orders != nil {
		n, err := s.orders.CountByDieCutBlock(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return shared.InUse("Die-cut block", "service orders")
		}
	}
	return s.blockRepo.Delete(ctx, id)
}

// Quote prices quantity copies of a stored block with the current table
func (s *DieCutBlockService) Quote(ctx context.Context, id uuid.UUID, quantity int) (*DieCutBlockQuoteResponse, error) {
	block, err := s.blockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q := block.Quote(quantity)
	amount, err := s.prices.QuoteDieCut(q)
	if err != nil {
		return nil, err
	}
	return &DieCutBlockQuoteResponse{
		BlockID:      block.ID,
		Quantity:     quantity,
		AreaM2:       block.AreaM2(),
		LinearMeters: pricing.DieCutLinearMeters(q),
		Amount:       amount,
	}, nil
}
