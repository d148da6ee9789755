package tooling

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DieCutBlock (forma) is a cutting and creasing tool kept in stock for a
// customer and reused across service orders
type DieCutBlock struct {
	shared.BaseAggregateRoot
	Code         string
	CustomerID   uuid.UUID
	Description  string
	Origin       pricing.DieCutOrigin
	WidthMM      decimal.Decimal
	HeightMM     decimal.Decimal
	LinearMeters decimal.Decimal
	Location     string // shelf/rack where the block is stored
	Notes        string
}

// DieCutBlockSpec carries the measurable attributes of a block
type DieCutBlockSpec struct {
	Description  string
	Origin       pricing.DieCutOrigin
	WidthMM      decimal.Decimal
	HeightMM     decimal.Decimal
	LinearMeters decimal.Decimal
	Location     string
	Notes        string
}

// NewDieCutBlock registers a block for a customer
func NewDieCutBlock(code string, customerID uuid.UUID, spec DieCutBlockSpec) (*DieCutBlock, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Die-cut block code cannot be empty")
	}
	if len(code) > 40 {
		return nil, shared.NewDomainError("INVALID_CODE", "Die-cut block code cannot exceed 40 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Die-cut block must belong to a customer")
	}
	b := &DieCutBlock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		CustomerID:        customerID,
	}
	if err := b.apply(spec); err != nil {
		return nil, err
	}
	return b, nil
}

// Update replaces the block attributes
func (b *DieCutBlock) Update(spec DieCutBlockSpec) error {
	if err := b.apply(spec); err != nil {
		return err
	}
	b.Touch()
	b.IncrementVersion()
	return nil
}

// AreaM2 is the block area in square metres
func (b *DieCutBlock) AreaM2() decimal.Decimal {
	return pricing.DieCutArea(b.WidthMM, b.HeightMM)
}

// Quote builds a pricing input for producing quantity copies of the block
func (b *DieCutBlock) Quote(quantity int) pricing.DieCutQuote {
	return pricing.DieCutQuote{
		Origin:       b.Origin,
		WidthMM:      b.WidthMM,
		HeightMM:     b.HeightMM,
		LinearMeters: b.LinearMeters,
		Quantity:     quantity,
	}
}

func (b *DieCutBlock) apply(s DieCutBlockSpec) error {
	if !s.Origin.IsValid() {
		return shared.NewDomainError("INVALID_ORIGIN", "Origin must be national or imported")
	}
	if !s.WidthMM.IsPositive() || !s.HeightMM.IsPositive() {
		return shared.NewDomainError("INVALID_DIMENSIONS", "Width and height must be greater than zero")
	}
	if s.LinearMeters.IsNegative() {
		return shared.NewDomainError("INVALID_LINEAR_METERS", "Linear meters cannot be negative")
	}
	b.Description = strings.TrimSpace(s.Description)
	b.Origin = s.Origin
	b.WidthMM = s.WidthMM
	b.HeightMM = s.HeightMM
	b.LinearMeters = s.LinearMeters
	b.Location = strings.TrimSpace(s.Location)
	b.Notes = s.Notes
	return nil
}

// DieCutBlockRepository defines the interface for die-cut block persistence
type DieCutBlockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DieCutBlock, error)
	// FindAll supports the filter keys customer_id and origin
	FindAll(ctx context.Context, filter shared.Filter) ([]DieCutBlock, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, block *DieCutBlock) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}
