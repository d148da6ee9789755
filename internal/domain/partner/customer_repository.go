package partner

import (
	"context"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Customer, error)
	FindByDocument(ctx context.Context, document string) (*Customer, error)

	// FindAll finds all customers matching the filter.
	// Supported filter keys: active (bool), city, state, transport_id.
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByDocument(ctx context.Context, document string) (bool, error)
	CountByTransport(ctx context.Context, transportID uuid.UUID) (int64, error)
}
