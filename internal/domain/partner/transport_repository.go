package partner

import (
	"context"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransportRepository defines the interface for carrier persistence
type TransportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transport, error)
	// FindAll supports the filter key active (bool)
	FindAll(ctx context.Context, filter shared.Filter) ([]Transport, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, transport *Transport) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
