package production

import (
	"context"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter keys understood by ServiceOrderRepository.FindAll
const (
	FilterCustomerID  = "customer_id"
	FilterStatus      = "status"
	FilterProductType = "product_type"
	FilterReplacement = "replacement" // bool
	FilterInvoiced    = "invoiced"    // bool
	FilterInvoiceID   = "invoice_id"
	FilterFrom        = "from" // time.Time, inclusive, on created_at
	FilterTo          = "to"   // time.Time, exclusive, on created_at
)

// ServiceOrderRepository defines the interface for service order persistence
type ServiceOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceOrder, error)
	FindByNumber(ctx context.Context, number int64) (*ServiceOrder, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ServiceOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ServiceOrder, error)
	// FindAllUnpaginated returns every order matching the filter, ignoring
	// page and limit. Used by reports and exports.
	FindAllUnpaginated(ctx context.Context, filter shared.Filter) ([]ServiceOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *ServiceOrder) error
	SaveAll(ctx context.Context, orders []*ServiceOrder) error
	Delete(ctx context.Context, id uuid.UUID) error

	// NextNumber allocates the next sequential order number
	NextNumber(ctx context.Context) (int64, error)

	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error)
	CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
	CountByTransport(ctx context.Context, transportID uuid.UUID) (int64, error)
	CountByDieCutBlock(ctx context.Context, blockID uuid.UUID) (int64, error)
}
