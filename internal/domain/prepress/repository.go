package prepress

import (
	"context"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PrinterRepository defines the interface for printer persistence
type PrinterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Printer, error)
	// FindAll supports the filter key customer_id
	FindAll(ctx context.Context, filter shared.Filter) ([]Printer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, printer *Printer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// CurveRepository defines the interface for curve persistence
type CurveRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Curve, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Curve, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Curve, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, curve *Curve) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	// FindAll supports the filter key printer_id
	FindAll(ctx context.Context, filter shared.Filter) ([]Profile, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByPrinterAndName(ctx context.Context, printerID uuid.UUID, name string) (bool, error)
	CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error)
	CountByCurve(ctx context.Context, curveID uuid.UUID) (int64, error)
}
