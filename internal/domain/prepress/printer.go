package prepress

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxPrinterColors is the largest number of print stations a press may have
const MaxPrinterColors = 12

// Printer is a customer's printing press. Profiles and service orders
// are prepared for a specific printer.
type Printer struct {
	shared.BaseAggregateRoot
	CustomerID   uuid.UUID
	Name         string
	Manufacturer string
	Model        string
	Colors       int
	MaxWidthMM   int
	Notes        string
}

// NewPrinter creates a printer for a customer
func NewPrinter(customerID uuid.UUID, name string, colors int) (*Printer, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Printer must belong to a customer")
	}
	p := &Printer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
	}
	if err := p.setCore(name, colors); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the printer data. The owning customer cannot change.
func (p *Printer) Update(name, manufacturer, model string, colors, maxWidthMM int, notes string) error {
	if err := p.setCore(name, colors); err != nil {
		return err
	}
	if maxWidthMM < 0 {
		return shared.NewDomainError("INVALID_WIDTH", "Maximum print width cannot be negative")
	}
	p.Manufacturer = strings.TrimSpace(manufacturer)
	p.Model = strings.TrimSpace(model)
	p.MaxWidthMM = maxWidthMM
	p.Notes = notes
	p.Touch()
	p.IncrementVersion()
	return nil
}

// BelongsTo reports whether the printer is owned by the customer
func (p *Printer) BelongsTo(customerID uuid.UUID) bool {
	return p.CustomerID == customerID
}

func (p *Printer) setCore(name string, colors int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Printer name cannot be empty")
	}
	if len(name) > 120 {
		return shared.NewDomainError("INVALID_NAME", "Printer name cannot exceed 120 characters")
	}
	if colors < 1 || colors > MaxPrinterColors {
		return shared.NewDomainError("INVALID_COLORS", "Printer colors must be between 1 and 12")
	}
	p.Name = name
	p.Colors = colors
	return nil
}
