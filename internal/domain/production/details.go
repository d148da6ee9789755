package production

import (
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CorrugatedPrinterDetails are the plate data of a cliché corrugado order
type CorrugatedPrinterDetails struct {
	Measures    []pricing.ClicheMeasure `json:"measures"`
	ThicknessMM decimal.Decimal         `json:"thickness_mm"`
	// PricePerCm2 overrides the table rate for this order when set
	PricePerCm2 *decimal.Decimal `json:"price_per_cm2,omitempty"`
}

func (d *CorrugatedPrinterDetails) validate() error {
	if len(d.Measures) == 0 {
		return shared.NewDomainError("INVALID_DETAILS", "At least one cliché measure is required")
	}
	for _, m := range d.Measures {
		if !m.Width.IsPositive() || !m.Height.IsPositive() {
			return shared.NewDomainError("INVALID_DETAILS", "Cliché width and height must be greater than zero")
		}
		if m.Quantity < 0 {
			return shared.NewDomainError("INVALID_DETAILS", "Cliché quantity cannot be negative")
		}
	}
	if d.ThicknessMM.IsNegative() {
		return shared.NewDomainError("INVALID_DETAILS", "Thickness cannot be negative")
	}
	if d.PricePerCm2 != nil && d.PricePerCm2.IsNegative() {
		return shared.NewDomainError("INVALID_DETAILS", "Price per cm² cannot be negative")
	}
	return nil
}

// TotalArea is the plate area of the order in cm²
func (d *CorrugatedPrinterDetails) TotalArea() decimal.Decimal {
	area, err := pricing.TotalMeasuresCliche(d.Measures)
	if err != nil {
		return decimal.Zero
	}
	return area
}

// DieCutBlockDetails are the tool data of a die-cut block order
type DieCutBlockDetails struct {
	DieCutBlockID *uuid.UUID           `json:"die_cut_block_id,omitempty"`
	Origin        pricing.DieCutOrigin `json:"origin"`
	WidthMM       decimal.Decimal      `json:"width_mm"`
	HeightMM      decimal.Decimal      `json:"height_mm"`
	LinearMeters  decimal.Decimal      `json:"linear_meters"`
	Quantity      int                  `json:"quantity"`
}

func (d *DieCutBlockDetails) validate() error {
	if !d.Origin.IsValid() {
		return shared.NewDomainError("INVALID_DETAILS", "Die-cut origin must be national or imported")
	}
	if !d.WidthMM.IsPositive() || !d.HeightMM.IsPositive() {
		return shared.NewDomainError("INVALID_DETAILS", "Die-cut width and height must be greater than zero")
	}
	if d.LinearMeters.IsNegative() {
		return shared.NewDomainError("INVALID_DETAILS", "Linear meters cannot be negative")
	}
	if d.Quantity < 0 {
		return shared.NewDomainError("INVALID_DETAILS", "Quantity cannot be negative")
	}
	return nil
}

// Quote converts the details into a pricing input
func (d *DieCutBlockDetails) Quote() pricing.DieCutQuote {
	return pricing.DieCutQuote{
		Origin:       d.Origin,
		WidthMM:      d.WidthMM,
		HeightMM:     d.HeightMM,
		LinearMeters: d.LinearMeters,
		Quantity:     d.Quantity,
	}
}

// ResponsibleParty is who caused the defect a replacement fixes
type ResponsibleParty string

const (
	ResponsibleCompany  ResponsibleParty = "company"
	ResponsibleCustomer ResponsibleParty = "customer"
	ResponsibleSupplier ResponsibleParty = "supplier"
)

func (r ResponsibleParty) IsValid() bool {
	switch r {
	case ResponsibleCompany, ResponsibleCustomer, ResponsibleSupplier:
		return true
	}
	return false
}

// Label is the human name printed on reports
func (r ResponsibleParty) Label() string {
	switch r {
	case ResponsibleCompany:
		return "Empresa"
	case ResponsibleCustomer:
		return "Cliente"
	case ResponsibleSupplier:
		return "Fornecedor"
	}
	return string(r)
}

// Replacement marks a service order as a reposição of a prior one
type Replacement struct {
	OriginalOrderID uuid.UUID        `json:"original_order_id"`
	OriginalNumber  int64            `json:"original_number"`
	Reason          string           `json:"reason"`
	Responsible     ResponsibleParty `json:"responsible"`
}
