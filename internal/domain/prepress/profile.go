package prepress

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DotType is the screening dot shape
type DotType string

const (
	DotRound      DotType = "round"
	DotElliptical DotType = "elliptical"
	DotSquare     DotType = "square"
	DotHybrid     DotType = "hybrid"
)

func (d DotType) IsValid() bool {
	switch d {
	case DotRound, DotElliptical, DotSquare, DotHybrid:
		return true
	}
	return false
}

// ProfileColor is one separation of a profile
type ProfileColor struct {
	Color   string     `json:"color"`
	CurveID *uuid.UUID `json:"curve_id,omitempty"`
	Angle   float64    `json:"angle"`
}

// Profile is a saved color/curve/angle/dot-type configuration reused
// across service orders for a given printer
type Profile struct {
	shared.BaseAggregateRoot
	PrinterID uuid.UUID
	Name      string
	Lineature int // lines per inch
	DotType   DotType
	Colors    []ProfileColor
	Notes     string
}

// NewProfile creates a profile for a printer
func NewProfile(printerID uuid.UUID, name string, lineature int, dot DotType, colors []ProfileColor) (*Profile, error) {
	if printerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRINTER", "Profile must belong to a printer")
	}
	p := &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PrinterID:         printerID,
	}
	if err := p.set(name, lineature, dot, colors); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the profile configuration
func (p *Profile) Update(name string, lineature int, dot DotType, colors []ProfileColor, notes string) error {
	if err := p.set(name, lineature, dot, colors); err != nil {
		return err
	}
	p.Notes = notes
	p.Touch()
	p.IncrementVersion()
	return nil
}

// CurveIDs returns the distinct curves referenced by the profile
func (p *Profile) CurveIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(p.Colors))
	for _, c := range p.Colors {
		if c.CurveID == nil {
			continue
		}
		if _, ok := seen[*c.CurveID]; ok {
			continue
		}
		seen[*c.CurveID] = struct{}{}
		ids = append(ids, *c.CurveID)
	}
	return ids
}

func (p *Profile) set(name string, lineature int, dot DotType, colors []ProfileColor) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Profile name cannot be empty")
	}
	if lineature <= 0 {
		return shared.NewDomainError("INVALID_LINEATURE", "Lineature must be greater than zero")
	}
	if !dot.IsValid() {
		return shared.NewDomainError("INVALID_DOT_TYPE", "Dot type must be round, elliptical, square or hybrid")
	}
	if len(colors) == 0 {
		return shared.NewDomainError("INVALID_COLORS", "A profile needs at least one color")
	}
	if len(colors) > MaxPrinterColors {
		return shared.NewDomainError("INVALID_COLORS", "A profile cannot have more than 12 colors")
	}
	for _, c := range colors {
		if strings.TrimSpace(c.Color) == "" {
			return shared.NewDomainError("INVALID_COLORS", "Color name cannot be empty")
		}
		if c.Angle < 0 || c.Angle > 180 {
			return shared.NewDomainError("INVALID_ANGLE", "Screen angle must be between 0 and 180 degrees")
		}
	}
	p.Name = name
	p.Lineature = lineature
	p.DotType = dot
	p.Colors = append([]ProfileColor(nil), colors...)
	return nil
}
