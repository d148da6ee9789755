package prepress

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/google/uuid"
)

// =============================================================================
// Printer DTOs
// =============================================================================

// PrinterRequest is the body of create and update. CustomerID is ignored on update.
type PrinterRequest struct {
	CustomerID   uuid.UUID  `json:"customerId" binding:"required"`
	Name         string     `json:"name" binding:"required,min=1,max=120"`
	Manufacturer string     `json:"manufacturer" binding:"max=100"`
	Model        string     `json:"model" binding:"max=100"`
	Colors       int        `json:"colors" binding:"required,min=1,max=12"`
	MaxWidthMM   int        `json:"maxWidthMm" binding:"min=0"`
	Notes        string     `json:"notes" binding:"max=2000"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// PrinterResponse represents a printer in API responses
type PrinterResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	Name         string     `json:"name"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	Colors       int        `json:"colors"`
	MaxWidthMM   int        `json:"maxWidthMm"`
	Notes        string     `json:"notes"`
	CreatedBy    *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Version      int        `json:"version"`
}

// PrinterListFilter represents filter options for the printer list
type PrinterListFilter struct {
	listing.Query
	CustomerID string `form:"customerId" binding:"omitempty,uuid"`
}

// ToPrinterResponse converts a domain printer to a response DTO
func ToPrinterResponse(p *prepress.Printer) PrinterResponse {
	return PrinterResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Model:        p.Model,
		Colors:       p.Colors,
		MaxWidthMM:   p.MaxWidthMM,
		Notes:        p.Notes,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// ToPrinterResponses converts a slice of printers
func ToPrinterResponses(printers []prepress.Printer) []PrinterResponse {
	out := make([]PrinterResponse, len(printers))
	for i := range printers {
		out[i] = ToPrinterResponse(&printers[i])
	}
	return out
}

// =============================================================================
// Curve DTOs
// =============================================================================

// CurvePointRequest is one input/output pair in percent
type CurvePointRequest struct {
	Input  float64 `json:"input" binding:"min=0,max=100"`
	Output float64 `json:"output" binding:"min=0,max=100"`
}

// CurveRequest is the body of create and update
type CurveRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=100"`
	Description string              `json:"description" binding:"max=500"`
	Points      []CurvePointRequest `json:"points" binding:"required,min=2,dive"`
	CreatedBy   *uuid.UUID          `json:"-"`
}

func (r CurveRequest) points() []prepress.CurvePoint {
	out := make([]prepress.CurvePoint, len(r.Points))
	for i, p := range r.Points {
		out[i] = prepress.CurvePoint{Input: p.Input, Output: p.Output}
	}
	return out
}

// CurveResponse represents a curve in API responses
type CurveResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Points      []prepress.CurvePoint `json:"points"`
	CreatedBy   *uuid.UUID            `json:"createdBy,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Version     int                   `json:"version"`
}

// CurveListFilter represents filter options for the curve list
type CurveListFilter struct {
	listing.Query
}

// ToCurveResponse converts a domain curve to a response DTO
func ToCurveResponse(c *prepress.Curve) CurveResponse {
	return CurveResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Points:      c.Points,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToCurveResponses converts a slice of curves
func ToCurveResponses(curves []prepress.Curve) []CurveResponse {
	out := make([]CurveResponse, len(curves))
	for i := range curves {
		out[i] = ToCurveResponse(&curves[i])
	}
	return out
}

// =============================================================================
// Profile DTOs
// =============================================================================

// ProfileColorRequest is one separation of a profile
type ProfileColorRequest struct {
	Color   string     `json:"color" binding:"required,max=40"`
	CurveID *uuid.UUID `json:"curveId"`
	Angle   float64    `json:"angle" binding:"min=0,max=180"`
}

// ProfileRequest is the body of create and update. PrinterID is ignored on update.
type ProfileRequest struct {
	PrinterID uuid.UUID             `json:"printerId" binding:"required"`
	Name      string                `json:"name" binding:"required,min=1,max=120"`
	Lineature int                   `json:"lineature" binding:"required,min=1"`
	DotType   string                `json:"dotType" binding:"required,oneof=round elliptical square hybrid"`
	Colors    []ProfileColorRequest `json:"colors" binding:"required,min=1,max=12,dive"`
	Notes     string                `json:"notes" binding:"max=2000"`
	CreatedBy *uuid.UUID            `json:"-"`
}

func (r ProfileRequest) colors() []prepress.ProfileColor {
	out := make([]prepress.ProfileColor, len(r.Colors))
	for i, c := range r.Colors {
		out[i] = prepress.ProfileColor{Color: c.Color, CurveID: c.CurveID, Angle: c.Angle}
	}
	return out
}

// ProfileColorResponse is one separation in API responses
type ProfileColorResponse struct {
	Color   string     `json:"color"`
	CurveID *uuid.UUID `json:"curveId"`
	Angle   float64    `json:"angle"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        uuid.UUID              `json:"id"`
	PrinterID uuid.UUID              `json:"printerId"`
	Name      string                 `json:"name"`
	Lineature int                    `json:"lineature"`
	DotType   string                 `json:"dotType"`
	Colors    []ProfileColorResponse `json:"colors"`
	Notes     string                 `json:"notes"`
	CreatedBy *uuid.UUID             `json:"createdBy,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Version   int                    `json:"version"`
}

// ProfileListFilter represents filter options for the profile list
type ProfileListFilter struct {
	listing.Query
	PrinterID string `form:"printerId" binding:"omitempty,uuid"`
}

// ToProfileResponse converts a domain profile to a response DTO
func ToProfileResponse(p *prepress.Profile) ProfileResponse {
	colors := make([]ProfileColorResponse, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ProfileColorResponse{Color: c.Color, CurveID: c.CurveID, Angle: c.Angle}
	}
	return ProfileResponse{
		ID:        p.ID,
		PrinterID: p.PrinterID,
		Name:      p.Name,
		Lineature: p.Lineature,
		DotType:   string(p.DotType),
		Colors:    colors,
		Notes:     p.Notes,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.Version,
	}
}

// ToProfileResponses converts a slice of profiles
func ToProfileResponses(profiles []prepress.Profile) []ProfileResponse {
	out := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = ToProfileResponse(&profiles[i])
	}
	return out
}
