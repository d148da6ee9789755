package models

import (
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/google/uuid"
)

// PrinterModel is the persistence model for customer presses.
type PrinterModel struct {
	AggregateModel
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(150);not null"`
	Manufacturer string    `gorm:"type:varchar(100)"`
	Model        string    `gorm:"type:varchar(100)"`
	Colors       int       `gorm:"not null"`
	MaxWidthMM   int       `gorm:"not null;default:0"`
	Notes        string    `gorm:"type:text"`
}

func (PrinterModel) TableName() string {
	return "printers"
}

func (m *PrinterModel) ToDomain() *prepress.Printer {
	return &prepress.Printer{
		BaseAggregateRoot: m.Aggregate(),
		CustomerID:        m.CustomerID,
		Name:              m.Name,
		Manufacturer:      m.Manufacturer,
		Model:             m.Model,
		Colors:            m.Colors,
		MaxWidthMM:        m.MaxWidthMM,
		Notes:             m.Notes,
	}
}

func PrinterModelFromDomain(p *prepress.Printer) *PrinterModel {
	m := &PrinterModel{
		CustomerID:   p.CustomerID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Model:        p.Model,
		Colors:       p.Colors,
		MaxWidthMM:   p.MaxWidthMM,
		Notes:        p.Notes,
	}
	m.SetAggregate(p.BaseAggregateRoot)
	return m
}

// CurveModel is the persistence model for dot-gain curves.
// Points are stored as a JSON array.
type CurveModel struct {
	AggregateModel
	Name        string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string                `gorm:"type:text"`
	Points      []prepress.CurvePoint `gorm:"type:jsonb;serializer:json;not null"`
}

func (CurveModel) TableName() string {
	return "curves"
}

func (m *CurveModel) ToDomain() *prepress.Curve {
	return &prepress.Curve{
		BaseAggregateRoot: m.Aggregate(),
		Name:              m.Name,
		Description:       m.Description,
		Points:            m.Points,
	}
}

func CurveModelFromDomain(c *prepress.Curve) *CurveModel {
	m := &CurveModel{
		Name:        c.Name,
		Description: c.Description,
		Points:      c.Points,
	}
	m.SetAggregate(c.BaseAggregateRoot)
	return m
}

// ProfileModel is the persistence model for print profiles.
type ProfileModel struct {
	AggregateModel
	PrinterID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_profile_printer_name,priority:1"`
	Name      string                  `gorm:"type:varchar(100);not null;uniqueIndex:idx_profile_printer_name,priority:2"`
	Lineature int                     `gorm:"not null"`
	DotType   prepress.DotType        `gorm:"type:varchar(20);not null"`
	Colors    []prepress.ProfileColor `gorm:"type:jsonb;serializer:json;not null"`
	Notes     string                  `gorm:"type:text"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) ToDomain() *prepress.Profile {
	return &prepress.Profile{
		BaseAggregateRoot: m.Aggregate(),
		PrinterID:         m.PrinterID,
		Name:              m.Name,
		Lineature:         m.Lineature,
		DotType:           m.DotType,
		Colors:            m.Colors,
		Notes:             m.Notes,
	}
}

func ProfileModelFromDomain(p *prepress.Profile) *ProfileModel {
	m := &ProfileModel{
		PrinterID: p.PrinterID,
		Name:      p.Name,
		Lineature: p.Lineature,
		DotType:   p.DotType,
		Colors:    p.Colors,
		Notes:     p.Notes,
	}
	m.SetAggregate(p.BaseAggregateRoot)
	return m
}
