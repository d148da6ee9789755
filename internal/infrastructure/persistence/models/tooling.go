package models

import (
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DieCutBlockModel is the persistence model for die-cut blocks (formas).
type DieCutBlockModel struct {
	AggregateModel
	Code         string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Description  string               `gorm:"type:varchar(300)"`
	Origin       pricing.DieCutOrigin `gorm:"type:varchar(20);not null"`
	WidthMM      decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	HeightMM     decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	LinearMeters decimal.Decimal      `gorm:"type:decimal(12,3);not null;default:0"`
	Location     string               `gorm:"type:varchar(100)"`
	Notes        string               `gorm:"type:text"`
}

func (DieCutBlockModel) TableName() string {
	return "die_cut_blocks"
}

func (m *DieCutBlockModel) ToDomain() *tooling.DieCutBlock {
	return &tooling.DieCutBlock{
		BaseAggregateRoot: m.Aggregate(),
		Code:              m.Code,
		CustomerID:        m.CustomerID,
		Description:       m.Description,
		Origin:            m.Origin,
		WidthMM:           m.WidthMM,
		HeightMM:          m.HeightMM,
		LinearMeters:      m.LinearMeters,
		Location:          m.Location,
		Notes:             m.Notes,
	}
}

func DieCutBlockModelFromDomain(b *tooling.DieCutBlock) *DieCutBlockModel {
	m := &DieCutBlockModel{
		Code:         b.Code,
		CustomerID:   b.CustomerID,
		Description:  b.Description,
		Origin:       b.Origin,
		WidthMM:      b.WidthMM,
		HeightMM:     b.HeightMM,
		LinearMeters: b.LinearMeters,
		Location:     b.Location,
		Notes:        b.Notes,
	}
	m.SetAggregate(b.BaseAggregateRoot)
	return m
}
