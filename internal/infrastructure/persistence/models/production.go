package models

import (
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOrderModel is the persistence model for service orders (OS).
// Product details are stored as JSON; replacement data is flattened.
type ServiceOrderModel struct {
	AggregateModel
	Number        int64                                `gorm:"not null;uniqueIndex"`
	CustomerID    uuid.UUID                            `gorm:"type:uuid;not null;index"`
	PrinterID     *uuid.UUID                           `gorm:"type:uuid;index"`
	ProfileID     *uuid.UUID                           `gorm:"type:uuid;index"`
	TransportID   *uuid.UUID                           `gorm:"type:uuid;index"`
	DieCutBlockID *uuid.UUID                           `gorm:"type:uuid;index"`
	ProductType   pricing.ProductType                  `gorm:"type:varchar(30);not null;index"`
	Description   string                               `gorm:"type:varchar(500)"`
	Status        production.Status                    `gorm:"type:varchar(20);not null;index"`
	DueDate       *time.Time                           `gorm:"type:date"`
	Notes         string                               `gorm:"type:text"`
	Corrugated    *production.CorrugatedPrinterDetails `gorm:"type:jsonb;serializer:json"`
	DieCut        *production.DieCutBlockDetails       `gorm:"type:jsonb;serializer:json"`
	Price         decimal.Decimal                      `gorm:"type:decimal(18,2);not null;default:0"`

	IsReplacement       bool                        `gorm:"not null;default:false;index"`
	ReplacedOrderID     *uuid.UUID                  `gorm:"type:uuid;index"`
	ReplacedOrderNumber int64                       `gorm:"not null;default:0"`
	ReplacementReason   string                      `gorm:"type:varchar(500)"`
	Responsible         production.ResponsibleParty `gorm:"type:varchar(20)"`

	InvoiceID    *uuid.UUID `gorm:"type:uuid;index"`
	StartedAt    *time.Time
	FinishedAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:varchar(500)"`
}

func (ServiceOrderModel) TableName() string {
	return "service_orders"
}

func (m *ServiceOrderModel) ToDomain() *production.ServiceOrder {
	o := &production.ServiceOrder{
		BaseAggregateRoot: m.Aggregate(),
		Number:            m.Number,
		CustomerID:        m.CustomerID,
		PrinterID:         m.PrinterID,
		ProfileID:         m.ProfileID,
		TransportID:       m.TransportID,
		ProductType:       m.ProductType,
		Description:       m.Description,
		Status:            m.Status,
		DueDate:           m.DueDate,
		Notes:             m.Notes,
		Corrugated:        m.Corrugated,
		DieCut:            m.DieCut,
		Price:             m.Price,
		InvoiceID:         m.InvoiceID,
		StartedAt:         m.StartedAt,
		FinishedAt:        m.FinishedAt,
		DeliveredAt:       m.DeliveredAt,
		CancelledAt:       m.CancelledAt,
		CancelReason:      m.CancelReason,
	}
	if m.IsReplacement && m.ReplacedOrderID != nil {
		o.Replacement = &production.Replacement{
			OriginalOrderID: *m.ReplacedOrderID,
			OriginalNumber:  m.ReplacedOrderNumber,
			Reason:          m.ReplacementReason,
			Responsible:     m.Responsible,
		}
	}
	return o
}

func ServiceOrderModelFromDomain(o *production.ServiceOrder) *ServiceOrderModel {
	m := &ServiceOrderModel{
		Number:       o.Number,
		CustomerID:   o.CustomerID,
		PrinterID:    o.PrinterID,
		ProfileID:    o.ProfileID,
		TransportID:  o.TransportID,
		ProductType:  o.ProductType,
		Description:  o.Description,
		Status:       o.Status,
		DueDate:      o.DueDate,
		Notes:        o.Notes,
		Corrugated:   o.Corrugated,
		DieCut:       o.DieCut,
		Price:        o.Price,
		InvoiceID:    o.InvoiceID,
		StartedAt:    o.StartedAt,
		FinishedAt:   o.FinishedAt,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
		CancelReason: o.CancelReason,
	}
	m.SetAggregate(o.BaseAggregateRoot)
	if o.DieCut != nil {
		m.DieCutBlockID = o.DieCut.DieCutBlockID
	}
	if r := o.Replacement; r != nil {
		id := r.OriginalOrderID
		m.IsReplacement = true
		m.ReplacedOrderID = &id
		m.ReplacedOrderNumber = r.OriginalNumber
		m.ReplacementReason = r.Reason
		m.Responsible = r.Responsible
	}
	return m
}
