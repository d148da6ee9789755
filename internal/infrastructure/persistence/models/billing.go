package models

import (
	"time"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for invoices.
type InvoiceModel struct {
	AggregateModel
	Number      int64                 `gorm:"not null;uniqueIndex"`
	CustomerID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Status      billing.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
	IssueDate   *time.Time
	DueDate     *time.Time `gorm:"type:date"`
	PaidAt      *time.Time
	CancelledAt *time.Time
	Notes       string             `gorm:"type:text"`
	Items       []InvoiceItemModel `gorm:"foreignKey:InvoiceID"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is one billed service order of an invoice.
type InvoiceItemModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key"`
	InvoiceID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	ServiceOrderID uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderNumber    int64               `gorm:"not null"`
	Description    string              `gorm:"type:varchar(500)"`
	ProductType    pricing.ProductType `gorm:"type:varchar(30);not null"`
	Measure        decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Unit           string              `gorm:"type:varchar(10);not null"`
	Amount         decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	Position       int                 `gorm:"not null"`
}

func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseAggregateRoot: m.Aggregate(),
		Number:            m.Number,
		CustomerID:        m.CustomerID,
		Total:             m.Total,
		Status:            m.Status,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		PaidAt:            m.PaidAt,
		CancelledAt:       m.CancelledAt,
		Notes:             m.Notes,
		Items:             make([]billing.InvoiceItem, len(m.Items)),
	}
	for i, it := range m.Items {
		inv.Items[i] = billing.InvoiceItem{
			ServiceOrderID: it.ServiceOrderID,
			OrderNumber:    it.OrderNumber,
			Description:    it.Description,
			ProductType:    it.ProductType,
			Measure:        it.Measure,
			Unit:           it.Unit,
			Amount:         it.Amount,
		}
	}
	return inv
}

// InvoiceModelFromDomain converts the invoice. Item ids are derived from the
// invoice and position so re-saving an invoice does not duplicate items.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		Number:      inv.Number,
		CustomerID:  inv.CustomerID,
		Total:       inv.Total,
		Status:      inv.Status,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		PaidAt:      inv.PaidAt,
		CancelledAt: inv.CancelledAt,
		Notes:       inv.Notes,
		Items:       make([]InvoiceItemModel, len(inv.Items)),
	}
	m.SetAggregate(inv.BaseAggregateRoot)
	for i, it := range inv.Items {
		m.Items[i] = InvoiceItemModel{
			ID:             uuid.NewSHA1(inv.ID, []byte(it.ServiceOrderID.String())),
			InvoiceID:      inv.ID,
			ServiceOrderID: it.ServiceOrderID,
			OrderNumber:    it.OrderNumber,
			Description:    it.Description,
			ProductType:    it.ProductType,
			Measure:        it.Measure,
			Unit:           it.Unit,
			Amount:         it.Amount,
			Position:       i,
		}
	}
	return m
}
