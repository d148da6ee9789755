package billing

import (
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const AggregateTypeInvoice = "Invoice"

const (
	EventTypeInvoiceIssued    = "InvoiceIssued"
	EventTypeInvoicePaid      = "InvoicePaid"
	EventTypeInvoiceCancelled = "InvoiceCancelled"
)

// InvoiceStatusChangedEvent is published when an invoice is issued, paid or cancelled
type InvoiceStatusChangedEvent struct {
	shared.BaseDomainEvent
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	Number     int64           `json:"number"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Status     InvoiceStatus   `json:"status"`
}

func NewInvoiceStatusChangedEvent(i *Invoice, eventType string) *InvoiceStatusChangedEvent {
	return &InvoiceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeInvoice, i.ID),
		InvoiceID:       i.ID,
		Number:          i.Number,
		CustomerID:      i.CustomerID,
		Total:           i.Total,
		Status:          i.Status,
	}
}
