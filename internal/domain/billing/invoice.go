package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceOpen      InvoiceStatus = "open"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceOpen, InvoiceIssued, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// Label is the human name printed on the invoice sheet
func (s InvoiceStatus) Label() string {
	switch s {
	case InvoiceOpen:
		return "Aberta"
	case InvoiceIssued:
		return "Emitida"
	case InvoicePaid:
		return "Paga"
	case InvoiceCancelled:
		return "Cancelada"
	}
	return string(s)
}

// CanTransitionTo checks if the status can move to target
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceOpen:
		return target == InvoiceIssued || target == InvoiceCancelled
	case InvoiceIssued:
		return target == InvoicePaid || target == InvoiceCancelled
	}
	return false
}

// InvoiceItem is one billed service order
type InvoiceItem struct {
	ServiceOrderID uuid.UUID           `json:"service_order_id"`
	OrderNumber    int64               `json:"order_number"`
	Description    string              `json:"description"`
	ProductType    pricing.ProductType `json:"product_type"`
	Measure        decimal.Decimal     `json:"measure"`
	Unit           string              `json:"unit"`
	Amount         decimal.Decimal     `json:"amount"`
}

// Invoice (faturamento) groups finished service orders of one customer
type Invoice struct {
	shared.BaseAggregateRoot
	Number      int64
	CustomerID  uuid.UUID
	Items       []InvoiceItem
	Total       decimal.Decimal
	Status      InvoiceStatus
	IssueDate   *time.Time
	DueDate     *time.Time
	PaidAt      *time.Time
	CancelledAt *time.Time
	Notes       string
}

// NewInvoice bills orders for a customer. Every order must belong to the
// customer and be billable; the orders are linked to the new invoice.
func NewInvoice(number int64, customerID uuid.UUID, orders []*production.ServiceOrder, dueDate *time.Time) (*Invoice, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number must be positive")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Invoice must have a customer")
	}
	if len(orders) == 0 {
		return nil, shared.NewDomainError("NO_ORDERS", "An invoice needs at least one service order")
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		CustomerID:        customerID,
		Status:            InvoiceOpen,
		DueDate:           dueDate,
		Items:             make([]InvoiceItem, 0, len(orders)),
	}

	seen := make(map[uuid.UUID]struct{}, len(orders))
	lines := make([]pricing.LineTotal, 0, len(orders))
	for _, o := range orders {
		if _, dup := seen[o.ID]; dup {
			return nil, shared.NewDomainError("DUPLICATE_ORDER", fmt.Sprintf("Order %d appears twice", o.Number))
		}
		seen[o.ID] = struct{}{}

		if o.CustomerID != customerID {
			return nil, shared.NewDomainError("CUSTOMER_MISMATCH",
				fmt.Sprintf("Order %d belongs to another customer", o.Number))
		}
		if !o.IsBillable() {
			return nil, shared.NewDomainError("NOT_BILLABLE",
				fmt.Sprintf("Order %d cannot be invoiced (status %s, replacement %t, invoiced %t)",
					o.Number, o.Status, o.IsReplacement(), o.InvoiceID != nil))
		}

		line := o.LineTotal()
		lines = append(lines, line)
		inv.Items = append(inv.Items, InvoiceItem{
			ServiceOrderID: o.ID,
			OrderNumber:    o.Number,
			Description:    o.Description,
			ProductType:    o.ProductType,
			Measure:        line.Measure,
			Unit:           line.Unit,
			Amount:         line.Amount,
		})
	}
	inv.Total = pricing.Aggregate(lines).Billable

	for _, o := range orders {
		if err := o.MarkInvoiced(inv.ID); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// OrderIDs returns the billed service order ids
func (i *Invoice) OrderIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(i.Items))
	for _, it := range i.Items {
		ids = append(ids, it.ServiceOrderID)
	}
	return ids
}

// Issue marks the invoice as sent to the customer
func (i *Invoice) Issue(at time.Time) error {
	if err := i.transition(InvoiceIssued); err != nil {
		return err
	}
	i.IssueDate = &at
	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, EventTypeInvoiceIssued))
	return nil
}

// Pay records payment
func (i *Invoice) Pay(at time.Time) error {
	if err := i.transition(InvoicePaid); err != nil {
		return err
	}
	i.PaidAt = &at
	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, EventTypeInvoicePaid))
	return nil
}

// Cancel voids the invoice and releases its orders so they can be billed again
func (i *Invoice) Cancel(orders []*production.ServiceOrder) error {
	if err := i.transition(InvoiceCancelled); err != nil {
		return err
	}
	now := time.Now()
	i.CancelledAt = &now
	for _, o := range orders {
		if o.InvoiceID != nil && *o.InvoiceID == i.ID {
			o.ReleaseInvoice()
		}
	}
	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, EventTypeInvoiceCancelled))
	return nil
}

// SetNotes replaces the notes while the invoice is open
func (i *Invoice) SetNotes(notes string, dueDate *time.Time) error {
	if i.Status != InvoiceOpen {
		return shared.NewDomainError("INVALID_STATE", "Only open invoices can be edited")
	}
	i.Notes = notes
	i.DueDate = dueDate
	i.Touch()
	i.IncrementVersion()
	return nil
}

// Summary aggregates the items per product type
func (i *Invoice) Summary() pricing.Summary {
	lines := make([]pricing.LineTotal, 0, len(i.Items))
	for _, it := range i.Items {
		lines = append(lines, pricing.LineTotal{
			ProductType: it.ProductType,
			Measure:     it.Measure,
			Unit:        it.Unit,
			Amount:      it.Amount,
		})
	}
	return pricing.Aggregate(lines)
}

func (i *Invoice) transition(target InvoiceStatus) error {
	if !i.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot change invoice from %s to %s", i.Status, target))
	}
	i.Status = target
	i.Touch()
	i.IncrementVersion()
	return nil
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindAll supports the filter keys customer_id and status
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, invoice *Invoice) error
	NextNumber(ctx context.Context) (int64, error)
}
