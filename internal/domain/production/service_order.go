package production

import (
	"fmt"
	"strings"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Spec is the editable content of a service order
type Spec struct {
	ProductType pricing.ProductType
	Description string
	DueDate     *time.Time
	Notes       string
	Corrugated  *CorrugatedPrinterDetails
	DieCut      *DieCutBlockDetails
}

// ServiceOrder (OS) is a work order for producing a cliché or a die-cut
// block for a customer. It is the aggregate root of the production context.
type ServiceOrder struct {
	shared.BaseAggregateRoot
	Number       int64
	CustomerID   uuid.UUID
	PrinterID    *uuid.UUID
	ProfileID    *uuid.UUID
	TransportID  *uuid.UUID
	ProductType  pricing.ProductType
	Description  string
	Status       Status
	DueDate      *time.Time
	Notes        string
	Corrugated   *CorrugatedPrinterDetails
	DieCut       *DieCutBlockDetails
	Price        decimal.Decimal
	Replacement  *Replacement
	InvoiceID    *uuid.UUID
	StartedAt    *time.Time
	FinishedAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string
}

// NewServiceOrder creates a pending order. The caller must Reprice it
// before saving.
func NewServiceOrder(number int64, customerID uuid.UUID, spec Spec) (*ServiceOrder, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Service order number must be positive")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Service order must have a customer")
	}

	o := &ServiceOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		CustomerID:        customerID,
		Status:            StatusPending,
		Price:             decimal.Zero,
	}
	if err := o.applySpec(spec); err != nil {
		return nil, err
	}

	o.AddDomainEvent(NewServiceOrderCreatedEvent(o))
	return o, nil
}

// NewReplacementOrder creates a reposição of original, copying its product
// details and references. The original must already have been produced.
func NewReplacementOrder(number int64, original *ServiceOrder, reason string, responsible ResponsibleParty) (*ServiceOrder, error) {
	if original == nil {
		return nil, shared.NewDomainError("INVALID_ORIGINAL", "Original service order is required")
	}
	if original.IsReplacement() {
		return nil, shared.NewDomainError("INVALID_ORIGINAL",
			fmt.Sprintf("Order %d is a replacement; replace order %d instead", original.Number, original.Replacement.OriginalNumber))
	}
	if !original.Status.IsDone() {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Only finished or delivered orders can be replaced (order %d is %s)", original.Number, original.Status))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Replacement reason is required")
	}
	if !responsible.IsValid() {
		return nil, shared.NewDomainError("INVALID_RESPONSIBLE", "Responsible must be company, customer or supplier")
	}

	o, err := NewServiceOrder(number, original.CustomerID, Spec{
		ProductType: original.ProductType,
		Description: original.Description,
		Notes:       original.Notes,
		Corrugated:  cloneCorrugated(original.Corrugated),
		DieCut:      cloneDieCut(original.DieCut),
	})
	if err != nil {
		return nil, err
	}
	o.PrinterID = original.PrinterID
	o.ProfileID = original.ProfileID
	o.TransportID = original.TransportID
	o.Replacement = &Replacement{
		OriginalOrderID: original.ID,
		OriginalNumber:  original.Number,
		Reason:          reason,
		Responsible:     responsible,
	}
	o.AddDomainEvent(NewReplacementCreatedEvent(o))
	return o, nil
}

// Update replaces the editable content. Only pending orders can be edited.
func (o *ServiceOrder) Update(spec Spec) error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot edit order in %s status", o.Status))
	}
	if err := o.applySpec(spec); err != nil {
		return err
	}
	o.changed()
	return nil
}

// SetReferences sets printer, profile and carrier. Ownership checks
// against the customer are done by the caller, which has the repositories.
func (o *ServiceOrder) SetReferences(printerID, profileID, transportID *uuid.UUID) error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot edit order in %s status", o.Status))
	}
	o.PrinterID = printerID
	o.ProfileID = profileID
	o.TransportID = transportID
	o.changed()
	return nil
}

// Reprice recomputes Price from the table and the order details
func (o *ServiceOrder) Reprice(table pricing.PriceTable) error {
	var (
		price decimal.Decimal
		err   error
	)
	switch o.ProductType {
	case pricing.ProductClicheCorrugated:
		price, err = table.QuoteCliche(o.Corrugated.Measures, o.Corrugated.PricePerCm2)
	case pricing.ProductDieCutBlock:
		price, err = table.QuoteDieCut(o.DieCut.Quote())
	default:
		return shared.NewDomainError("INVALID_PRODUCT_TYPE", "Unknown product type")
	}
	if err != nil {
		return err
	}
	o.Price = price
	return nil
}

// ChangeStatus moves the order through its lifecycle. reason is only used
// when cancelling.
func (o *ServiceOrder) ChangeStatus(target Status, reason string) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot change order from %s to %s", o.Status, target))
	}
	if target == StatusCancelled && o.InvoiceID != nil {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel an invoiced order")
	}

	now := time.Now()
	old := o.Status
	switch target {
	case StatusInProduction:
		o.StartedAt = &now
	case StatusFinished:
		o.FinishedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		o.CancelledAt = &now
		o.CancelReason = strings.TrimSpace(reason)
	}
	o.Status = target
	o.changed()
	o.AddDomainEvent(NewServiceOrderStatusChangedEvent(o, old))
	return nil
}

// IsReplacement reports whether the order is a reposição
func (o *ServiceOrder) IsReplacement() bool {
	return o.Replacement != nil
}

// IsBillable reports whether the order can be put on an invoice
func (o *ServiceOrder) IsBillable() bool {
	return o.Status.IsDone() && !o.IsReplacement() && o.InvoiceID == nil
}

// MarkInvoiced links the order to an invoice
func (o *ServiceOrder) MarkInvoiced(invoiceID uuid.UUID) error {
	if o.IsReplacement() {
		return shared.NewDomainError("NOT_BILLABLE", fmt.Sprintf("Order %d is a replacement and cannot be invoiced", o.Number))
	}
	if o.InvoiceID != nil {
		return shared.NewDomainError("ALREADY_INVOICED", fmt.Sprintf("Order %d is already invoiced", o.Number))
	}
	if !o.Status.IsDone() {
		return shared.NewDomainError("NOT_BILLABLE", fmt.Sprintf("Order %d is not finished", o.Number))
	}
	o.InvoiceID = &invoiceID
	o.changed()
	return nil
}

// ReleaseInvoice unlinks the order from a cancelled invoice
func (o *ServiceOrder) ReleaseInvoice() {
	if o.InvoiceID == nil {
		return
	}
	o.InvoiceID = nil
	o.changed()
}

// CanDelete reports whether the order may be removed
func (o *ServiceOrder) CanDelete() bool {
	return o.Status == StatusPending && o.InvoiceID == nil
}

// Measure returns the order's measure in the product's unit:
// cm² of plate for clichés, linear metres of knife for die-cut blocks.
func (o *ServiceOrder) Measure() decimal.Decimal {
	switch o.ProductType {
	case pricing.ProductClicheCorrugated:
		if o.Corrugated != nil {
			return o.Corrugated.TotalArea()
		}
	case pricing.ProductDieCutBlock:
		if o.DieCut != nil {
			return pricing.DieCutLinearMeters(o.DieCut.Quote())
		}
	}
	return decimal.Zero
}

// LineTotal is the order's contribution to listing footers and invoices
func (o *ServiceOrder) LineTotal() pricing.LineTotal {
	return pricing.LineTotal{
		ProductType: o.ProductType,
		Measure:     o.Measure(),
		Unit:        o.ProductType.MeasureUnit(),
		Amount:      o.Price,
		Replacement: o.IsReplacement(),
	}
}

func (o *ServiceOrder) applySpec(s Spec) error {
	if !s.ProductType.IsValid() {
		return shared.NewDomainError("INVALID_PRODUCT_TYPE", "Product type must be cliche_corrugated or die_cut_block")
	}
	if len(s.Description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}

	switch s.ProductType {
	case pricing.ProductClicheCorrugated:
		if s.Corrugated == nil {
			return shared.NewDomainError("INVALID_DETAILS", "Cliché orders require corrugatedPrinterDetails")
		}
		if s.DieCut != nil {
			return shared.NewDomainError("INVALID_DETAILS", "Cliché orders cannot carry dieCutBlockDetails")
		}
		if err := s.Corrugated.validate(); err != nil {
			return err
		}
	case pricing.ProductDieCutBlock:
		if s.DieCut == nil {
			return shared.NewDomainError("INVALID_DETAILS", "Die-cut orders require dieCutBlockDetails")
		}
		if s.Corrugated != nil {
			return shared.NewDomainError("INVALID_DETAILS", "Die-cut orders cannot carry corrugatedPrinterDetails")
		}
		if err := s.DieCut.validate(); err != nil {
			return err
		}
	}

	o.ProductType = s.ProductType
	o.Description = strings.TrimSpace(s.Description)
	o.DueDate = s.DueDate
	o.Notes = s.Notes
	o.Corrugated = cloneCorrugated(s.Corrugated)
	o.DieCut = cloneDieCut(s.DieCut)
	return nil
}

func (o *ServiceOrder) changed() {
	o.Touch()
	o.IncrementVersion()
}

func cloneCorrugated(d *CorrugatedPrinterDetails) *CorrugatedPrinterDetails {
	if d == nil {
		return nil
	}
	c := *d
	c.Measures = append([]pricing.ClicheMeasure(nil), d.Measures...)
	if d.PricePerCm2 != nil {
		p := *d.PricePerCm2
		c.PricePerCm2 = &p
	}
	return &c
}

func cloneDieCut(d *DieCutBlockDetails) *DieCutBlockDetails {
	if d == nil {
		return nil
	}
	c := *d
	if d.DieCutBlockID != nil {
		id := *d.DieCutBlockID
		c.DieCutBlockID = &id
	}
	return &c
}
