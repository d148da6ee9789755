package production

import (
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const AggregateTypeServiceOrder = "ServiceOrder"

const (
	EventTypeServiceOrderCreated       = "ServiceOrderCreated"
	EventTypeServiceOrderStatusChanged = "ServiceOrderStatusChanged"
	EventTypeReplacementCreated        = "ReplacementCreated"
)

// ServiceOrderCreatedEvent is published when an order is opened
type ServiceOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID           `json:"order_id"`
	Number      int64               `json:"number"`
	CustomerID  uuid.UUID           `json:"customer_id"`
	ProductType pricing.ProductType `json:"product_type"`
}

func NewServiceOrderCreatedEvent(o *ServiceOrder) *ServiceOrderCreatedEvent {
	return &ServiceOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeServiceOrderCreated, AggregateTypeServiceOrder, o.ID),
		OrderID:         o.ID,
		Number:          o.Number,
		CustomerID:      o.CustomerID,
		ProductType:     o.ProductType,
	}
}

// ServiceOrderStatusChangedEvent is published on every lifecycle transition
type ServiceOrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	Number     int64     `json:"number"`
	CustomerID uuid.UUID `json:"customer_id"`
	OldStatus  Status    `json:"old_status"`
	NewStatus  Status    `json:"new_status"`
}

func NewServiceOrderStatusChangedEvent(o *ServiceOrder, old Status) *ServiceOrderStatusChangedEvent {
	return &ServiceOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeServiceOrderStatusChanged, AggregateTypeServiceOrder, o.ID),
		OrderID:         o.ID,
		Number:          o.Number,
		CustomerID:      o.CustomerID,
		OldStatus:       old,
		NewStatus:       o.Status,
	}
}

// ReplacementCreatedEvent is published when a reposição is opened
type ReplacementCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID         uuid.UUID        `json:"order_id"`
	Number          int64            `json:"number"`
	OriginalOrderID uuid.UUID        `json:"original_order_id"`
	OriginalNumber  int64            `json:"original_number"`
	Reason          string           `json:"reason"`
	Responsible     ResponsibleParty `json:"responsible"`
	Amount          decimal.Decimal  `json:"amount"`
}

func NewReplacementCreatedEvent(o *ServiceOrder) *ReplacementCreatedEvent {
	return &ReplacementCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReplacementCreated, AggregateTypeServiceOrder, o.ID),
		OrderID:         o.ID,
		Number:          o.Number,
		OriginalOrderID: o.Replacement.OriginalOrderID,
		OriginalNumber:  o.Replacement.OriginalNumber,
		Reason:          o.Replacement.Reason,
		Responsible:     o.Replacement.Responsible,
		Amount:          o.Price,
	}
}
