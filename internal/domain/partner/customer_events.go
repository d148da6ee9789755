package partner

import (
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const AggregateTypeCustomer = "Customer"

const (
	EventTypeCustomerCreated       = "CustomerCreated"
	EventTypeCustomerStatusChanged = "CustomerStatusChanged"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Document   string    `json:"document"`
}

func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		Name:            c.Name,
		Document:        c.Document,
	}
}

// CustomerStatusChangedEvent is published on activation and deactivation
type CustomerStatusChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Active     bool      `json:"active"`
}

func NewCustomerStatusChangedEvent(c *Customer) *CustomerStatusChangedEvent {
	return &CustomerStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerStatusChanged, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		Active:          c.Active,
	}
}
