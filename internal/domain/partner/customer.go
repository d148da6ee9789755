package partner

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Customer is a company (or person) that orders clichés and die-cut blocks.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseAggregateRoot
	Name              string // razão social
	TradeName         string // nome fantasia
	Document          string // CNPJ or CPF, digits only
	StateRegistration string
	Email             string
	Phone             string
	ContactName       string
	Address           valueobject.Address
	TransportID       *uuid.UUID // default carrier for deliveries
	Notes             string
	Active            bool
}

// NewCustomer creates a new active customer
func NewCustomer(name, document string) (*Customer, error) {
	if err := validateName("Customer name", name, 200); err != nil {
		return nil, err
	}
	digits, err := parseDocument(document, false)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Document:          digits,
		Active:            true,
	}
	c.AddDomainEvent(NewCustomerCreatedEvent(c))
	return c, nil
}

// Update changes the customer's identification
func (c *Customer) Update(name, tradeName, document, stateRegistration string) error {
	if err := validateName("Customer name", name, 200); err != nil {
		return err
	}
	if len(tradeName) > 200 {
		return shared.NewDomainError("INVALID_TRADE_NAME", "Trade name cannot exceed 200 characters")
	}
	digits, err := parseDocument(document, false)
	if err != nil {
		return err
	}
	if len(stateRegistration) > 30 {
		return shared.NewDomainError("INVALID_STATE_REGISTRATION", "State registration cannot exceed 30 characters")
	}

	c.Name = strings.TrimSpace(name)
	c.TradeName = strings.TrimSpace(tradeName)
	c.Document = digits
	c.StateRegistration = strings.TrimSpace(stateRegistration)
	c.changed()
	return nil
}

// SetContact sets email, phone and contact person
func (c *Customer) SetContact(contactName, phone, email string) error {
	if len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if err := validatePhone(phone); err != nil {
		return err
	}
	email, err := optionalEmail(email)
	if err != nil {
		return err
	}
	c.ContactName = strings.TrimSpace(contactName)
	c.Phone = strings.TrimSpace(phone)
	c.Email = email
	c.changed()
	return nil
}

// SetAddress replaces the postal address
func (c *Customer) SetAddress(addr valueobject.Address) {
	c.Address = addr
	c.changed()
}

// SetTransport sets (or clears, with nil) the default carrier
func (c *Customer) SetTransport(transportID *uuid.UUID) {
	c.TransportID = transportID
	c.changed()
}

// SetNotes replaces the free-text notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.changed()
}

// Activate re-enables the customer for new service orders
func (c *Customer) Activate() error {
	if c.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}
	c.Active = true
	c.changed()
	c.AddDomainEvent(NewCustomerStatusChangedEvent(c))
	return nil
}

// Deactivate blocks new service orders for the customer
func (c *Customer) Deactivate() error {
	if !c.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}
	c.Active = false
	c.changed()
	c.AddDomainEvent(NewCustomerStatusChangedEvent(c))
	return nil
}

// DisplayName prefers the trade name
func (c *Customer) DisplayName() string {
	if c.TradeName != "" {
		return c.TradeName
	}
	return c.Name
}

// FormattedDocument returns the punctuated CNPJ/CPF
func (c *Customer) FormattedDocument() string {
	doc, err := valueobject.NewDocument(c.Document)
	if err != nil {
		return c.Document
	}
	return doc.Formatted()
}

func (c *Customer) changed() {
	c.Touch()
	c.IncrementVersion()
}
