package partner

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
)

// Transport is a carrier that delivers finished orders
type Transport struct {
	shared.BaseAggregateRoot
	Name     string
	Document string // optional CNPJ/CPF, digits only
	Phone    string
	Email    string
	Notes    string
	Active   bool
}

// NewTransport creates a new active carrier
func NewTransport(name, document string) (*Transport, error) {
	if err := validateName("Transport name", name, 150); err != nil {
		return nil, err
	}
	digits, err := parseDocument(document, true)
	if err != nil {
		return nil, err
	}
	return &Transport{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Document:          digits,
		Active:            true,
	}, nil
}

// Update replaces the carrier data
func (t *Transport) Update(name, document, phone, email, notes string) error {
	if err := validateName("Transport name", name, 150); err != nil {
		return err
	}
	digits, err := parseDocument(document, true)
	if err != nil {
		return err
	}
	if err := validatePhone(phone); err != nil {
		return err
	}
	if email, err = optionalEmail(email); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(name)
	t.Document = digits
	t.Phone = strings.TrimSpace(phone)
	t.Email = email
	t.Notes = notes
	t.Touch()
	t.IncrementVersion()
	return nil
}

// SetActive toggles whether the carrier can be picked for new orders
func (t *Transport) SetActive(active bool) {
	if t.Active == active {
		return
	}
	t.Active = active
	t.Touch()
	t.IncrementVersion()
}
