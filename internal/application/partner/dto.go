package partner

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// AddressRequest is the postal address of a customer
type AddressRequest struct {
	Street     string `json:"street" binding:"max=200"`
	Number     string `json:"number" binding:"max=20"`
	Complement string `json:"complement" binding:"max=100"`
	District   string `json:"district" binding:"max=100"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"omitempty,uf"`
	ZipCode    string `json:"zipCode" binding:"max=10"`
}

func (a AddressRequest) toValue() (valueobject.Address, error) {
	addr, err := valueobject.AddressDTO{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
	}.ToAddress()
	if err != nil {
		return addr, shared.NewDomainError("INVALID_ADDRESS", "Invalid address: "+err.Error())
	}
	return addr, nil
}

// CustomerRequest is the body of create and update (PUT replaces every field)
type CustomerRequest struct {
	Name              string         `json:"name" binding:"required,min=1,max=200"`
	TradeName         string         `json:"tradeName" binding:"max=200"`
	Document          string         `json:"document" binding:"required,document"`
	StateRegistration string         `json:"stateRegistration" binding:"max=30"`
	Email             string         `json:"email" binding:"omitempty,email,max=200"`
	Phone             string         `json:"phone" binding:"max=30"`
	ContactName       string         `json:"contactName" binding:"max=100"`
	Address           AddressRequest `json:"address"`
	TransportID       *uuid.UUID     `json:"transportId"`
	Notes             string         `json:"notes" binding:"max=2000"`
	CreatedBy         *uuid.UUID     `json:"-"` // set from the JWT, never from the body
}

// AddressResponse is the postal address in API responses
type AddressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Full       string `json:"full"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	TradeName         string          `json:"tradeName"`
	Document          string          `json:"document"`
	DocumentFormatted string          `json:"documentFormatted"`
	StateRegistration string          `json:"stateRegistration"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	ContactName       string          `json:"contactName"`
	Address           AddressResponse `json:"address"`
	TransportID       *uuid.UUID      `json:"transportId"`
	Notes             string          `json:"notes"`
	Active            bool            `json:"active"`
	CreatedBy         *uuid.UUID      `json:"createdBy,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Version           int             `json:"version"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	listing.Query
	Active      *bool  `form:"active"`
	City        string `form:"city" binding:"max=100"`
	State       string `form:"state" binding:"omitempty,uf"`
	TransportID string `form:"transportId" binding:"omitempty,uuid"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		TradeName:         c.TradeName,
		Document:          c.Document,
		DocumentFormatted: c.FormattedDocument(),
		StateRegistration: c.StateRegistration,
		Email:             c.Email,
		Phone:             c.Phone,
		ContactName:       c.ContactName,
		Address: AddressResponse{
			Street:     c.Address.Street(),
			Number:     c.Address.Number(),
			Complement: c.Address.Complement(),
			District:   c.Address.District(),
			City:       c.Address.City(),
			State:      c.Address.State(),
			ZipCode:    c.Address.ZipCode(),
			Full:       c.Address.FullAddress(),
		},
		TransportID: c.TransportID,
		Notes:       c.Notes,
		Active:      c.Active,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}

// =============================================================================
// Transport DTOs
// =============================================================================

// TransportRequest is the body of create and update
type TransportRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=150"`
	Document  string     `json:"document" binding:"omitempty,document"`
	Phone     string     `json:"phone" binding:"max=30"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	Notes     string     `json:"notes" binding:"max=2000"`
	Active    *bool      `json:"active"`
	CreatedBy *uuid.UUID `json:"-"`
}

// TransportResponse represents a carrier in API responses
type TransportResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Document  string     `json:"document"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Notes     string     `json:"notes"`
	Active    bool       `json:"active"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Version   int        `json:"version"`
}

// TransportListFilter represents filter options for the carrier list
type TransportListFilter struct {
	listing.Query
	Active *bool `form:"active"`
}

// ToTransportResponse converts a domain transport to a response DTO
func ToTransportResponse(t *partner.Transport) TransportResponse {
	return TransportResponse{
		ID:        t.ID,
		Name:      t.Name,
		Document:  t.Document,
		Phone:     t.Phone,
		Email:     t.Email,
		Notes:     t.Notes,
		Active:    t.Active,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Version:   t.Version,
	}
}

// ToTransportResponses converts a slice of transports
func ToTransportResponses(transports []partner.Transport) []TransportResponse {
	out := make([]TransportResponse, len(transports))
	for i := range transports {
		out[i] = ToTransportResponse(&transports[i])
	}
	return out
}
