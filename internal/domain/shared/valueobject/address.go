package valueobject

import (
	"fmt"
	"strings"
)

// brazilianStates lists the valid UF codes
var brazilianStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsValidUF reports whether uf is a Brazilian state code
func IsValidUF(uf string) bool {
	_, ok := brazilianStates[strings.ToUpper(strings.TrimSpace(uf))]
	return ok
}

// Address is a value object representing a Brazilian postal address.
// It is immutable - all operations return new Address instances.
type Address struct {
	street     string
	number     string
	complement string
	district   string
	city       string
	state      string
	zipCode    string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithComplement sets the complement (suite, block, etc.)
func WithComplement(complement string) AddressOption {
	return func(a *Address) {
		a.complement = strings.TrimSpace(complement)
	}
}

// WithZipCode sets the CEP
func WithZipCode(zip string) AddressOption {
	return func(a *Address) {
		a.zipCode = OnlyDigits(zip)
	}
}

// NewAddress creates a new Address. City and state are required.
func NewAddress(street, number, district, city, state string, opts ...AddressOption) (Address, error) {
	addr := Address{
		street:   strings.TrimSpace(street),
		number:   strings.TrimSpace(number),
		district: strings.TrimSpace(district),
		city:     strings.TrimSpace(city),
		state:    strings.ToUpper(strings.TrimSpace(state)),
	}
	for _, opt := range opts {
		opt(&addr)
	}

	if addr.city == "" {
		return Address{}, fmt.Errorf("city cannot be empty")
	}
	if !IsValidUF(addr.state) {
		return Address{}, fmt.Errorf("invalid state: %q", addr.state)
	}
	if addr.zipCode != "" && len(addr.zipCode) != 8 {
		return Address{}, fmt.Errorf("zip code must have 8 digits")
	}
	if len(addr.street) > 200 {
		return Address{}, fmt.Errorf("street cannot exceed 200 characters")
	}
	return addr, nil
}

// EmptyAddress returns an empty address (for optional address fields)
func EmptyAddress() Address {
	return Address{}
}

func (a Address) Street() string     { return a.street }
func (a Address) Number() string     { return a.number }
func (a Address) Complement() string { return a.complement }
func (a Address) District() string   { return a.district }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) ZipCode() string    { return a.zipCode }

// IsEmpty returns true if no location fields are set
func (a Address) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.state == ""
}

// FormattedZip returns the CEP as 00000-000
func (a Address) FormattedZip() string {
	if len(a.zipCode) != 8 {
		return a.zipCode
	}
	return a.zipCode[:5] + "-" + a.zipCode[5:]
}

// FullAddress returns the single-line form printed on service-order sheets:
// "Rua X, 100 - Sala 2 - Centro, Curitiba/PR - 80000-000"
func (a Address) FullAddress() string {
	if a.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	if a.street != "" {
		sb.WriteString(a.street)
		if a.number != "" {
			sb.WriteString(", " + a.number)
		}
		if a.complement != "" {
			sb.WriteString(" - " + a.complement)
		}
	}
	if a.district != "" {
		if sb.Len() > 0 {
			sb.WriteString(" - ")
		}
		sb.WriteString(a.district)
	}
	if sb.Len() > 0 {
		sb.WriteString(", ")
	}
	sb.WriteString(a.city + "/" + a.state)
	if a.zipCode != "" {
		sb.WriteString(" - " + a.FormattedZip())
	}
	return sb.String()
}

func (a Address) String() string {
	return a.FullAddress()
}

// AddressDTO is a flat representation used for persistence and transport
type AddressDTO struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code,omitempty"`
}

// ToDTO converts Address to AddressDTO
func (a Address) ToDTO() AddressDTO {
	return AddressDTO{
		Street:     a.street,
		Number:     a.number,
		Complement: a.complement,
		District:   a.district,
		City:       a.city,
		State:      a.state,
		ZipCode:    a.zipCode,
	}
}

// ToAddress builds an Address from the DTO. An all-blank DTO yields EmptyAddress.
func (d AddressDTO) ToAddress() (Address, error) {
	if strings.TrimSpace(d.Street+d.City+d.State) == "" {
		return EmptyAddress(), nil
	}
	return NewAddress(d.Street, d.Number, d.District, d.City, d.State,
		WithComplement(d.Complement), WithZipCode(d.ZipCode))
}
