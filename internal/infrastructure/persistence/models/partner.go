package models

import (
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer aggregate.
type CustomerModel struct {
	AggregateModel
	Name              string     `gorm:"type:varchar(200);not null"`
	TradeName         string     `gorm:"type:varchar(200)"`
	Document          string     `gorm:"type:varchar(14);not null;uniqueIndex"`
	StateRegistration string     `gorm:"type:varchar(30)"`
	Email             string     `gorm:"type:varchar(200)"`
	Phone             string     `gorm:"type:varchar(30)"`
	ContactName       string     `gorm:"type:varchar(100)"`
	Street            string     `gorm:"type:varchar(200)"`
	Number            string     `gorm:"type:varchar(20)"`
	Complement        string     `gorm:"type:varchar(100)"`
	District          string     `gorm:"type:varchar(100)"`
	City              string     `gorm:"type:varchar(100);index"`
	State             string     `gorm:"type:char(2)"`
	ZipCode           string     `gorm:"type:varchar(8)"`
	TransportID       *uuid.UUID `gorm:"type:uuid;index"`
	Notes             string     `gorm:"type:text"`
	Active            bool       `gorm:"not null;default:true"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.Aggregate(),
		Name:              m.Name,
		TradeName:         m.TradeName,
		Document:          m.Document,
		StateRegistration: m.StateRegistration,
		Email:             m.Email,
		Phone:             m.Phone,
		ContactName:       m.ContactName,
		Address:           restoreAddress(m.Street, m.Number, m.Complement, m.District, m.City, m.State, m.ZipCode),
		TransportID:       m.TransportID,
		Notes:             m.Notes,
		Active:            m.Active,
	}
}

func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.SetAggregate(c.BaseAggregateRoot)
	m.Name = c.Name
	m.TradeName = c.TradeName
	m.Document = c.Document
	m.StateRegistration = c.StateRegistration
	m.Email = c.Email
	m.Phone = c.Phone
	m.ContactName = c.ContactName
	m.Street = c.Address.Street()
	m.Number = c.Address.Number()
	m.Complement = c.Address.Complement()
	m.District = c.Address.District()
	m.City = c.Address.City()
	m.State = c.Address.State()
	m.ZipCode = c.Address.ZipCode()
	m.TransportID = c.TransportID
	m.Notes = c.Notes
	m.Active = c.Active
}

func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// TransportModel is the persistence model for carriers.
type TransportModel struct {
	AggregateModel
	Name     string `gorm:"type:varchar(150);not null;uniqueIndex"`
	Document string `gorm:"type:varchar(14)"`
	Phone    string `gorm:"type:varchar(30)"`
	Email    string `gorm:"type:varchar(200)"`
	Notes    string `gorm:"type:text"`
	Active   bool   `gorm:"not null;default:true"`
}

func (TransportModel) TableName() string {
	return "transports"
}

func (m *TransportModel) ToDomain() *partner.Transport {
	return &partner.Transport{
		BaseAggregateRoot: m.Aggregate(),
		Name:              m.Name,
		Document:          m.Document,
		Phone:             m.Phone,
		Email:             m.Email,
		Notes:             m.Notes,
		Active:            m.Active,
	}
}

func TransportModelFromDomain(t *partner.Transport) *TransportModel {
	m := &TransportModel{
		Name:     t.Name,
		Document: t.Document,
		Phone:    t.Phone,
		Email:    t.Email,
		Notes:    t.Notes,
		Active:   t.Active,
	}
	m.SetAggregate(t.BaseAggregateRoot)
	return m
}

// restoreAddress rebuilds a stored address. Rows were validated on write,
// so a failure here means the row was edited by hand; the address is
// dropped rather than failing the whole read.
func restoreAddress(street, number, complement, district, city, state, zip string) valueobject.Address {
	addr, err := valueobject.AddressDTO{
		Street:     street,
		Number:     number,
		Complement: complement,
		District:   district,
		City:       city,
		State:      state,
		ZipCode:    zip,
	}.ToAddress()
	if err != nil {
		return valueobject.EmptyAddress()
	}
	return addr
}
