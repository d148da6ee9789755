// Package models holds the GORM persistence models. Each model maps one
// table and converts to and from its domain aggregate with ToDomain and
// XxxModelFromDomain, keeping gorm tags out of the domain layer.
package models
