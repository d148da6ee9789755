package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is what repositories and PublishAndClear need from a
// versioned record
type AggregateRoot interface {
	GetVersion() int
	IncrementVersion()
	IsNew() bool
	PersistedVersion() int
	MarkPersisted()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	CreatedBy    *uuid.UUID // user that created the record, nil for system-created rows
	domainEvents []DomainEvent

	// unsaved is set for aggregates built by a constructor and cleared by
	// MarkPersisted; aggregates loaded from storage start with it false.
	unsaved bool
	bumped  bool
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion bumps the version once per unit of work, so an aggregate
// changed several times before saving still moves from N to N+1. Unsaved
// aggregates keep version 1.
func (a *BaseAggregateRoot) IncrementVersion() {
	if a.unsaved || a.bumped {
		return
	}
	a.Version++
	a.bumped = true
}

// IsNew reports whether the aggregate has never been saved
func (a *BaseAggregateRoot) IsNew() bool {
	return a.unsaved
}

// PersistedVersion is the version currently stored, used as the optimistic
// lock condition when saving
func (a *BaseAggregateRoot) PersistedVersion() int {
	if a.bumped {
		return a.Version - 1
	}
	return a.Version
}

// MarkPersisted is called by repositories after a successful save
func (a *BaseAggregateRoot) MarkPersisted() {
	a.unsaved = false
	a.bumped = false
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// SetCreatedBy records the user that created the aggregate
func (a *BaseAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	if userID == uuid.Nil {
		return
	}
	a.CreatedBy = &userID
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
		unsaved:      true,
	}
}
