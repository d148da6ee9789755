package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened to an aggregate. Events are
// published after the aggregate is saved and are turned into channel
// notifications or forwarded to the broker.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
}

// BaseDomainEvent is embedded by every concrete event. The JSON form is
// the envelope sent to RabbitMQ.
type BaseDomainEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AggID     uuid.UUID `json:"aggregate_id"`
	AggType   string    `json:"aggregate_type"`
}

func NewBaseDomainEvent(eventType, aggType string, aggID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: now(),
		AggID:     aggID,
		AggType:   aggType,
	}
}

func (e BaseDomainEvent) EventID() uuid.UUID      { return e.ID }
func (e BaseDomainEvent) EventType() string       { return e.Type }
func (e BaseDomainEvent) OccurredAt() time.Time   { return e.Timestamp }
func (e BaseDomainEvent) AggregateID() uuid.UUID  { return e.AggID }
func (e BaseDomainEvent) AggregateType() string   { return e.AggType }
