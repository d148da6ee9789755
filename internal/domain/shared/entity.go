package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries identity and timestamps. Notifications embed it
// directly; versioned records get it through BaseAggregateRoot.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// now is truncated to microseconds, the precision PostgreSQL stores, so a
// reloaded entity compares equal to the one that was saved
func now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

func NewBaseEntity() BaseEntity {
	t := now()
	return BaseEntity{ID: uuid.New(), CreatedAt: t, UpdatedAt: t}
}

// Touch records a change
func (e *BaseEntity) Touch() {
	e.UpdatedAt = now()
}
