package notification

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Channel groups notifications by subject (production, billing, ...)
type Channel struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Active      bool
}

func NewChannel(name, description string) (*Channel, error) {
	c := &Channel{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Active:            true,
	}
	if err := c.Update(name, description); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Channel) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Channel name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Channel name cannot exceed 100 characters")
	}
	c.Name = name
	c.Description = strings.TrimSpace(description)
	c.Touch()
	c.IncrementVersion()
	return nil
}

func (c *Channel) SetActive(active bool) {
	if c.Active == active {
		return
	}
	c.Active = active
	c.Touch()
	c.IncrementVersion()
}

// ChannelRepository defines the interface for channel persistence
type ChannelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Channel, error)
	FindByName(ctx context.Context, name string) (*Channel, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Channel, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, channel *Channel) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
