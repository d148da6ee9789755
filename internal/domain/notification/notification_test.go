package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannel(t *testing.T) {
	c, err := NewChannel("  Produção ", "order updates")
	require.NoError(t, err)
	assert.Equal(t, "Produção", c.Name)
	assert.True(t, c.Active)

	_, err = NewChannel(" ", "")
	assert.Error(t, err)
}

func TestNotification(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	t.Run("requires channel and title", func(t *testing.T) {
		_, err := NewNotification(uuid.Nil, "x", "")
		assert.Error(t, err)
		_, err = NewNotification(channelID, "", "")
		assert.Error(t, err)
	})

	t.Run("broadcast visible to everyone", func(t *testing.T) {
		n, err := NewNotification(channelID, "OS 12 finalizada", "")
		require.NoError(t, err)
		assert.True(t, n.VisibleTo(userID))
		assert.True(t, n.VisibleTo(uuid.New()))
	})

	t.Run("addressed notification", func(t *testing.T) {
		n, err := NewNotification(channelID, "Fatura 3 paga", "")
		require.NoError(t, err)
		n.For(userID).WithLink("/invoice/3")
		assert.True(t, n.VisibleTo(userID))
		assert.False(t, n.VisibleTo(uuid.New()))
		assert.Equal(t, "/invoice/3", n.Link)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		n, _ := NewNotification(channelID, "t", "")
		first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		n.MarkRead(first)
		n.MarkRead(first.Add(time.Hour))
		assert.True(t, n.IsRead())
		assert.Equal(t, first, *n.ReadAt)
	})
}
