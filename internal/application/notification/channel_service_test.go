package notification

import (
	"context"
	"testing"

	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChannelService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an inactive channel on request", func(t *testing.T) {
		channels := new(MockChannelRepository)
		channels.On("ExistsByName", ctx, "Faturamento").Return(false, nil)
		channels.On("Save", ctx, mock.AnythingOfType("*notification.Channel")).Return(nil)
		inactive := false

		resp, err := NewChannelService(channels, nil).Create(ctx, ChannelRequest{Name: " Faturamento ", Active: &inactive})

		require.NoError(t, err)
		assert.Equal(t, "Faturamento", resp.Name)
		assert.False(t, resp.Active)
	})

	t.Run("duplicate name", func(t *testing.T) {
		channels := new(MockChannelRepository)
		channels.On("ExistsByName", ctx, "Produção").Return(true, nil)

		_, err := NewChannelService(channels, nil).Create(ctx, ChannelRequest{Name: "Produção"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestChannelService_Update(t *testing.T) {
	ctx := context.Background()
	channel, err := notification.NewChannel("Produção", "")
	require.NoError(t, err)
	channel.MarkPersisted()

	channels := new(MockChannelRepository)
	channels.On("FindByID", ctx, channel.ID).Return(channel, nil)
	channels.On("Save", ctx, channel).Return(nil)

	// a case-only rename keeps the name and skips the uniqueness check
	resp, err := NewChannelService(channels, nil).Update(ctx, channel.ID, ChannelRequest{Name: "PRODUÇÃO", Description: "chão de fábrica"})

	require.NoError(t, err)
	assert.Equal(t, "PRODUÇÃO", resp.Name)
	assert.Equal(t, 2, resp.Version)
	channels.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
}

func TestChannelService_Delete(t *testing.T) {
	ctx := context.Background()
	channel, err := notification.NewChannel("Produção", "")
	require.NoError(t, err)

	t.Run("in use", func(t *testing.T) {
		channels := new(MockChannelRepository)
		notifications := new(MockNotificationRepository)
		channels.On("FindByID", ctx, channel.ID).Return(channel, nil)
		notifications.On("CountByChannel", ctx, channel.ID).Return(int64(3), nil)

		err := NewChannelService(channels, notifications).Delete(ctx, channel.ID)

		assert.ErrorIs(t, err, shared.NewDomainError("IN_USE", ""))
		channels.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("empty channel", func(t *testing.T) {
		channels := new(MockChannelRepository)
		notifications := new(MockNotificationRepository)
		channels.On("FindByID", ctx, channel.ID).Return(channel, nil)
		notifications.On("CountByChannel", ctx, channel.ID).Return(int64(0), nil)
		channels.On("Delete", ctx, channel.ID).Return(nil)

		require.NoError(t, NewChannelService(channels, notifications).Delete(ctx, channel.ID))
		channels.AssertExpectations(t)
	})
}
