package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func orderCreated() *production.ServiceOrderCreatedEvent {
	return &production.ServiceOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(production.EventTypeServiceOrderCreated, production.AggregateTypeServiceOrder, uuid.New()),
		OrderID:         uuid.New(),
		Number:          1042,
		ProductType:     pricing.ProductDieCutBlock,
	}
}

func TestEventNotifier_CreatesChannelOnce(t *testing.T) {
	ctx := context.Background()
	channels := new(MockChannelRepository)
	notifications := new(MockNotificationRepository)
	channels.On("FindByName", ctx, "Produção").Return(nil, shared.NotFound("Channel")).Once()
	channels.On("Save", ctx, mock.AnythingOfType("*notification.Channel")).Return(nil).Once()

	var saved []*notification.Notification
	notifications.On("Save", ctx, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(*notification.Notification)) }).
		Return(nil)

	h := NewEventNotifier(channels, notifications, "", zaptest.NewLogger(t))
	ev := orderCreated()
	require.NoError(t, h.Handle(ctx, ev))
	require.NoError(t, h.Handle(ctx, ev))

	require.Len(t, saved, 2)
	assert.Equal(t, "OS 1042 criada", saved[0].Title)
	assert.Equal(t, "Nova ordem de serviço de Forma", saved[0].Message)
	assert.Equal(t, "/serviceorder/"+ev.OrderID.String(), saved[0].Link)
	assert.Nil(t, saved[0].RecipientID)
	assert.Equal(t, saved[0].ChannelID, saved[1].ChannelID)
	channels.AssertExpectations(t)
}

func TestEventNotifier_Messages(t *testing.T) {
	invoiceID := uuid.New()
	paid := &billing.InvoiceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(billing.EventTypeInvoicePaid, billing.AggregateTypeInvoice, invoiceID),
		InvoiceID:       invoiceID,
		Number:          3,
		Total:           decimal.RequireFromString("1250.5"),
	}
	cancelled := &billing.InvoiceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(billing.EventTypeInvoiceCancelled, billing.AggregateTypeInvoice, invoiceID),
	}
	status := &production.ServiceOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(production.EventTypeServiceOrderStatusChanged, production.AggregateTypeServiceOrder, uuid.New()),
		Number:          7,
		OldStatus:       production.StatusInProduction,
		NewStatus:       production.StatusFinished,
	}

	title, message, link, ok := describe(paid)
	require.True(t, ok)
	assert.Equal(t, "Fatura 3 paga", title)
	assert.Equal(t, "Total R$ 1250.50", message)
	assert.Equal(t, "/invoice/"+invoiceID.String(), link)

	title, message, _, ok = describe(status)
	require.True(t, ok)
	assert.Equal(t, "OS 7: Finalizada", title)
	assert.Equal(t, "Status alterado de Em produção para Finalizada", message)

	_, _, _, ok = describe(cancelled)
	assert.False(t, ok)
}

func TestEventNotifier_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	channels := new(MockChannelRepository)
	channels.On("FindByName", ctx, "Avisos").Return(nil, errors.New("db down"))

	h := NewEventNotifier(channels, new(MockNotificationRepository), "Avisos", nil)
	err := h.Handle(ctx, orderCreated())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
