package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultChannelName is used when no channel is configured
const DefaultChannelName = "Produção"

// EventNotifier turns production and billing events into broadcast
// notifications on one channel. The channel is created on first use.
type EventNotifier struct {
	channelRepo      notification.ChannelRepository
	notificationRepo notification.NotificationRepository
	channelName      string
	logger           *zap.Logger

	mu        sync.Mutex
	channelID uuid.UUID
}

// NewEventNotifier creates a handler posting to the named channel
func NewEventNotifier(
	channelRepo notification.ChannelRepository,
	notificationRepo notification.NotificationRepository,
	channelName string,
	logger *zap.Logger,
) *EventNotifier {
	if channelName == "" {
		channelName = DefaultChannelName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventNotifier{
		channelRepo:      channelRepo,
		notificationRepo: notificationRepo,
		channelName:      channelName,
		logger:           logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *EventNotifier) EventTypes() []string {
	return []string{
		production.EventTypeServiceOrderCreated,
		production.EventTypeServiceOrderStatusChanged,
		production.EventTypeReplacementCreated,
		billing.EventTypeInvoiceIssued,
		billing.EventTypeInvoicePaid,
	}
}

// Handle posts the notification for one event. Unknown events are ignored.
func (h *EventNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	title, message, link, ok := describe(event)
	if !ok {
		return nil
	}

	channelID, err := h.channel(ctx)
	if err != nil {
		return fmt.Errorf("resolve notification channel: %w", err)
	}
	n, err := notification.NewNotification(channelID, title, message)
	if err != nil {
		return err
	}
	n.WithLink(link)
	if err := h.notificationRepo.Save(ctx, n); err != nil {
		return fmt.Errorf("save notification: %w", err)
	}

	h.logger.Debug("notification posted",
		zap.String("event_type", event.EventType()),
		zap.String("notification_id", n.ID.String()),
	)
	return nil
}

func describe(event shared.DomainEvent) (title, message, link string, ok bool) {
	switch e := event.(type) {
	case *production.ServiceOrderCreatedEvent:
		return fmt.Sprintf("OS %d criada", e.Number),
			fmt.Sprintf("Nova ordem de serviço de %s", e.ProductType.Label()),
			orderLink(e.OrderID), true
	case *production.ServiceOrderStatusChangedEvent:
		return fmt.Sprintf("OS %d: %s", e.Number, e.NewStatus.Label()),
			fmt.Sprintf("Status alterado de %s para %s", e.OldStatus.Label(), e.NewStatus.Label()),
			orderLink(e.OrderID), true
	case *production.ReplacementCreatedEvent:
		return fmt.Sprintf("Reposição OS %d da OS %d", e.Number, e.OriginalNumber),
			fmt.Sprintf("%s (responsável: %s, R$ %s)", e.Reason, e.Responsible, e.Amount.StringFixed(2)),
			orderLink(e.OrderID), true
	case *billing.InvoiceStatusChangedEvent:
		switch e.EventType() {
		case billing.EventTypeInvoiceIssued:
			return fmt.Sprintf("Fatura %d emitida", e.Number),
				fmt.Sprintf("Total R$ %s", e.Total.StringFixed(2)),
				invoiceLink(e.InvoiceID), true
		case billing.EventTypeInvoicePaid:
			return fmt.Sprintf("Fatura %d paga", e.Number),
				fmt.Sprintf("Total R$ %s", e.Total.StringFixed(2)),
				invoiceLink(e.InvoiceID), true
		}
	}
	return "", "", "", false
}

func orderLink(id uuid.UUID) string   { return "/serviceorder/" + id.String() }
func invoiceLink(id uuid.UUID) string { return "/invoice/" + id.String() }

// channel finds or creates the target channel, caching its id
func (h *EventNotifier) channel(ctx context.Context) (uuid.UUID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channelID != uuid.Nil {
		return h.channelID, nil
	}

	c, err := h.channelRepo.FindByName(ctx, h.channelName)
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrNotFound):
		c, err = notification.NewChannel(h.channelName, "Avisos automáticos de produção e faturamento")
		if err != nil {
			return uuid.Nil, err
		}
		if err := h.channelRepo.Save(ctx, c); err != nil {
			return uuid.Nil, err
		}
		h.logger.Info("notification channel created", zap.String("name", c.Name))
	default:
		return uuid.Nil, err
	}
	h.channelID = c.ID
	return c.ID, nil
}

var _ shared.EventHandler = (*EventNotifier)(nil)
