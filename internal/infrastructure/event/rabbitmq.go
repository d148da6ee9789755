package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flexo/backend/internal/domain/shared"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Message is the JSON body forwarded to the broker
type Message struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// amqpChannel is the subset of *amqp.Channel the forwarder needs
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQForwarder is an event handler that forwards domain events to a
// topic exchange. The routing key is the configured prefix followed by the
// dotted, lowercased aggregate and event type, e.g. flexo.serviceorder.serviceordercreated.
type RabbitMQForwarder struct {
	conn       *amqp.Connection
	ch         amqpChannel
	exchange   string
	routingKey string
	eventTypes []string
	logger     *zap.Logger
	mu         sync.Mutex
}

// DialRabbitMQ connects to the broker and declares the exchange
func DialRabbitMQ(url, exchange, routingKey string, logger *zap.Logger, eventTypes ...string) (*RabbitMQForwarder, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	f, err := newRabbitMQForwarder(ch, exchange, routingKey, logger, eventTypes...)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	f.conn = conn
	return f, nil
}

func newRabbitMQForwarder(ch amqpChannel, exchange, routingKey string, logger *zap.Logger, eventTypes ...string) (*RabbitMQForwarder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exchange == "" {
		return nil, fmt.Errorf("rabbitmq exchange is required")
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &RabbitMQForwarder{
		ch:         ch,
		exchange:   exchange,
		routingKey: strings.Trim(routingKey, "."),
		eventTypes: eventTypes,
		logger:     logger,
	}, nil
}

// EventTypes implements shared.EventHandler
func (f *RabbitMQForwarder) EventTypes() []string {
	return f.eventTypes
}

// Handle publishes the event as a persistent JSON message
func (f *RabbitMQForwarder) Handle(ctx context.Context, ev shared.DomainEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.EventType(), err)
	}
	body, err := json.Marshal(Message{
		EventID:       ev.EventID().String(),
		EventType:     ev.EventType(),
		AggregateType: ev.AggregateType(),
		AggregateID:   ev.AggregateID().String(),
		OccurredAt:    ev.OccurredAt().UTC(),
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	f.mu.Lock()
	defer f.mu.Unlock()

	err = f.ch.PublishWithContext(ctx, f.exchange, f.RoutingKey(ev), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    ev.EventID().String(),
		Timestamp:    ev.OccurredAt().UTC(),
		Type:         ev.EventType(),
		Headers: amqp.Table{
			"x-source": "flexo-backend",
		},
		Body: body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.EventType(), err)
	}
	f.logger.Debug("event forwarded",
		zap.String("event_type", ev.EventType()),
		zap.String("event_id", ev.EventID().String()),
	)
	return nil
}

// RoutingKey builds the topic routing key for an event
func (f *RabbitMQForwarder) RoutingKey(ev shared.DomainEvent) string {
	parts := make([]string, 0, 3)
	if f.routingKey != "" {
		parts = append(parts, f.routingKey)
	}
	parts = append(parts, strings.ToLower(ev.AggregateType()), strings.ToLower(ev.EventType()))
	return strings.Join(parts, ".")
}

// Close closes the channel and the connection
func (f *RabbitMQForwarder) Close() error {
	var err error
	if f.ch != nil {
		err = f.ch.Close()
	}
	if f.conn != nil {
		if cerr := f.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

var _ shared.EventHandler = (*RabbitMQForwarder)(nil)
