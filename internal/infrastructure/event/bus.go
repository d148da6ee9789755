package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/flexo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrBusStopped is returned when publishing after Stop
var ErrBusStopped = errors.New("event bus stopped")

const defaultQueueSize = 256

// InMemoryEventBus fans domain events out to registered handlers.
//
// Before Start the bus dispatches synchronously in the caller's goroutine.
// After Start events are queued and handled by a fixed set of workers, so a
// slow notification handler never holds up the HTTP request that saved the
// aggregate. Stop drains the queue before returning.
type InMemoryEventBus struct {
	subs     *Subscriptions
	logger   *zap.Logger
	workers  int

	mu      sync.RWMutex
	queue   chan envelope
	running bool
	stopped bool
	wg      sync.WaitGroup
}

type envelope struct {
	ctx   context.Context
	event shared.DomainEvent
}

// Option configures an InMemoryEventBus
type Option func(*InMemoryEventBus)

// WithWorkers sets the number of dispatch goroutines started by Start
func WithWorkers(n int) Option {
	return func(b *InMemoryEventBus) {
		if n > 0 {
			b.workers = n
		}
	}
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger, opts ...Option) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &InMemoryEventBus{
		subs:    NewSubscriptions(),
		logger:  logger,
		workers: 2,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers events to every handler registered for their type.
// Handler failures are logged and never returned to the publisher.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.stopped {
		return ErrBusStopped
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if !b.running {
			b.dispatch(ctx, ev)
			continue
		}
		// The request context is cancelled once the response is written
		env := envelope{ctx: context.WithoutCancel(ctx), event: ev}
		select {
		case b.queue <- env:
		case <-ctx.Done():
			return fmt.Errorf("enqueue %s: %w", ev.EventType(), ctx.Err())
		}
	}
	return nil
}

// Subscribe registers a handler. Without explicit types the handler's own
// EventTypes are used; an empty list subscribes to everything.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.subs.Add(handler, eventTypes...)
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.subs.Remove(handler)
	b.logger.Debug("handler unsubscribed")
}

// Start launches the dispatch workers
func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}
	if b.stopped {
		return ErrBusStopped
	}
	b.queue = make(chan envelope, defaultQueueSize)
	b.running = true
	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.work(b.queue)
	}
	b.logger.Info("event bus started", zap.Int("workers", b.workers))
	return nil
}

// Stop closes the queue and waits for queued events to be handled or for
// ctx to expire, whichever comes first.
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return nil
	}
	b.stopped = true
	if b.running {
		close(b.queue)
		b.running = false
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("event bus stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus drain: %w", ctx.Err())
	}
}

func (b *InMemoryEventBus) work(queue <-chan envelope) {
	defer b.wg.Done()
	for env := range queue {
		b.dispatch(env.ctx, env.event)
	}
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, ev shared.DomainEvent) {
	for _, handler := range b.subs.For(ev.EventType()) {
		if err := b.dispatchToHandler(ctx, handler, ev); err != nil {
			b.logger.Error("handler failed to process event",
				zap.String("event_type", ev.EventType()),
				zap.String("event_id", ev.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

// dispatchToHandler turns a handler panic into an error
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, ev shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, ev)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
