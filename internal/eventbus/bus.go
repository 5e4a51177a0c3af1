// Package eventbus provides in-process asynchronous dispatch of domain
// events. Command handlers publish events after their transaction commits;
// subscribers such as the notification listener consume them on a dedicated
// dispatcher goroutine, so publishers never wait on subscriber work.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

const defaultQueueSize = 256

var _ ports.EventPublisher = (*Bus)(nil)

// Subscriber consumes domain events delivered by the bus. Handlers run on
// the dispatcher goroutine and must not block indefinitely.
type Subscriber interface {
	HandleEvent(ctx context.Context, event order.Event)
}

// Bus is a single-goroutine event dispatcher backed by a bounded queue.
// Events are delivered to all subscribers in publication order. When the
// queue is full, Publish drops the event and logs a warning instead of
// blocking the caller.
type Bus struct {
	logger      *slog.Logger
	queue       chan order.Event
	subscribers []Subscriber
	quit        chan struct{}
	wg          sync.WaitGroup
	started     atomic.Bool
	stopped     atomic.Bool
}

// NewBus creates a bus with the given queue capacity. A non-positive size
// falls back to the default capacity.
func NewBus(logger *slog.Logger, queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Bus{
		logger: logger.With("component", "eventbus"),
		queue:  make(chan order.Event, queueSize),
		quit:   make(chan struct{}),
	}
}

// Subscribe registers a subscriber. Must be called before Start; calls after
// Start are ignored because the dispatcher reads the subscriber list without
// locking.
func (b *Bus) Subscribe(subscriber Subscriber) {
	if b.started.Load() {
		b.logger.Warn("subscribe after start ignored")
		return
	}

	b.subscribers = append(b.subscribers, subscriber)
}

// Start launches the dispatcher goroutine. The given context is the base
// context for subscriber invocations, request contexts from publishers are
// deliberately not propagated so that cancelled requests do not cancel
// notification work.
func (b *Bus) Start(ctx context.Context) {
	if !b.started.CompareAndSwap(false, true) {
		return
	}

	b.wg.Add(1)
	go b.dispatch(ctx)
}

// Stop shuts the bus down. Events already queued are drained and delivered
// before Stop returns; events published after Stop are dropped.
func (b *Bus) Stop() {
	if !b.stopped.CompareAndSwap(false, true) {
		return
	}

	close(b.quit)
	b.wg.Wait()
}

// Publish enqueues events for asynchronous delivery. Never blocks: when the
// queue is full or the bus is stopped, events are dropped with a warning.
func (b *Bus) Publish(_ context.Context, events ...order.Event) {
	for _, event := range events {
		if b.stopped.Load() {
			b.logger.Warn("event dropped, bus is stopped", "event", event.EventName())
			continue
		}

		select {
		case b.queue <- event:
		default:
			b.logger.Warn("event dropped, queue is full", "event", event.EventName())
		}
	}
}

func (b *Bus) dispatch(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.queue:
			b.deliver(ctx, event)
		case <-b.quit:
			b.drain(ctx)
			return
		}
	}
}

func (b *Bus) drain(ctx context.Context) {
	for {
		select {
		case event := <-b.queue:
			b.deliver(ctx, event)
		default:
			return
		}
	}
}

// deliver hands an event to every subscriber, isolating panics so a single
// faulty subscriber cannot kill the dispatcher.
func (b *Bus) deliver(ctx context.Context, event order.Event) {
	for _, subscriber := range b.subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("subscriber panicked",
						"event", event.EventName(),
						"panic", r,
					)
				}
			}()

			subscriber.HandleEvent(ctx, event)
		}()
	}
}
