package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// EventPublisher hands committed domain events to the asynchronous dispatch
// machinery. Publish must be called only after the transaction that produced
// the events has committed; it never blocks on subscriber work and never
// reports subscriber failures back to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event)
}
