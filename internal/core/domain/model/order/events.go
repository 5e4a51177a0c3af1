package order

import "ordertracker/internal/core/domain/model/kernel"

// Event is a domain event recorded by the Order aggregate. Events are
// accumulated on the aggregate during a business operation and published to
// the event bus only after the enclosing transaction commits.
type Event interface {
	// EventName returns a stable identifier for the event kind.
	EventName() string
}

// CreatedEvent signals that a new order was persisted.
type CreatedEvent struct {
	OrderID kernel.UUID
}

// EventName implements Event.
func (CreatedEvent) EventName() string {
	return "order.created"
}

// StatusChangedEvent signals that an order moved to a new status.
// It is not recorded for no-op self-transitions.
type StatusChangedEvent struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}

// EventName implements Event.
func (StatusChangedEvent) EventName() string {
	return "order.status_changed"
}
