package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidStatusTransition is the sentinel wrapped by
	// InvalidTransitionError for classification with errors.Is.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// InvalidTransitionError indicates a status change that the state machine
// does not allow. The HTTP adapter maps it to 409 Conflict.
type InvalidTransitionError struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// order and transition.
func NewInvalidTransitionError(orderID kernel.UUID, from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		OrderID: orderID,
		From:    from,
		To:      to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition for order %s: %s -> %s", e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation to a terminal status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-blank customer id
//   - createdAt is set once and never exceeds updatedAt
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate records domain events for lifecycle changes. Callers drain
// them via Events() after the persistence transaction commits, so that
// notifications are dispatched only for durable state changes.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set at creation and immutable afterwards
	createdAt time.Time

	// updatedAt is touched on every mutation
	updatedAt time.Time

	// events holds domain events recorded since construction or restore
	events []Event

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a brand-new order, ensuring all business invariants hold.
//
// The order starts in Created status with both timestamps set to the current
// time, and records a CreatedEvent for post-commit publication.
//
// Returns a ValueIsRequiredError if customerID is empty or whitespace-only.
func NewOrder(id kernel.UUID, customerID string) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	o.recordEvent(CreatedEvent{OrderID: o.id})

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recording any
// events. All invariants are re-validated so that corrupted rows surface as
// errors instead of invalid aggregates.
func RestoreOrder(id kernel.UUID, customerID string, status Status, createdAt, updatedAt time.Time) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus applies a status transition to the order.
//
// Transition rules, evaluated in order:
//  1. A transition to the current status is an idempotent no-op: the order is
//     left untouched (updatedAt included), no event is recorded, and changed
//     is false. This holds for terminal statuses as well.
//  2. Created -> Completed and Created -> Cancelled are allowed: the status
//     and updatedAt are updated and a StatusChangedEvent is recorded.
//  3. Everything else fails with InvalidTransitionError and leaves the order
//     unmodified.
//
// The returned changed flag tells the caller whether anything needs to be
// persisted and published.
func (o *Order) ChangeStatus(to Status) (changed bool, err error) {
	if err := to.Validate(); err != nil {
		return false, err
	}

	if o.status == to {
		return false, nil
	}

	if !o.status.CanTransitionTo(to) {
		return false, NewInvalidTransitionError(o.id, o.status, to)
	}

	from := o.status
	o.status = to
	o.updatedAt = time.Now().UTC()
	o.recordEvent(StatusChangedEvent{OrderID: o.id, From: from, To: to})

	return true, nil
}

// Events returns a copy of the domain events recorded on the aggregate.
// Callers publish them only after the enclosing transaction commits.
func (o *Order) Events() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents discards recorded events, typically after publication.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) recordEvent(event Event) {
	o.events = append(o.events, event)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
// Whitespace-only values are rejected alongside the empty string.
func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	if createdAt.After(updatedAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("createdAt %s is after updatedAt %s", createdAt, updatedAt))
	}

	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
