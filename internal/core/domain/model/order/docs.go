// Package order provides domain entities and business logic for order
// tracking. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Event: Domain events recorded by the aggregate and published after commit
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-blank customer id
//   - Order status follows a strict workflow: CREATED -> COMPLETED or CREATED -> CANCELLED
//   - COMPLETED and CANCELLED are terminal states with no outgoing transitions
//   - A transition to the current status is a silent no-op and records no event
//   - createdAt never exceeds updatedAt
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
