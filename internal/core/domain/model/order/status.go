package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strict two-level state machine: Created is the only
// non-terminal state, and Completed and Cancelled accept no outgoing
// transitions.
//
// State transitions:
//
//	Created ──┬──> Completed
//	          └──> Cancelled
//
// Status is a value object that validates state transitions and provides
// the wire-format string representations used by the API and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned to every new order.
	// It is the only status with outgoing transitions.
	Created

	// Completed indicates the order was fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was withdrawn before fulfillment.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire-format status token into a Status value.
// Tokens match the API enum exactly: "CREATED", "COMPLETED", "CANCELLED".
//
// Returns a ValueIsInvalidError for any other input, including lower-case
// variants and the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// Returns "CREATED", "COMPLETED", or "CANCELLED" for valid statuses and
// "UNKNOWN" for invalid status values. Implements fmt.Stringer and is safe
// to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status accepts no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo checks whether a transition from the receiver to the given
// status is allowed by the state machine. A transition to the same status is
// not evaluated here; the aggregate treats it as a no-op before consulting
// the state machine.
//
// Allowed transitions:
//   - Created -> Completed
//   - Created -> Cancelled
func (s Status) CanTransitionTo(to Status) bool {
	return s == Created && (to == Completed || to == Cancelled)
}
