package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of a kitchen order.
// It implements a strictly linear state machine: every order moves through
//
//	received ──> preparing ──> ready ──> served
//
// with no skips and no reverse transitions. Served is the final state;
// after it the order leaves the active store.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned at order intake.
	// Orders in this status are waiting for a cook to start preparation.
	Received

	// Preparing indicates a cook has started working on the order.
	// Only orders in this status are evaluated against their SLA
	// by the timing monitor.
	Preparing

	// Ready indicates preparation has finished. The transition into
	// Ready is the moment the cooking history record is written.
	Ready

	// Served indicates the order has been handed over.
	// This is a final state with no further transitions allowed.
	Served
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized values, including "unknown".
// Used when accepting target statuses from external callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Preparing, Ready, Served.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor of the status.
// ok is false when the status is terminal (Served) or invalid.
func (s Status) Next() (next Status, ok bool) {
	switch s {
	case Received:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Served, true
	default:
		return Unknown, false
	}
}

// IsTerminal reports whether the status has no successor.
func (s Status) IsTerminal() bool {
	return s == Served
}

// TransitionTo validates that target is the immediate successor of the
// current status and returns it.
//
// Valid transitions:
//   - Received -> Preparing
//   - Preparing -> Ready
//   - Ready -> Served
//
// Every other combination, including skipping ahead (Received -> Ready)
// and moving backward (Served -> Preparing), returns an
// errs.InvalidTransitionError. Re-asserting the current status is not a
// transition; callers treat it as an idempotent no-op before calling this
// method.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := s.Next()
	if !ok || next != target {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
