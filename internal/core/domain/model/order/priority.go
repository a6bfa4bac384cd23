package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Priority marks how urgently an order should be worked.
// It is settable only at creation.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default priority for new orders.
	PriorityNormal

	// PriorityUrgent marks orders that should jump the line.
	PriorityUrgent
)

func getValidPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityNormal: "normal",
		PriorityUrgent: "urgent",
	}
}

// PriorityFromString parses a priority from its string representation.
// An empty string defaults to PriorityNormal.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getValidPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
