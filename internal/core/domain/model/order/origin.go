package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Origin identifies where an order came from. It is set at intake and
// never changes afterwards.
type Origin int

const (
	// OriginUnknown represents an invalid or undefined origin.
	OriginUnknown Origin = iota

	// OriginDineIn is an order placed at a table inside the restaurant.
	OriginDineIn

	// OriginTakeaway is an order picked up at the counter.
	OriginTakeaway

	// OriginDelivery is an order handed to a delivery service.
	OriginDelivery
)

func getValidOriginStrings() map[Origin]string {
	return map[Origin]string{
		OriginDineIn:   "dine_in",
		OriginTakeaway: "takeaway",
		OriginDelivery: "delivery",
	}
}

// OriginFromString parses an origin from its string representation.
func OriginFromString(s string) (Origin, error) {
	for origin, str := range getValidOriginStrings() {
		if str == s {
			return origin, nil
		}
	}
	return OriginUnknown, errs.NewValueIsInvalidErrorWithCause(
		"origin",
		fmt.Errorf("%q is not a valid origin", s),
	)
}

// Validate checks if the Origin value is valid.
func (o Origin) Validate() error {
	if _, ok := getValidOriginStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"origin",
			fmt.Errorf("%d is not a valid origin", o),
		)
	}
	return nil
}

// String returns the human-readable name of the origin.
func (o Origin) String() string {
	if str, ok := getValidOriginStrings()[o]; ok {
		return str
	}
	return "unknown"
}
