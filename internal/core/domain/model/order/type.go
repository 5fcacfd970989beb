package order

import (
	"fmt"

	"thalitrack/internal/pkg/errs"
)

// Type distinguishes the two booking variants tracked by the system.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeRegular is a booking keyed by customer name and phone
	// with a fixed thali count.
	TypeRegular

	// TypeEvent is a booking keyed by event name, date and time
	// with a fixed guest count.
	TypeEvent
)

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeRegular: "regular",
		TypeEvent:   "event",
	}
}

// TypeFromString parses an order type from its string representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the type ("regular", "event").
// Returns "unknown" for invalid type values.
func (t Type) String() string {
	if str, ok := getValidTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
