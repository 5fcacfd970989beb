package kernel

import (
	"fmt"
	"regexp"

	"thalitrack/internal/pkg/errs"
	"thalitrack/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly initialized Phone.
// Phones must be created using the NewPhone constructor to ensure validity.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Phone represents a validated contact number for a booking.
// Phone is an immutable value object that ensures the number is exactly
// ten digits with no separators or country prefix.
// The zero value of Phone is invalid and will fail validation - use NewPhone to create instances.
//
// Example:
//
//	phone, err := kernel.NewPhone("9876543210")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(phone) // Output: 9876543210
type Phone struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewPhone creates a new Phone from the given number.
// The number must consist of exactly ten decimal digits.
// Returns an error describing the offending input otherwise.
func NewPhone(number string) (Phone, error) {
	if number == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	if !phonePattern.MatchString(number) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a 10-digit number", number))
	}

	return Phone{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// String returns the digits of the phone number.
func (p Phone) String() string {
	return p.number
}

// IsEqual compares two phone numbers for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// Validate checks if the Phone was properly constructed.
// Returns ErrPhoneIsNotConstructed for zero values.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
