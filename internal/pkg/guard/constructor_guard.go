// Package guard provides a defensive programming helper that ensures value
// objects and entities are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so domain invariants established in constructors
// cannot be bypassed by direct struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil error is passed as the validation
// error. This ensures validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether an object was created through its
// constructor. The zero value fails validation; only values produced by
// NewConstructorGuard pass.
//
// Example usage:
//
//	var ErrBookingNotConstructed = errors.New("Booking must be created via NewBooking")
//
//	type Booking struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBooking(name string) (Booking, error) {
//	    if name == "" {
//	        return Booking{}, errors.New("name is required")
//	    }
//	    return Booking{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b Booking) Validate() error {
//	    return b.guard.Validate(ErrBookingNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
