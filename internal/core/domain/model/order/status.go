package order

import (
	"fmt"

	"thalitrack/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Status is never stored independently of the delivery counters: it is
// always derived from the remaining and total quantities via DeriveStatus,
// which is the single source of truth everywhere in the system. This keeps
// the state machine one-directional:
//
//	Pending ──> PartiallyDelivered ──> Completed
//	    │                                  ▲
//	    └──────────────────────────────────┘
//	  (single delivery covering the full quantity)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending indicates that no deliveries have been recorded yet.
	StatusPending

	// StatusPartiallyDelivered indicates that some, but not all, of the
	// order's quantity has been delivered.
	StatusPartiallyDelivered

	// StatusCompleted indicates the whole quantity has been delivered.
	// This is a final state with no further transitions allowed.
	StatusCompleted
)

// DeriveStatus computes the fulfillment status from the remaining and total
// quantities. It is a pure function: the same inputs always yield the same
// status. No component may set an order's status by any other means.
//
//	remaining == total -> StatusPending
//	remaining == 0     -> StatusCompleted
//	otherwise          -> StatusPartiallyDelivered
func DeriveStatus(remaining, total int) Status {
	switch {
	case remaining == total:
		return StatusPending
	case remaining == 0:
		return StatusCompleted
	default:
		return StatusPartiallyDelivered
	}
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "unknown",
		StatusPending:            "pending",
		StatusPartiallyDelivered: "partially_delivered",
		StatusCompleted:          "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:            "pending",
		StatusPartiallyDelivered: "partially_delivered",
		StatusCompleted:          "completed",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reading statuses from persistence or request parameters.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: StatusPending, StatusPartiallyDelivered, StatusCompleted.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status
// ("pending", "partially_delivered", "completed").
// Returns "unknown" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
