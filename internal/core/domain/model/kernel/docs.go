// Package kernel provides shared value objects used across the order
// tracking domain model.
//
// The package includes:
//   - UUID: A validated unique identifier wrapping github.com/google/uuid
//   - Phone: A ten digit contact number for bookings
//
// Value objects in this package are immutable, compared by value, and can
// only be created through their constructor functions. Zero values fail
// validation, which keeps improperly initialized identifiers and contact
// numbers out of the domain model.
package kernel
