// Package ports defines repository interfaces for the order tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and listing orders with their
// complete delivery history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its delivery history with the aggregate's current one.
	// The order must exist in the repository and be valid.
	//
	// Concurrent updates to the same order are resolved last-write-wins
	// at the store; the domain performs no conflict detection.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its deliveries.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the full order collection, newest first.
	// Used by the browsing, analytics, and export flows, which narrow
	// the collection in memory.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
