// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read from the database directly, bypassing the aggregate
// layer, and return lightweight response rows shaped for their consumers.
package queries

import (
	"errors"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders that still have thalis to
// deliver, meaning every order not yet in completed status.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s: %d remaining\n", o.Name, o.RemainingQuantity)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve undelivered orders.
// This is a parameterless query that fetches all non-completed orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one undelivered order.
// Name carries the event name for event bookings and the customer name
// otherwise, matching how orders are shown on the tracking board.
type GetActiveOrdersQueryResponse struct {
	ID                kernel.UUID
	Name              string
	RemainingQuantity int
	Status            order.Status
}
