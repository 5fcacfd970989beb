package queries

import (
	"context"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves undelivered orders from the database.
// Filters out completed orders to show the kitchen's remaining workload.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-completed orders.
// Returns orders in pending or partially delivered status, newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			customer_name,
			event_name,
			remaining_quantity,
			status
		FROM orders
		WHERE status != ?
		ORDER BY created_at DESC
	`, order.StatusCompleted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var orderType, customerName, eventName, status string
		var remaining int

		err = rows.Scan(
			&id,
			&orderType,
			&customerName,
			&eventName,
			&remaining,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		name := customerName
		if orderType == order.TypeEvent.String() {
			name = eventName
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:                orderID,
			Name:              name,
			RemainingQuantity: remaining,
			Status:            orderStatus,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
