package commands

import (
	"context"
	"time"

	"thalitrack/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the right aggregate variant for the command's order type and
// persists it with a creation timestamp in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateRegularOrderCommand(kernel.NewUUID(), "Ravi Kumar", phone, 5)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Stamps the order with the current UTC time and stores it in pending status.
// Uses a transaction to ensure the order is properly persisted or rolled back
// on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	createdAt := time.Now().UTC()

	var aggregate *order.Order
	var err error
	if cmd.OrderType() == order.TypeEvent {
		aggregate, err = order.NewEventOrder(
			cmd.OrderID(),
			cmd.EventName(),
			cmd.BookerName(),
			cmd.Phone(),
			cmd.Quantity(),
			cmd.EventAt(),
			createdAt,
		)
	} else {
		aggregate, err = order.NewRegularOrder(
			cmd.OrderID(),
			cmd.CustomerName(),
			cmd.Phone(),
			cmd.Quantity(),
			createdAt,
		)
	}
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
