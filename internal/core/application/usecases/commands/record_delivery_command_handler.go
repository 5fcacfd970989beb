package commands

import (
	"context"
	"time"
)

// RecordDeliveryCommandHandler handles the business logic for recording
// deliveries against existing orders. Uses transactional operations so the
// delivery and the order's updated counters are persisted atomically.
//
// Example:
//
//	handler := NewRecordDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewRecordDeliveryCommand(orderID, 4, "Ravi", "")
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to record delivery: %v", err)
//	}
type RecordDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordDeliveryCommandHandler creates a handler for delivery recording.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecordDeliveryCommandHandler(uowFactory OrderUoWFactory) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the RecordDeliveryCommand within a transaction.
// Retrieves the order, records the delivery against it, and persists the
// resulting order state. Over-delivery surfaces as order.ErrOverDelivery and
// leaves the stored order untouched.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	delivered, err := aggregate.RecordDelivery(cmd.Quantity(), cmd.DeliveredBy(), cmd.Note(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, delivered); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
