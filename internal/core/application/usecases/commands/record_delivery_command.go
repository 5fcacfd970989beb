package commands

import (
	"errors"
	"strings"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand represents a request to record a partial or full
// delivery against an order. Note is optional; the deliverer name and
// quantity are validated up front, while the remaining-quantity check is
// left to the aggregate which knows the order's current state.
//
// Example:
//
//	cmd, err := NewRecordDeliveryCommand(orderID, 4, "Ravi", "morning batch")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewRecordDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record delivery: %w", err)
//	}
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	quantity    int
	deliveredBy string
	note        string

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a delivery.
// The deliverer name is checked before the quantity so that a request
// failing both reports the missing deliverer first.
func NewRecordDeliveryCommand(
	orderID kernel.UUID,
	quantity int,
	deliveredBy string,
	note string,
) (RecordDeliveryCommand, error) {
	deliveryCommand := RecordDeliveryCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setDeliveredBy(deliveredBy),
		deliveryCommand.setQuantity(quantity),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordDeliveryCommandIsNotConstructed if validation fails.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered against.
func (c RecordDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Quantity returns the number of units delivered.
func (c RecordDeliveryCommand) Quantity() int {
	return c.quantity
}

// DeliveredBy returns the name of the person who made the delivery.
func (c RecordDeliveryCommand) DeliveredBy() string {
	return c.deliveredBy
}

// Note returns the optional free-text note for the delivery.
func (c RecordDeliveryCommand) Note() string {
	return c.note
}

func (c *RecordDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordDeliveryCommand) setDeliveredBy(deliveredBy string) error {
	deliveredBy = strings.TrimSpace(deliveredBy)
	if deliveredBy == "" {
		return order.ErrDelivererIsRequired
	}

	c.deliveredBy = deliveredBy
	return nil
}

func (c *RecordDeliveryCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return order.ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
