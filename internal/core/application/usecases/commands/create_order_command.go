package commands

import (
	"errors"
	"strings"
	"time"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via one of its constructors",
	)
	ErrCustomerNameIsRequired = errors.New("name is required")
	ErrEventNameIsRequired    = errors.New("eventName is required")
	ErrBookerNameIsRequired   = errors.New("bookerName is required")
	ErrQuantityIsNotPositive  = errors.New("quantity must be greater than 0")
	ErrEventDateIsRequired    = errors.New("eventDate is required")
)

// CreateOrderCommand represents a request to register a new thali order,
// either a walk-in regular order or an event booking.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	phone, _ := kernel.NewPhone("9876543210")
//	cmd, err := NewCreateRegularOrderCommand(orderID, "Ravi Kumar", phone, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderType    order.Type
	customerName string
	eventName    string
	bookerName   string
	phone        kernel.Phone
	quantity     int
	eventAt      time.Time

	guard guard.ConstructorGuard
}

// NewCreateRegularOrderCommand creates a command for a walk-in thali order.
// Validates that the order ID and phone are valid, the customer name is not
// blank, and the thali count is positive.
func NewCreateRegularOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone kernel.Phone,
	thaliCount int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderType: order.TypeRegular,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setName(customerName, ErrCustomerNameIsRequired, func(v string) { orderCommand.customerName = v }),
		orderCommand.setPhone(phone),
		orderCommand.setQuantity(thaliCount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// NewCreateEventOrderCommand creates a command for an event booking.
// Validates that the order ID and phone are valid, the event and booker names
// are not blank, the guest count is positive, and the event date is set.
func NewCreateEventOrderCommand(
	orderID kernel.UUID,
	eventName string,
	bookerName string,
	phone kernel.Phone,
	guestCount int,
	eventAt time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderType: order.TypeEvent,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setName(eventName, ErrEventNameIsRequired, func(v string) { orderCommand.eventName = v }),
		orderCommand.setName(bookerName, ErrBookerNameIsRequired, func(v string) { orderCommand.bookerName = v }),
		orderCommand.setPhone(phone),
		orderCommand.setQuantity(guestCount),
		orderCommand.setEventAt(eventAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType reports whether this is a regular order or an event booking.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerName returns the walk-in customer's name. Empty for event bookings.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// EventName returns the event's name. Empty for regular orders.
func (c CreateOrderCommand) EventName() string {
	return c.eventName
}

// BookerName returns the event booker's name. Empty for regular orders.
func (c CreateOrderCommand) BookerName() string {
	return c.bookerName
}

// Phone returns the contact number for the order.
func (c CreateOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Quantity returns the thali count or guest count for the order.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// EventAt returns the scheduled event date. Zero for regular orders.
func (c CreateOrderCommand) EventAt() time.Time {
	return c.eventAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setName(value string, requiredErr error, assign func(string)) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return requiredErr
	}

	assign(value)
	return nil
}

func (c *CreateOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsNotPositive
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setEventAt(eventAt time.Time) error {
	if eventAt.IsZero() {
		return ErrEventDateIsRequired
	}

	c.eventAt = eventAt
	return nil
}
