package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewRegularOrder, NewEventOrder, or RestoreOrder")

	// ErrOverDelivery is the wrap target for *OverDeliveryError.
	// Callers classify over-delivery failures with errors.Is against this value.
	ErrOverDelivery = errors.New("delivery exceeds remaining quantity")
)

// OverDeliveryError indicates an attempt to deliver more units than the
// order has remaining. The order is left untouched when this is returned.
type OverDeliveryError struct {
	// Requested is the quantity the caller tried to deliver.
	Requested int

	// Remaining is the order's remaining quantity at the time of the attempt.
	Remaining int
}

func (e *OverDeliveryError) Error() string {
	return fmt.Sprintf("cannot deliver %d units, only %d remaining", e.Requested, e.Remaining)
}

func (e *OverDeliveryError) Unwrap() error {
	return ErrOverDelivery
}

// Order represents a restaurant booking in the system. It is the aggregate
// root that manages the fulfillment lifecycle from creation through partial
// deliveries to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Total quantity is positive and fixed at creation
//   - totalDelivered + remainingQuantity == totalQuantity after every step
//   - remainingQuantity is non-increasing; deliveries are never reversed
//   - Status is always DeriveStatus(remainingQuantity, totalQuantity)
//   - Can only be created through its factory methods
//
// An Order is treated as an immutable value: RecordDelivery returns the
// next state and never mutates the receiver. The struct uses private fields
// to ensure encapsulation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderType distinguishes regular thali orders from event bookings
	orderType Type

	// customerName is the customer for regular orders (empty for events)
	customerName string

	// eventName and bookerName describe event bookings (empty for regular)
	eventName  string
	bookerName string

	// phone is the contact number: the customer's for regular orders,
	// the booker's mobile for events
	phone kernel.Phone

	// eventAt is the scheduled date and time of an event booking
	eventAt time.Time

	// totalQuantity is the original order size (thalis or guests), fixed at creation
	totalQuantity int

	// remainingQuantity counts undelivered units, 0..totalQuantity
	remainingQuantity int

	// totalDelivered counts delivered units across all deliveries
	totalDelivered int

	// deliveries holds fulfillment records in insertion order (oldest first)
	deliveries []Delivery

	// status is the fulfillment state derived from the counters
	status Status

	// createdAt is the creation timestamp (immutable)
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewRegularOrder creates a regular thali order with validation.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerName: The customer's name (must be non-empty)
//   - phone: The customer's validated contact number
//   - thaliCount: Number of thalis ordered (must be at least 1)
//   - createdAt: Creation timestamp assigned by the caller
//
// The order starts with the full quantity remaining, no deliveries, and
// StatusPending.
func NewRegularOrder(
	id kernel.UUID,
	customerName string,
	phone kernel.Phone,
	thaliCount int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderType:     TypeRegular,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName("name", customerName, func(v string) { o.customerName = v }),
		o.setPhone(phone),
		o.setTotalQuantity("thaliCount", thaliCount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.remainingQuantity = o.totalQuantity
	o.status = DeriveStatus(o.remainingQuantity, o.totalQuantity)
	return o, nil
}

// NewEventOrder creates an event booking with validation.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - eventName: The event's name (must be non-empty)
//   - bookerName: The person booking the event (must be non-empty)
//   - phone: The booker's validated mobile number
//   - guestCount: Expected number of guests (must be at least 1)
//   - eventAt: Scheduled date and time (must not lie before createdAt)
//   - createdAt: Creation timestamp assigned by the caller
//
// The order starts with the full quantity remaining, no deliveries, and
// StatusPending.
func NewEventOrder(
	id kernel.UUID,
	eventName string,
	bookerName string,
	phone kernel.Phone,
	guestCount int,
	eventAt time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderType:     TypeEvent,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName("eventName", eventName, func(v string) { o.eventName = v }),
		o.setName("bookerName", bookerName, func(v string) { o.bookerName = v }),
		o.setPhone(phone),
		o.setTotalQuantity("guestCount", guestCount),
		o.setCreatedAt(createdAt),
		o.setEventAt(eventAt),
	); err != nil {
		return nil, err
	}

	o.remainingQuantity = o.totalQuantity
	o.status = DeriveStatus(o.remainingQuantity, o.totalQuantity)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation-time rules (an event booking's date may legitimately be in the
// past by the time it is reloaded). It still enforces the structural
// invariants: the delivery quantities must sum to totalDelivered, and
// totalDelivered must not exceed totalQuantity. Status is re-derived from
// the counters, never trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	customerName string,
	eventName string,
	bookerName string,
	phone kernel.Phone,
	eventAt time.Time,
	totalQuantity int,
	deliveries []Delivery,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		phone.Validate(),
	); err != nil {
		return nil, err
	}

	if totalQuantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalQuantity",
			fmt.Errorf("%d is not at least 1", totalQuantity))
	}

	totalDelivered := 0
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		totalDelivered += d.Quantity()
	}

	if totalDelivered > totalQuantity {
		return nil, errs.NewValueIsOutOfRangeError("totalDelivered", totalDelivered, 0, totalQuantity)
	}

	remaining := totalQuantity - totalDelivered
	return &Order{
		id:                id,
		orderType:         orderType,
		customerName:      customerName,
		eventName:         eventName,
		bookerName:        bookerName,
		phone:             phone,
		eventAt:           eventAt,
		totalQuantity:     totalQuantity,
		remainingQuantity: remaining,
		totalDelivered:    totalDelivered,
		deliveries:        slices.Clone(deliveries),
		status:            DeriveStatus(remaining, totalQuantity),
		createdAt:         createdAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the booking variant (regular or event).
func (o *Order) Type() Type {
	return o.orderType
}

// CustomerName returns the customer's name for regular orders.
// Empty for event bookings.
func (o *Order) CustomerName() string {
	return o.customerName
}

// EventName returns the event's name for event bookings.
// Empty for regular orders.
func (o *Order) EventName() string {
	return o.eventName
}

// BookerName returns the person who booked the event.
// Empty for regular orders.
func (o *Order) BookerName() string {
	return o.bookerName
}

// DisplayName returns the name an order is presented and searched under:
// the customer's name for regular orders, the event's name for events.
// All call sites that need "the name" of an order go through this accessor.
func (o *Order) DisplayName() string {
	if o.orderType == TypeEvent {
		return o.eventName
	}
	return o.customerName
}

// Phone returns the order's contact number.
func (o *Order) Phone() kernel.Phone {
	return o.phone
}

// EventAt returns the scheduled date and time of an event booking.
// The zero time for regular orders.
func (o *Order) EventAt() time.Time {
	return o.eventAt
}

// TotalQuantity returns the original order size in units (thalis for
// regular orders, guests for events). Fixed at creation.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// RemainingQuantity returns the number of units not yet delivered.
func (o *Order) RemainingQuantity() int {
	return o.remainingQuantity
}

// TotalDelivered returns the number of units delivered so far.
func (o *Order) TotalDelivered() int {
	return o.totalDelivered
}

// Status returns the current fulfillment status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Deliveries returns the order's delivery records, most recent first.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Deliveries() []Delivery {
	out := make([]Delivery, len(o.deliveries))
	for i, d := range o.deliveries {
		out[len(o.deliveries)-1-i] = d
	}
	return out
}

// RecordDelivery applies a single partial delivery and returns the order's
// next state. The receiver is never mutated: on success the returned *Order
// reflects the reduced remaining quantity, the appended delivery record,
// and the re-derived status; on failure the receiver is returned unchanged
// alongside the error.
//
// Preconditions, checked in order, each failing with a distinct error:
//  1. deliveredBy non-empty after trimming -> ErrDelivererIsRequired
//  2. quantity a positive integer -> ErrQuantityIsInvalid
//  3. quantity within the remaining quantity -> *OverDeliveryError
//
// There is no batching and no undo: one call records exactly one delivery,
// and no transition ever increases remainingQuantity.
//
// Example:
//
//	next, err := o.RecordDelivery(4, "Ravi", "first batch", time.Now().UTC())
//	if err != nil {
//	    // o is unchanged
//	    return err
//	}
//	// next.RemainingQuantity() == o.RemainingQuantity() - 4
func (o *Order) RecordDelivery(quantity int, deliveredBy, note string, at time.Time) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	delivery, err := NewDelivery(quantity, deliveredBy, note, at)
	if err != nil {
		return nil, err
	}

	if quantity > o.remainingQuantity {
		return nil, &OverDeliveryError{Requested: quantity, Remaining: o.remainingQuantity}
	}

	next := *o
	next.deliveries = append(slices.Clone(o.deliveries), delivery)
	next.remainingQuantity = o.remainingQuantity - quantity
	next.totalDelivered = o.totalDelivered + quantity
	next.status = DeriveStatus(next.remainingQuantity, next.totalQuantity)
	return &next, nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setName validates a required name field and assigns it through set.
func (o *Order) setName(param, value string, set func(string)) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	set(value)
	return nil
}

// setPhone validates and sets the contact number.
func (o *Order) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.phone = phone
	return nil
}

// setTotalQuantity validates and sets the order size.
// The quantity must be at least 1.
func (o *Order) setTotalQuantity(param string, quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%d is not at least 1", quantity))
	}
	o.totalQuantity = quantity
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setEventAt validates and sets the event schedule.
// The event must not lie before the order's creation instant.
func (o *Order) setEventAt(eventAt time.Time) error {
	if eventAt.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}
	if !o.createdAt.IsZero() && eventAt.Before(o.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("eventDate",
			fmt.Errorf("%s is in the past", eventAt.Format(time.RFC3339)))
	}
	o.eventAt = eventAt
	return nil
}
