package order

import (
	"errors"
	"strings"
	"time"

	"thalitrack/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDelivererIsRequired is returned when a delivery is recorded without
	// naming the person responsible for it.
	ErrDelivererIsRequired = errors.New("deliveredBy is required")

	// ErrQuantityIsInvalid is returned when a delivery quantity is not a
	// positive integer.
	ErrQuantityIsInvalid = errors.New("quantity must be a positive integer")

	// ErrDeliveredAtIsRequired is returned when a delivery carries no timestamp.
	ErrDeliveredAtIsRequired = errors.New("deliveredAt is required")
)

// Delivery is an immutable record of a partial fulfillment against an order.
// It is owned exclusively by its parent Order and never changes once created.
//
// A Delivery captures how many units were handed out, who delivered them,
// an optional free-form note, and the moment of delivery.
type Delivery struct { //nolint:recvcheck //using for validation
	quantity    int
	deliveredBy string
	note        string
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a validated delivery record.
//
// Preconditions, checked in order:
//   - deliveredBy must be non-empty after trimming whitespace
//   - quantity must be a positive integer
//   - deliveredAt must be a non-zero instant
//
// The deliverer and note are stored trimmed. Whether the quantity fits the
// parent order's remaining quantity is the order's concern, not the
// delivery's; see Order.RecordDelivery.
func NewDelivery(quantity int, deliveredBy, note string, deliveredAt time.Time) (Delivery, error) {
	deliveredBy = strings.TrimSpace(deliveredBy)
	if deliveredBy == "" {
		return Delivery{}, ErrDelivererIsRequired
	}

	if quantity < 1 {
		return Delivery{}, ErrQuantityIsInvalid
	}

	if deliveredAt.IsZero() {
		return Delivery{}, ErrDeliveredAtIsRequired
	}

	return Delivery{
		quantity:    quantity,
		deliveredBy: deliveredBy,
		note:        strings.TrimSpace(note),
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Quantity returns the number of units delivered.
func (d Delivery) Quantity() int {
	return d.quantity
}

// DeliveredBy returns the person responsible for the delivery.
func (d Delivery) DeliveredBy() string {
	return d.deliveredBy
}

// Note returns the optional free-form note, empty when none was given.
func (d Delivery) Note() string {
	return d.note
}

// DeliveredAt returns the moment the delivery was recorded.
func (d Delivery) DeliveredAt() time.Time {
	return d.deliveredAt
}

// Validate ensures the Delivery was created through NewDelivery.
// Returns ErrDeliveryIsNotConstructed for zero values.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}
