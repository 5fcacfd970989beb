// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and type.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType         string     `gorm:"type:varchar(32);not null;index"`
	CustomerName      string     `gorm:"type:varchar(255)"`
	EventName         string     `gorm:"type:varchar(255)"`
	BookerName        string     `gorm:"type:varchar(255)"`
	Phone             string     `gorm:"type:varchar(32);not null;index"`
	EventAt           *time.Time `gorm:"type:timestamptz"`
	TotalQuantity     int        `gorm:"type:int;not null"`
	RemainingQuantity int        `gorm:"type:int;not null"`
	TotalDelivered    int        `gorm:"type:int;not null"`
	Status            string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt         time.Time  `gorm:"type:timestamptz;not null;index"`

	Deliveries []DeliveryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting delivery records.
// Links to its order via foreign key. Rows are immutable once written; the
// repository replaces the full set on order updates.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"type:int;not null"`
	DeliveredBy string    `gorm:"type:varchar(255);not null"`
	Note        string    `gorm:"type:text"`
	DeliveredAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "order_deliveries".
func (DeliveryDTO) TableName() string {
	return "order_deliveries"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all aggregate state including the delivery history. Delivery rows get
// fresh identifiers on every conversion; Update relies on replacing the set.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	domainDeliveries := aggregate.Deliveries()
	deliveries := make([]DeliveryDTO, 0, len(domainDeliveries))
	for _, d := range domainDeliveries {
		deliveries = append(deliveries, DeliveryDTO{
			ID:          uuid.New(),
			OrderID:     orderID,
			Quantity:    d.Quantity(),
			DeliveredBy: d.DeliveredBy(),
			Note:        d.Note(),
			DeliveredAt: d.DeliveredAt(),
		})
	}

	var eventAt *time.Time
	if at := aggregate.EventAt(); !at.IsZero() {
		eventAt = &at
	}

	return OrderDTO{
		ID:                orderID,
		OrderType:         aggregate.Type().String(),
		CustomerName:      aggregate.CustomerName(),
		EventName:         aggregate.EventName(),
		BookerName:        aggregate.BookerName(),
		Phone:             aggregate.Phone().String(),
		EventAt:           eventAt,
		TotalQuantity:     aggregate.TotalQuantity(),
		RemainingQuantity: aggregate.RemainingQuantity(),
		TotalDelivered:    aggregate.TotalDelivered(),
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		Deliveries:        deliveries,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its delivery history using
// RestoreOrder, which re-derives the counters and status from the deliveries.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	deliveries := make([]order.Delivery, 0, len(dto.Deliveries))
	for _, d := range dto.Deliveries {
		delivery, deliveryErr := order.NewDelivery(d.Quantity, d.DeliveredBy, d.Note, d.DeliveredAt)
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveries = append(deliveries, delivery)
	}

	var eventAt time.Time
	if dto.EventAt != nil {
		eventAt = *dto.EventAt
	}

	return order.RestoreOrder(
		id,
		orderType,
		dto.CustomerName,
		dto.EventName,
		dto.BookerName,
		phone,
		eventAt,
		dto.TotalQuantity,
		deliveries,
		dto.CreatedAt,
	)
}
