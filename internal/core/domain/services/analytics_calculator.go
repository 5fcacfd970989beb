package services

import (
	"thalitrack/internal/core/domain/model/order"
)

// Analytics summarizes a collection of orders for the history dashboard.
// Ratio metrics are percentages in [0, 100] and are defined as 0 when their
// denominator is zero, so an empty collection never produces NaN.
type Analytics struct {
	// Total is the number of orders in the collection.
	Total int

	// Completed, Pending, and Partial count orders by derived status.
	Completed int
	Pending   int
	Partial   int

	// TotalQuantity is the sum of every order's total quantity.
	TotalQuantity int

	// DeliveredQuantity is the sum of every order's delivered units.
	DeliveredQuantity int

	// CompletionRate is completed/total as a percentage, 0 when total is 0.
	CompletionRate float64

	// DeliveryRate is delivered/total quantity as a percentage,
	// 0 when the total quantity is 0.
	DeliveryRate float64

	// AvgQuantityPerOrder is totalQuantity/total, 0 when total is 0.
	AvgQuantityPerOrder float64
}

// AnalyticsCalculator is a domain service that aggregates a set of orders
// into summary metrics.
//
// The calculation is a pure function over its input: it holds no state,
// never mutates the orders, and guards every ratio against a zero
// denominator.
//
// Example usage:
//
//	calculator := NewAnalyticsCalculator()
//	summary := calculator.Calculate(orders)
//	fmt.Printf("%d of %d orders completed (%.1f%%)",
//	    summary.Completed, summary.Total, summary.CompletionRate)
type AnalyticsCalculator struct{}

// NewAnalyticsCalculator creates a new AnalyticsCalculator instance.
func NewAnalyticsCalculator() AnalyticsCalculator {
	return AnalyticsCalculator{}
}

// Calculate aggregates the given orders into an Analytics summary.
// Orders that fail validation (zero values) are counted like any other
// order would be by their accessors; callers are expected to pass orders
// obtained from the repository or the factory methods.
func (AnalyticsCalculator) Calculate(orders []*order.Order) Analytics {
	a := Analytics{Total: len(orders)}

	for _, o := range orders {
		switch o.Status() {
		case order.StatusCompleted:
			a.Completed++
		case order.StatusPending:
			a.Pending++
		case order.StatusPartiallyDelivered:
			a.Partial++
		case order.StatusUnknown:
			// Unreachable for properly constructed orders.
		}

		a.TotalQuantity += o.TotalQuantity()
		a.DeliveredQuantity += o.TotalDelivered()
	}

	if a.Total > 0 {
		a.CompletionRate = float64(a.Completed) / float64(a.Total) * 100
		a.AvgQuantityPerOrder = float64(a.TotalQuantity) / float64(a.Total)
	}

	if a.TotalQuantity > 0 {
		a.DeliveryRate = float64(a.DeliveredQuantity) / float64(a.TotalQuantity) * 100
	}

	return a
}
