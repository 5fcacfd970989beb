// Package services provides domain services that compute over collections
// of orders in the tracking system. It implements read-side logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AnalyticsCalculator: Aggregates a set of orders into summary metrics
//   - OrderBrowser: Filters, searches, and sorts orders for display
//   - CSVExporter: Formats a set of orders as tabular text
//
// All services in this package are pure: they never mutate their input
// collection or its elements, and the same inputs always produce the same
// outputs.
package services
