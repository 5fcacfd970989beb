// Package order provides domain entities and business logic for restaurant
// order tracking. It implements the Order aggregate root with partial
// delivery fulfillment management.
//
// The package includes:
//   - Order: The aggregate root for regular thali orders and event bookings
//   - Delivery: An immutable record of a partial fulfillment
//   - Status: The fulfillment state derived from remaining quantity
//
// Key business rules:
//   - Orders must have a valid unique identifier and a positive quantity
//   - The total quantity is fixed at creation and never changes
//   - Every delivery reduces the remaining quantity; it never increases
//   - Status is always derived via DeriveStatus, never stored independently,
//     so totalDelivered + remainingQuantity == totalQuantity holds throughout
//   - Recording a delivery produces a new Order value; the previous state
//     is never mutated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
