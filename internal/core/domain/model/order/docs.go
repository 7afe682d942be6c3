// Package order provides the Order projection of the bakery marketplace: the
// customer-facing snapshot of a checkout, its priced lines and payment status.
//
// The package includes:
//   - Order: the snapshot built when an order is created from a cart
//   - Status: Created -> Paid
//
// Key business rules:
//   - Subtotal is always the sum of quantity times unit price over all lines
//   - Lines without a known catalog name are shown as "Unknown Product"
//   - Status is monotonic; marking a paid order paid again changes nothing
package order
