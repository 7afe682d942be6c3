// Package delivery implements the PackageDelivery aggregate.
//
// Key business rules:
//   - A delivery is created once the payment of its order is marked paid
//   - The baker drops the package first; the drop carries exact coordinates and a photo
//   - Exactly one courier can be assigned, and only while the package waits at the baker
//   - Only the assigned courier can pick the package up and drop it
//   - The courier drop must be within 100 m of the customer location (inclusive)
//   - The customer retrieves the package once; confirming moves the delivery to DELIVERED
package delivery
