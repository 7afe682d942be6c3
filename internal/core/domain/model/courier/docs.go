// Package courier provides the CourierQueue aggregate: the availability and last
// known position of a courier waiting for delivery offers.
//
// The package includes:
//   - Courier: the aggregate root keyed by courier id
//
// Key business rules:
//   - Marking a courier available records its position; an unknown courier is created
//   - Marking an unavailable courier unavailable again records nothing
//   - Only an available courier can report a new position
//
// Dispatch matching reads available couriers and their positions; it never
// changes a courier.
package courier
