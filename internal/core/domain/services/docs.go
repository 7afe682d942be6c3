// Package services provides domain services that span several aggregates of the
// bakery marketplace.
//
// The package includes:
//   - CourierDispatcher: selects the available couriers close enough to a dropped package
//   - LocationDisclosure: decides whether a courier sees the exact or the anonymized
//     pickup point
//
// Domain services are stateless and never persist anything; application policies
// load the aggregates, call the service and issue the resulting commands.
package services
