// Package offer implements the AvailableDeliveryOffer aggregate: a delivery
// proposed to a single nearby courier.
//
// Several couriers receive offers for the same delivery. The first to accept
// wins; the remaining Pending offers are cancelled by a policy, and an offer that
// was accepted concurrently but lost the courier assignment is revoked.
// Consistency across offers of one delivery is eventual.
package offer
