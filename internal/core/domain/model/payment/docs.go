// Package payment implements the Payment aggregate, keyed by order id.
//
// Lifecycle:
//
//	CREATED -> PROCESSING -> PAID -> RELEASED
//	                      \-> FAILED
//
// A gateway approval is recorded as PaymentSucceeded without leaving PROCESSING;
// a separate mark-paid step moves the payment to PAID and starts the delivery.
// Funds are released to the baker once the customer retrieved the package.
package payment
