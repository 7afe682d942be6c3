package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order projection.
//
// Status transitions follow a single monotonic step:
//
//	Created -> Paid
type Status int

const (
	// Unknown is the zero value and is never a valid order status.
	Unknown Status = iota

	// Created is the initial status after checkout.
	Created

	// Paid is set once the payment for the order was marked paid.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Created: "CREATED",
		Paid:    "PAID",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Created: "CREATED",
		Paid:    "PAID",
	}
}

// ParseStatus maps a wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the status is one of the valid order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Pay moves a Created order to Paid. Paying a Paid order keeps it Paid.
func (s Status) Pay() (Status, error) {
	if s != Created && s != Paid {
		return 0, errs.NewPreconditionViolationErrorf("%s is not a valid status to pay", s.String())
	}

	return Paid, nil
}
