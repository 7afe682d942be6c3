package offer

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status of a delivery offer. Accepted and Cancelled are terminal for the
// courier; an Accepted offer can still be revoked into Cancelled when another
// courier won the delivery.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Cancelled: "CANCELLED",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
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
