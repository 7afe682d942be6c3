package delivery

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status is the package delivery lifecycle state.
//
//	Created -> DroppedByBaker -> InTransit -> DroppedByCourier -> Delivered
//
// Courier assignment happens while DroppedByBaker and does not change the status.
type Status int

const (
	Unknown Status = iota
	Created
	DroppedByBaker
	InTransit
	DroppedByCourier
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Created:          "CREATED",
		DroppedByBaker:   "DROPPED_BY_BAKER",
		InTransit:        "IN_TRANSIT",
		DroppedByCourier: "DROPPED_BY_COURIER",
		Delivered:        "DELIVERED",
	}
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

func (s Status) require(expected Status, action string) error {
	if s != expected {
		return errs.NewPreconditionViolationErrorf("Cannot %s: delivery is %s, expected %s", action, s, expected)
	}
	return nil
}
