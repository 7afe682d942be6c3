package payment

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status is the payment lifecycle state.
//
//	Created -> Processing -> Paid -> Released
//	                      \-> Failed
type Status int

const (
	Unknown Status = iota
	Created
	Processing
	Paid
	Failed
	Released
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Processing: "PROCESSING",
		Paid:       "PAID",
		Failed:     "FAILED",
		Released:   "RELEASED",
	}
}

func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
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

func (s Status) StartProcessing() (Status, error) {
	if s != Created {
		return 0, errs.NewPreconditionViolationErrorf("Payment cannot be processed: status is %s", s)
	}
	return Processing, nil
}

func (s Status) Fail() (Status, error) {
	if s != Processing {
		return 0, errs.NewPreconditionViolationErrorf("Payment cannot fail: status is %s", s)
	}
	return Failed, nil
}

func (s Status) MarkPaid() (Status, error) {
	if s != Processing {
		return 0, errs.NewPreconditionViolationErrorf("Payment cannot be marked paid: status is %s", s)
	}
	return Paid, nil
}

func (s Status) Release() (Status, error) {
	if s != Paid {
		return 0, errs.NewPreconditionViolationErrorf("Funds cannot be released: status is %s", s)
	}
	return Released, nil
}
