package errs

import (
	"errors"
	"fmt"
)

var (
	ErrPreconditionViolated   = errors.New("precondition violated")
	ErrAccessDenied           = errors.New("access denied")
	ErrExternalGatewayFailure = errors.New("external gateway failure")
)

// PreconditionViolationError is returned when a command is invalid for the current
// state of the aggregate it targets. No event is recorded.
type PreconditionViolationError struct {
	Reason string
	Cause  error
}

func NewPreconditionViolationError(reason string) *PreconditionViolationError {
	return &PreconditionViolationError{Reason: reason}
}

func NewPreconditionViolationErrorf(format string, args ...any) *PreconditionViolationError {
	return &PreconditionViolationError{Reason: fmt.Sprintf(format, args...)}
}

func NewPreconditionViolationErrorWithCause(reason string, cause error) *PreconditionViolationError {
	return &PreconditionViolationError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *PreconditionViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionViolated, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionViolated, e.Reason)
}

func (e *PreconditionViolationError) Unwrap() error {
	return ErrPreconditionViolated
}

// AccessDeniedError is returned when the caller exists but is not entitled to a resource.
type AccessDeniedError struct {
	Resource string
	Reason   string
}

func NewAccessDeniedError(resource string, reason string) *AccessDeniedError {
	return &AccessDeniedError{
		Resource: resource,
		Reason:   reason,
	}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrAccessDenied, e.Resource, sanitize(e.Reason))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// GatewayError wraps a transport level failure of an external gateway.
type GatewayError struct {
	Gateway string
	Cause   error
}

func NewGatewayError(gateway string, cause error) *GatewayError {
	return &GatewayError{
		Gateway: gateway,
		Cause:   cause,
	}
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrExternalGatewayFailure, e.Gateway, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrExternalGatewayFailure, e.Gateway)
}

func (e *GatewayError) Unwrap() error {
	return ErrExternalGatewayFailure
}

// IsPreconditionViolation reports whether err rejects a command because of its input or
// the current aggregate state, as opposed to an infrastructure failure.
func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrPreconditionViolated) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}
