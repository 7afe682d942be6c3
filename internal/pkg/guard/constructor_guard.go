// Package guard holds small helpers that protect domain objects from being used
// as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or entity as built by its constructor.
// A zero-value guard fails validation, so a struct literal or a zero value of
// the owning type is detected on first use.
//
// Example:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMoney(cents int64) (Money, error) {
//	    if cents < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError when the guard is a zero value.
// ErrDefaultConstructorGuard is used when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
