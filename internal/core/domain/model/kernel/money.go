package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents).
type Money int64

// NewMoney rejects negative amounts.
func NewMoney(cents int64) (Money, error) {
	m := Money(cents)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money is invalid", fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

// Times returns the line total for quantity units.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
