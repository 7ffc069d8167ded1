package timeslot

import (
	"github.com/shopspring/decimal"

	"lockerfleet/internal/pkg/errs"
)

// Fee is a non-negative monetary amount charged for a delivery window.
type Fee struct {
	amount decimal.Decimal
}

// ZeroFee is the fee of a free window.
func ZeroFee() Fee {
	return Fee{amount: decimal.Zero}
}

// NewFee creates a fee from a decimal amount.
func NewFee(amount decimal.Decimal) (Fee, error) {
	if amount.IsNegative() {
		return Fee{}, errs.NewValueIsInvalidError("fee")
	}
	return Fee{amount: amount}, nil
}

// FeeFromString parses a decimal fee representation such as "2.50".
func FeeFromString(s string) (Fee, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Fee{}, errs.NewValueIsInvalidErrorWithCause("fee", err)
	}
	return NewFee(amount)
}

// Amount returns the underlying decimal amount.
func (f Fee) Amount() decimal.Decimal { return f.amount }

// IsZero reports whether the window is free.
func (f Fee) IsZero() bool { return f.amount.IsZero() }

// String renders the amount with two decimal places.
func (f Fee) String() string { return f.amount.StringFixed(2) }

// Equal reports amount equality.
func (f Fee) Equal(other Fee) bool { return f.amount.Equal(other.amount) }
