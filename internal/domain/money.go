// Package domain holds the invoicing value objects, the invoice aggregate and
// its derivation and validation rules. It is computation-only: no I/O, no
// logging, no shared mutable state.
package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable monetary value with an exact 2-digit decimal scale.
// Every operation returns a new Money; the wrapped decimal is always rounded.
type Money struct {
	value decimal.Decimal
}

// NewMoney builds a Money from a decimal-convertible raw value: a decimal
// string, an integer or float, an existing Money, or a decimal.Decimal.
// The value is rounded to 2 fractional digits, half away from zero.
func NewMoney(raw any) (Money, error) {
	switch v := raw.(type) {
	case Money:
		return v, nil
	case decimal.Decimal:
		return Money{value: v.Round(2)}, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Money{}, NewInvalidAmountError(v)
		}
		return Money{value: d.Round(2)}, nil
	case int:
		return Money{value: decimal.NewFromInt(int64(v)).Round(2)}, nil
	case int64:
		return Money{value: decimal.NewFromInt(v).Round(2)}, nil
	case float64:
		return Money{value: decimal.NewFromFloat(v).Round(2)}, nil
	default:
		return Money{}, NewInvalidAmountError(raw)
	}
}

// MustMoney is a construction helper for values known to be valid, such as
// literals in tests and configuration defaults. It panics on bad input.
func MustMoney(raw any) Money {
	m, err := NewMoney(raw)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value).Round(2)}
}

func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value).Round(2)}
}

// Mul multiplies by a Rate or a plain numeric scalar. The product is rounded
// back to 2 fractional digits. Any other operand kind is rejected with an
// UNSUPPORTED_OPERAND error.
func (m Money) Mul(operand any) (Money, error) {
	switch v := operand.(type) {
	case Rate:
		return Money{value: m.value.Mul(v.value).Round(2)}, nil
	case decimal.Decimal:
		return Money{value: m.value.Mul(v).Round(2)}, nil
	case int:
		return Money{value: m.value.Mul(decimal.NewFromInt(int64(v))).Round(2)}, nil
	case int64:
		return Money{value: m.value.Mul(decimal.NewFromInt(v)).Round(2)}, nil
	case float64:
		return Money{value: m.value.Mul(decimal.NewFromFloat(v)).Round(2)}, nil
	default:
		return Money{}, NewUnsupportedOperandError(operand)
	}
}

// Cmp returns -1, 0 or 1 when m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// IsPositive reports whether the value is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// Decimal exposes the underlying decimal for the persistence boundary.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// String renders the canonical wire form: exactly 2 fractional digits, no
// separators, no currency symbol.
func (m Money) String() string {
	return m.value.StringFixed(2)
}
