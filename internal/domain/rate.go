package domain

import (
	"github.com/shopspring/decimal"
)

// Rate is an immutable fractional value with an exact 4-digit decimal scale,
// used for fee and tax rates.
type Rate struct {
	value decimal.Decimal
}

// NewRate builds a Rate from a decimal-convertible raw value, rounded to
// 4 fractional digits, half away from zero.
func NewRate(raw any) (Rate, error) {
	switch v := raw.(type) {
	case Rate:
		return v, nil
	case decimal.Decimal:
		return Rate{value: v.Round(4)}, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Rate{}, NewInvalidAmountError(v)
		}
		return Rate{value: d.Round(4)}, nil
	case int:
		return Rate{value: decimal.NewFromInt(int64(v)).Round(4)}, nil
	case int64:
		return Rate{value: decimal.NewFromInt(v).Round(4)}, nil
	case float64:
		return Rate{value: decimal.NewFromFloat(v).Round(4)}, nil
	default:
		return Rate{}, NewInvalidAmountError(raw)
	}
}

// MustRate is a construction helper for values known to be valid.
func MustRate(raw any) Rate {
	r, err := NewRate(raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Cmp returns -1, 0 or 1 when r is less than, equal to or greater than other.
func (r Rate) Cmp(other Rate) int {
	return r.value.Cmp(other.value)
}

func (r Rate) Equal(other Rate) bool {
	return r.value.Equal(other.value)
}

// Decimal exposes the underlying decimal for the persistence boundary.
func (r Rate) Decimal() decimal.Decimal {
	return r.value
}

// String renders the canonical wire form: exactly 4 fractional digits.
func (r Rate) String() string {
	return r.value.StringFixed(4)
}

// Percent renders the rate as a percentage with 2 fractional digits,
// e.g. 0.0400 -> "4.00".
func (r Rate) Percent() string {
	return r.value.Mul(decimal.NewFromInt(100)).StringFixed(2)
}
