package domain

import (
	"errors"
	"math"
	"strconv"
)

// ErrMoneyOverflow is returned when a sum does not fit into int64 minor units.
var ErrMoneyOverflow = errors.New("money overflow")

// Money is an amount in minor currency units (cents).
type Money int64

// Add returns m+o, failing instead of wrapping around.
func (m Money) Add(o Money) (Money, error) {
	if (o > 0 && m > math.MaxInt64-o) || (o < 0 && m < math.MinInt64-o) {
		return 0, ErrMoneyOverflow
	}
	return m + o, nil
}

// String renders the amount with exactly two fractional digits, e.g. "12.05".
func (m Money) String() string {
	v := int64(m)
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1
	} else {
		u = uint64(v)
	}
	frac := u % 100
	s := strconv.FormatUint(u/100, 10) + "."
	if frac < 10 {
		s += "0"
	}
	s += strconv.FormatUint(frac, 10)
	if neg {
		s = "-" + s
	}
	return s
}

// MarshalJSON writes the amount as an exact JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
