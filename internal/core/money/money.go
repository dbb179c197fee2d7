package money

import (
	"fmt"
	"math"
	"strconv"
)

// Amount is a monetary value in minor units (cents). Arithmetic on sums stays
// exact; conversion to a decimal happens only at the JSON boundary.
type Amount int64

// FromFloat converts a major-unit decimal (as received from the upstream API)
// into minor units, rounding half away from zero.
func FromFloat(major float64) Amount {
	return Amount(math.Round(major * 100))
}

// Fraction returns the given fraction of the amount, rounded to the nearest
// minor unit.
func (a Amount) Fraction(rate float64) Amount {
	return Amount(math.Round(float64(a) * rate))
}

// Float64 returns the amount in major units.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with two decimal places.
func (a Amount) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', 2, 64)
}

// MarshalJSON emits the amount as a plain decimal number with two fraction
// digits, matching the upstream wire format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a plain JSON number in major units.
func (a *Amount) UnmarshalJSON(data []byte) error {
	major, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(data), err)
	}
	*a = FromFloat(major)
	return nil
}
