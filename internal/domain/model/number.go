package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. It decodes JSON numbers and numeric
// strings; anything else (null, bool, "n/a", NaN) becomes 0.
type Number float64

// UnmarshalJSON never fails: malformed values are coerced to 0.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = ParseNumber(string(bytes.TrimSpace(b)))
	return nil
}

// ParseNumber converts raw text to a Number with the same coercion rules as
// UnmarshalJSON.
func ParseNumber(raw string) Number {
	raw = strings.TrimSpace(raw)
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unq)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}

// MaxTenths is the largest accepted price in tenths. Larger prices are
// malformed and coerce to 0 like any other junk value.
const MaxTenths = math.MaxInt32

// Tenths rounds n to a price in tenths, clamping negatives to 0 and
// coercing values above MaxTenths to 0.
func (n Number) Tenths() int { return n.Count() }

// Count rounds n to a whole number under the same bounds as Tenths. It is
// used for counters such as minutes and total points.
func (n Number) Count() int {
	f := math.Round(n.NonNegative())
	if f > MaxTenths {
		return 0
	}
	return int(f)
}

// NonNegative returns n as float64, clamping negatives to 0.
func (n Number) NonNegative() float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}
