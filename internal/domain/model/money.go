package model

import "github.com/shopspring/decimal"

// Money converts an amount in tenths of a million into currency units.
func Money(tenths int) decimal.Decimal {
	return decimal.New(int64(tenths), -1)
}

// Tenths converts currency units to tenths of a million, rounding half away from zero.
func Tenths(d decimal.Decimal) int {
	return int(d.Shift(1).Round(0).IntPart())
}
