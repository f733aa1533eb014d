package domain

import "github.com/shopspring/decimal"

// Cents is a money amount in minor currency units.
type Cents int64

// Decimal renders the amount as a fixed-point string with two decimals,
// e.g. 1999 -> "19.99". All API responses carry money in this form.
func (c Cents) Decimal() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}
