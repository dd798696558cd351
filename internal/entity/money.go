package entity

import (
	"github.com/shopspring/decimal"
)

// Money is an amount in kopecks.
type Money int64

// Rubles returns the exact amount in rubles with two decimal places.
func (m Money) Rubles() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) String() string {
	return m.Rubles().StringFixed(2)
}

func MinMoney(a, b Money) Money {
	if a < b {
		return a
	}

	return b
}
