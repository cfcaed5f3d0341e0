// Package types holds the small value objects shared across modules.
package types

import "github.com/shopspring/decimal"

// Money is an exact fixed-point monetary amount in a named currency.
// Monetary arithmetic stays in decimals end to end; float64 is reserved for
// kilometres.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money rounded to 2 decimal places (minor currency units).
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount.Round(2), Currency: currency}
}
