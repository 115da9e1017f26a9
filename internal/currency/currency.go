// Package currency formats decimal amounts for terminal display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an amount in the given ISO currency code, e.g. "$1,000.00"
// or "₴41,500.00". Rounds to the currency's minor unit for display only;
// stored amounts keep full precision.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// USD formats a dollar amount.
func USD(amount decimal.Decimal) string { return Format(amount, money.USD) }

// UAH formats a hryvnia amount.
func UAH(amount decimal.Decimal) string { return Format(amount, money.UAH) }
