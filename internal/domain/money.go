package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DisplayPlaces is the number of decimal places amounts are rounded to for display
const DisplayPlaces = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// String renders the amount for display, e.g. "USD 25.00"
func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.StringFixed(DisplayPlaces)
}
