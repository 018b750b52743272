package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// MulInt multiplies the amount by a quantity, keeping full precision.
func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// Display renders the amount with its currency symbol, rounded to two
// decimal places, e.g. "£7.99". Rounding happens only here; arithmetic
// keeps full precision.
func (m Money) Display() string {
	return symbol(m.Currency) + m.Amount.StringFixed(2)
}

func symbol(unit currency.Unit) string {
	switch unit {
	case currency.GBP:
		return "£"
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	default:
		return unit.String() + " "
	}
}
