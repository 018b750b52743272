// Package pricing derives subtotal, tax and total from cart line items.
// Computation is pure: no side effects, no error conditions, an empty
// cart prices to zero.
package pricing

import (
	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// TaxRate is the flat rate applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// Result is derived from a cart's line items and never stored on its
// own. Amounts carry full precision; rounding is left to display.
type Result struct {
	Subtotal domain.Money
	Tax      domain.Money
	Total    domain.Money
}

// Compute prices the given line items. The currency is taken from the
// first line; an empty cart prices to zero GBP.
func Compute(items []domain.LineItem) Result {
	unit := currency.GBP
	if len(items) > 0 {
		unit = items[0].Product.Price.Currency
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.MulInt(item.Quantity).Amount)
	}

	tax := subtotal.Mul(TaxRate)

	return Result{
		Subtotal: domain.NewMoney(subtotal, unit),
		Tax:      domain.NewMoney(tax, unit),
		Total:    domain.NewMoney(subtotal.Add(tax), unit),
	}
}
