// Package order builds immutable order summaries from cart snapshots.
package order

import (
	"fmt"

	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/port"
	"github.com/nikolayk812/shopnest/internal/pricing"
)

// deliveryLeadDays is the estimated delivery offset from the order date.
const deliveryLeadDays = 5

type Builder struct {
	clock port.Clock
	ids   port.IDGenerator
}

func NewBuilder(clock port.Clock, ids port.IDGenerator) *Builder {
	return &Builder{clock: clock, ids: ids}
}

// Build freezes a cart snapshot and its pricing into an OrderSummary.
// It does not touch the cart or any history; the caller clears the cart
// and appends to history as separate steps.
func (b *Builder) Build(items []domain.LineItem, pr pricing.Result) domain.OrderSummary {
	now := b.clock.Now()

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s x %d", item.Product.Name, item.Quantity))
	}

	return domain.OrderSummary{
		ID:         b.ids.NewOrderID(),
		Date:       now.Format(domain.OrderDateLayout),
		DeliveryBy: now.AddDate(0, 0, deliveryLeadDays).Format(domain.OrderDateLayout),
		Total:      pr.Total,
		Items:      lines,
	}
}
