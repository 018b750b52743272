package port

import (
	"context"

	"github.com/nikolayk812/shopnest/internal/domain"
)

// OrderRepository is an append-only per-owner order history. It grows
// by one summary per completed checkout and never shrinks.
type OrderRepository interface {
	AddOrder(ctx context.Context, ownerID string, order domain.OrderSummary) error
	// ListOrders returns the owner's orders newest-first.
	ListOrders(ctx context.Context, ownerID string) ([]domain.OrderSummary, error)
}
