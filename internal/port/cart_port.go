package port

import (
	"context"

	"github.com/nikolayk812/shopnest/internal/domain"
)

// CartRepository keys carts by an opaque session owner id; each owner
// has at most one cart, created lazily on first use. Mutations on a
// single cart are serialized by the implementation.
type CartRepository interface {
	// GetCart returns a non-aliasing snapshot of the owner's line items.
	GetCart(ctx context.Context, ownerID string) ([]domain.LineItem, error)
	// AddItem adds the product or increments its existing line item,
	// returning the resulting quantity.
	AddItem(ctx context.Context, ownerID string, product domain.Product) (int, error)
	IncrementItem(ctx context.Context, ownerID, productName string) (int, error)
	// DecrementItem lowers the quantity by one, removing the line item
	// when the last unit goes; the returned quantity is 0 in that case.
	DecrementItem(ctx context.Context, ownerID, productName string) (int, error)
	SetItemQuantity(ctx context.Context, ownerID, productName string, quantity int) error
	// DeleteItem removes the line item unconditionally and reports
	// whether anything was removed; absent items are a no-op.
	DeleteItem(ctx context.Context, ownerID, productName string) (bool, error)
	ClearCart(ctx context.Context, ownerID string) error
}
