// Package service orchestrates the catalog, carts, pricing and order
// building behind the HTTP handlers.
package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/shopnest/internal/catalog"
	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/order"
	"github.com/nikolayk812/shopnest/internal/payment"
	"github.com/nikolayk812/shopnest/internal/port"
	"github.com/nikolayk812/shopnest/internal/pricing"
	log "github.com/sirupsen/logrus"
)

// CartView is the cart read model: a snapshot of the line items plus
// the pricing derived from them.
type CartView struct {
	Items   []domain.LineItem
	Pricing pricing.Result
}

type ShopService struct {
	products []domain.Product
	carts    port.CartRepository
	orders   port.OrderRepository
	builder  *order.Builder
	users    port.UserProvider
}

func New(products []domain.Product, carts port.CartRepository, orders port.OrderRepository, builder *order.Builder, users port.UserProvider) *ShopService {
	return &ShopService{
		products: products,
		carts:    carts,
		orders:   orders,
		builder:  builder,
		users:    users,
	}
}

func (s *ShopService) Products(category domain.Category) []domain.Product {
	return catalog.Filter(s.products, category)
}

func (s *ShopService) CurrentUser() string {
	return s.users.CurrentUser()
}

func (s *ShopService) CartView(ctx context.Context, ownerID string) (CartView, error) {
	items, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return CartView{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	return CartView{
		Items:   items,
		Pricing: pricing.Compute(items),
	}, nil
}

// AddToCart resolves the product name against the catalog and adds it
// to the owner's cart, returning the resulting quantity.
func (s *ShopService) AddToCart(ctx context.Context, ownerID, productName string) (int, error) {
	product, ok := catalog.Find(s.products, productName)
	if !ok {
		return 0, fmt.Errorf("product[%s]: %w", productName, domain.ErrProductNotFound)
	}

	quantity, err := s.carts.AddItem(ctx, ownerID, product)
	if err != nil {
		return 0, fmt.Errorf("carts.AddItem: %w", err)
	}

	return quantity, nil
}

func (s *ShopService) IncrementItem(ctx context.Context, ownerID, productName string) (int, error) {
	quantity, err := s.carts.IncrementItem(ctx, ownerID, productName)
	if err != nil {
		return 0, fmt.Errorf("carts.IncrementItem: %w", err)
	}

	return quantity, nil
}

func (s *ShopService) DecrementItem(ctx context.Context, ownerID, productName string) (int, error) {
	quantity, err := s.carts.DecrementItem(ctx, ownerID, productName)
	if err != nil {
		return 0, fmt.Errorf("carts.DecrementItem: %w", err)
	}

	return quantity, nil
}

func (s *ShopService) SetItemQuantity(ctx context.Context, ownerID, productName string, quantity int) error {
	if err := s.carts.SetItemQuantity(ctx, ownerID, productName, quantity); err != nil {
		return fmt.Errorf("carts.SetItemQuantity: %w", err)
	}

	return nil
}

func (s *ShopService) RemoveItem(ctx context.Context, ownerID, productName string) (bool, error) {
	removed, err := s.carts.DeleteItem(ctx, ownerID, productName)
	if err != nil {
		return false, fmt.Errorf("carts.DeleteItem: %w", err)
	}

	return removed, nil
}

// Checkout validates the card, freezes the cart into an order summary,
// appends it to the owner's history and clears the cart, in that order.
// A failed history append leaves the cart untouched.
func (s *ShopService) Checkout(ctx context.Context, ownerID string, card payment.Card) (domain.OrderSummary, error) {
	if err := card.Validate(); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("card.Validate: %w", err)
	}

	items, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return domain.OrderSummary{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	if len(items) == 0 {
		return domain.OrderSummary{}, domain.ErrEmptyCart
	}

	summary := s.builder.Build(items, pricing.Compute(items))

	if err := s.orders.AddOrder(ctx, ownerID, summary); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("orders.AddOrder: %w", err)
	}

	if err := s.carts.ClearCart(ctx, ownerID); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("carts.ClearCart: %w", err)
	}

	log.WithFields(log.Fields{
		"order_id": summary.ID,
		"owner_id": ownerID,
		"items":    len(summary.Items),
		"total":    summary.Total.Display(),
	}).Info("Order placed")

	return summary, nil
}

func (s *ShopService) Orders(ctx context.Context, ownerID string) ([]domain.OrderSummary, error) {
	orders, err := s.orders.ListOrders(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}
