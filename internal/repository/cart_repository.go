// Package repository provides the in-memory, session-keyed stores
// behind the cart and order ports. Nothing here persists: the shop is
// a single-process demo and every session's state dies with it.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/port"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCart() port.CartRepository {
	return &cartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) ([]domain.LineItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return nil, nil
	}

	return cart.Snapshot(), nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, product domain.Product) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cart(ownerID).AddOrIncrement(product), nil
}

func (r *cartRepository) IncrementItem(ctx context.Context, ownerID, productName string) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	quantity, err := r.cart(ownerID).Increment(productName)
	if err != nil {
		return 0, fmt.Errorf("cart.Increment: %w", err)
	}

	return quantity, nil
}

func (r *cartRepository) DecrementItem(ctx context.Context, ownerID, productName string) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	quantity, err := r.cart(ownerID).Decrement(productName)
	if err != nil {
		return 0, fmt.Errorf("cart.Decrement: %w", err)
	}

	return quantity, nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, ownerID, productName string, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.cart(ownerID).SetQuantity(productName, quantity); err != nil {
		return fmt.Errorf("cart.SetQuantity: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID, productName string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cart(ownerID).Remove(productName), nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart(ownerID).Clear()
	return nil
}

// cart returns the owner's cart, creating it on first use. Callers must
// hold the write lock.
func (r *cartRepository) cart(ownerID string) *domain.Cart {
	c, ok := r.carts[ownerID]
	if !ok {
		c = domain.NewCart(ownerID)
		r.carts[ownerID] = c
	}

	return c
}
