package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/port"
)

type orderRepository struct {
	mu sync.RWMutex

	// orders are kept oldest-first per owner; the history only grows.
	orders map[string][]domain.OrderSummary
}

func NewOrder() port.OrderRepository {
	return &orderRepository{
		orders: make(map[string][]domain.OrderSummary),
	}
}

func (r *orderRepository) AddOrder(ctx context.Context, ownerID string, order domain.OrderSummary) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[ownerID] = append(r.orders[ownerID], order)
	return nil
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID string) ([]domain.OrderSummary, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.orders[ownerID]

	// Newest-first for display, without disturbing the stored order.
	reversed := make([]domain.OrderSummary, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		reversed = append(reversed, stored[i])
	}

	return reversed, nil
}
