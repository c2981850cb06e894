package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// CartService is the single source of truth for the session's cart. It
// holds the current cart snapshot and replaces it wholesale on every
// action via the pure transitions on domain.Cart; readers always get a
// copy, never a view of shared state mid-update.
type CartService struct {
	mu      sync.Mutex
	catalog repository.CatalogRepository
	cart    domain.Cart
}

func NewCartService(catalog repository.CatalogRepository) *CartService {
	return &CartService{catalog: catalog}
}

// SetQuantity resolves the product and applies the merge-on-update rule:
// quantity 0 removes the item (no-op when absent), a positive quantity
// updates an existing item in place or appends a new one at the end.
// Negative quantities are clamped to 0. Returns the new snapshot.
func (s *CartService) SetQuantity(ctx context.Context, productID string, quantity int64) (domain.Cart, error) {
	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		quantity = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.WithQuantity(*p, quantity)
	return s.snapshot(), nil
}

// Remove deletes the item for the given product id, if present. Unlike
// SetQuantity it needs only the identity, not the product payload.
func (s *CartService) Remove(id string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Without(id)
	return s.snapshot()
}

// Cart returns a copy of the current snapshot
func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total reflects the most recently applied mutation
func (s *CartService) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Clear empties the cart (session end)
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *CartService) snapshot() domain.Cart {
	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)
	return out
}
