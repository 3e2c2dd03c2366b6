package usecase

import (
	"context"
	"sync"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/logging"
)

// CartStore owns the mutable cart. Every mutation is written through
// to storage before the call returns, so the next read always sees the
// persisted state. The original shopper model is single-user, but the
// store sits behind an HTTP server, hence the mutex.
type CartStore struct {
	mu      sync.Mutex
	cart    domain.Cart
	storage CartStorage
}

// NewCartStore loads the persisted cart once at construction. Absent
// or corrupt stored data starts the shopper with an empty cart.
func NewCartStore(ctx context.Context, storage CartStorage) *CartStore {
	s := &CartStore{storage: storage}
	cart, err := storage.Load(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("cart load failed, starting empty", "err", err)
		cart = nil
	}
	s.cart = cart
	return s
}

// Add merges into the line matching (product, size, color) or appends
// a new quantity-1 line. It never fails; quantities are unbounded.
func (s *CartStore) Add(ctx context.Context, p domain.Product, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Matches(p.ID, size, color) {
			s.cart[i].Quantity++
			s.persist(ctx)
			return
		}
	}
	s.cart = append(s.cart, domain.LineFromProduct(p, size, color))
	s.persist(ctx)
}

// Remove drops the matching line. Absence is a no-op.
func (s *CartStore) Remove(ctx context.Context, productID, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID, size, color)
}

func (s *CartStore) removeLocked(ctx context.Context, productID, size, color string) {
	kept := s.cart[:0]
	for _, l := range s.cart {
		if !l.Matches(productID, size, color) {
			kept = append(kept, l)
		}
	}
	s.cart = kept
	s.persist(ctx)
}

// SetQuantity overwrites the matching line's quantity. A quantity
// below one is a removal.
func (s *CartStore) SetQuantity(ctx context.Context, productID, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(ctx, productID, size, color)
		return
	}
	for i := range s.cart {
		if s.cart[i].Matches(productID, size, color) {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persist(ctx)
}

// Lines returns a copy of the current lines, insertion order intact.
func (s *CartStore) Lines() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)
	return out
}

// Total is the subtotal, recomputed from the lines on every call.
func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Count is the article count, quantities included.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// persist writes through to storage. A write failure does not undo the
// in-memory mutation; the cart is convenience state, not money.
func (s *CartStore) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.cart); err != nil {
		logging.FromCtx(ctx).Error("cart save failed", "err", err)
	}
}
