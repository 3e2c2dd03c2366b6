package usecase

import (
	"context"
	"errors"

	domain "github.com/Benian44/ly-confection/internal/entity"
)

// ErrNotFound is returned by repos when the addressed record does not
// exist.
var ErrNotFound = errors.New("not found")

// CatalogRepo is the product side of the backend.
type CatalogRepo interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, p domain.Product) (domain.Product, error)
}

// OrderRepo is the order side of the backend. CreateOrder assigns the
// id, the pending status and the timestamp; ListOrders returns newest
// first.
type OrderRepo interface {
	CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) error
}

// StatsRepo aggregates orders for the admin dashboard.
type StatsRepo interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// CartStorage is the durable slot the cart is serialized into after
// every mutation. Load returns an empty cart for absent or corrupt
// data rather than an error; losing a cart is never fatal.
type CartStorage interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

// IdempotencyStore lets a resubmitted checkout recall an order that
// already went through instead of creating a duplicate.
type IdempotencyStore interface {
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
