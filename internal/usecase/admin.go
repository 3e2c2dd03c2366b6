package usecase

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/logging"
)

var ErrBadStatus = errors.New("invalid status transition")

// Admin backs the dashboard: stats, the order list and catalog
// management.
type Admin struct {
	catalog CatalogRepo
	orders  OrderRepo
	stats   StatsRepo
}

func NewAdmin(catalog CatalogRepo, orders OrderRepo, stats StatsRepo) *Admin {
	return &Admin{catalog: catalog, orders: orders, stats: stats}
}

// Stats never fails the dashboard: on backend error it degrades to a
// zeroed aggregate.
func (a *Admin) Stats(ctx context.Context) domain.Stats {
	st, err := a.stats.Stats(ctx)
	if err != nil {
		logging.FromCtx(ctx).Error("stats query failed, serving zeroes", "err", err)
		return domain.Stats{MonthlyRevenue: []domain.MonthBucket{}}
	}
	return st
}

// Orders returns all orders, newest first.
func (a *Admin) Orders(ctx context.Context) ([]domain.Order, error) {
	return a.orders.ListOrders(ctx)
}

// AddProduct validates and stores a new catalog entry.
func (a *Admin) AddProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	return a.catalog.AddProduct(ctx, p)
}

// SetOrderStatus moves a pending order to delivered or cancelled.
func (a *Admin) SetOrderStatus(ctx context.Context, id string, to domain.Status) error {
	switch to {
	case domain.StatusDelivered, domain.StatusCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrBadStatus, to)
	}
	return a.orders.UpdateStatus(ctx, id, to)
}
