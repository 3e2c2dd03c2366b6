package repo

import (
	"context"
	"sync"
	"time"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/google/uuid"
)

// MemoryStore is the backend stand-in used when no MySQL DSN is
// configured, mirroring the original's demo mode. It serves a seeded
// catalog and keeps orders in memory, newest first.
type MemoryStore struct {
	mu       sync.Mutex
	products []domain.Product
	orders   []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: demoCatalog()}
}

func demoCatalog() []domain.Product {
	sizes := []string{"S", "M", "L", "XL"}
	return []domain.Product{
		{ID: "1", Name: "Chemise Oxford Blanche", Price: 15000, Category: "Chemises", ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab", Sizes: sizes, Colors: []string{"Blanc", "Bleu"}},
		{ID: "2", Name: "Pantalon Chino Beige", Price: 12000, Category: "Pantalons", ImageURL: "https://images.unsplash.com/photo-1473966968600-fa801b869a1a", Sizes: sizes},
		{ID: "3", Name: "T-shirt Noir Premium", Price: 5000, Category: "T-shirts", ImageURL: "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a", Sizes: sizes, Colors: []string{"Noir", "Blanc"}},
		{ID: "4", Name: "Veste Jean Denim", Price: 25000, Category: "Vestes", ImageURL: "https://images.unsplash.com/photo-1576871337622-98d48d1cf531", Sizes: sizes},
		{ID: "5", Name: "Short Cargo Kaki", Price: 8000, Category: "Shorts", ImageURL: "https://images.unsplash.com/photo-1565557623262-b51c2513a641", Sizes: sizes},
		{ID: "6", Name: "Polo Bleu Marine", Price: 9000, Category: "T-shirts", ImageURL: "https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99", Sizes: sizes, Colors: []string{"Bleu", "Marine"}},
	}
}

func (m *MemoryStore) ListProducts(_ context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) AddProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	m.products = append(m.products, p)
	return p, nil
}

func (m *MemoryStore) CreateOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = uuid.NewString()
	o.Status = domain.StatusPending
	o.CreatedAt = time.Now()
	// Prepend keeps the list newest first without sorting on read.
	m.orders = append([]domain.Order{o}, m.orders...)
	return o, nil
}

func (m *MemoryStore) ListOrders(_ context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id string, to domain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = to
			return nil
		}
	}
	return usecase.ErrNotFound
}

func (m *MemoryStore) Stats(_ context.Context) (domain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := domain.Stats{TotalOrders: len(m.orders)}
	byMonth := map[string]*domain.MonthBucket{}
	var keys []string
	for i := len(m.orders) - 1; i >= 0; i-- { // oldest first for buckets
		o := m.orders[i]
		st.TotalRevenue += o.TotalAmount
		key := o.CreatedAt.Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &domain.MonthBucket{Name: monthLabel(o.CreatedAt.Month())}
			byMonth[key] = b
			keys = append(keys, key)
		}
		b.Value += o.TotalAmount
	}
	for _, k := range keys {
		st.MonthlyRevenue = append(st.MonthlyRevenue, *byMonth[k])
	}
	return st, nil
}

var (
	_ usecase.CatalogRepo = (*MemoryStore)(nil)
	_ usecase.OrderRepo   = (*MemoryStore)(nil)
	_ usecase.StatsRepo   = (*MemoryStore)(nil)
)
