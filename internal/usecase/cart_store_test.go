package usecase

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-process CartStorage that counts writes.
type memStorage struct {
	cart    domain.Cart
	saves   int
	loadErr error
}

func (m *memStorage) Load(context.Context) (domain.Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.cart, nil
}

func (m *memStorage) Save(_ context.Context, cart domain.Cart) error {
	m.cart = append(domain.Cart{}, cart...)
	m.saves++
	return nil
}

var tshirt = domain.Product{ID: "1", Name: "T-shirt", Price: 15000, Category: "T-shirts"}

func newTestStore(t *testing.T) (*CartStore, *memStorage) {
	t.Helper()
	st := &memStorage{}
	return NewCartStore(context.Background(), st), st
}

func TestAddMergesOnIdentityTriple(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, tshirt, "M", "Bleu")
	s.Add(ctx, tshirt, "M", "Bleu")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(30000), s.Total())
	assert.Equal(t, 2, s.Count())
}

func TestAddDistinguishesSizeAndColor(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, tshirt, "M", "Bleu")
	s.Add(ctx, tshirt, "L", "Bleu")
	s.Add(ctx, tshirt, "M", "Noir")

	require.Len(t, s.Lines(), 3)
	for _, l := range s.Lines() {
		assert.Equal(t, 1, l.Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "overwrites exactly", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes", quantity: 0, wantLines: 0},
		{name: "negative removes", quantity: -1, wantLines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := newTestStore(t)
			s.Add(ctx, tshirt, "M", "Bleu")

			s.SetQuantity(ctx, "1", "M", "Bleu", tt.quantity)

			lines := s.Lines()
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, lines[0].Quantity)
			}
		})
	}
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.Add(ctx, tshirt, "M", "Bleu")

	s.Remove(ctx, "1", "XL", "Bleu")
	s.Remove(ctx, "99", "M", "Bleu")

	assert.Len(t, s.Lines(), 1)
}

func TestDerivedValuesAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	pants := domain.Product{ID: "2", Name: "Chino", Price: 12000}

	s.Add(ctx, tshirt, "M", "Bleu")
	s.Add(ctx, pants, "L", "Beige")
	assert.Equal(t, int64(27000), s.Total())
	assert.Equal(t, 2, s.Count())

	s.SetQuantity(ctx, "2", "L", "Beige", 3)
	assert.Equal(t, int64(51000), s.Total())
	assert.Equal(t, 4, s.Count())

	s.Remove(ctx, "1", "M", "Bleu")
	s.Remove(ctx, "2", "L", "Beige")
	assert.Equal(t, int64(0), s.Total())
	assert.Equal(t, 0, s.Count())
}

func TestPersistsAfterEachMutation(t *testing.T) {
	ctx := context.Background()
	s, st := newTestStore(t)

	s.Add(ctx, tshirt, "M", "Bleu")
	s.SetQuantity(ctx, "1", "M", "Bleu", 4)
	s.Remove(ctx, "1", "M", "Bleu")
	s.Clear(ctx)

	assert.Equal(t, 4, st.saves)
	assert.Empty(t, st.cart)
}

func TestLoadsPersistedCartAtInit(t *testing.T) {
	st := &memStorage{cart: domain.Cart{{ProductID: "1", Price: 15000, Quantity: 2, Size: "M", Color: "Bleu"}}}
	s := NewCartStore(context.Background(), st)

	assert.Equal(t, int64(30000), s.Total())
	assert.Equal(t, 2, s.Count())
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	st := &memStorage{loadErr: errors.New("boom")}
	s := NewCartStore(context.Background(), st)

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Lines())
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	pants := domain.Product{ID: "2", Name: "Chino", Price: 12000}
	jacket := domain.Product{ID: "4", Name: "Veste", Price: 25000}

	s.Add(ctx, pants, "L", "Beige")
	s.Add(ctx, tshirt, "M", "Bleu")
	s.Add(ctx, jacket, "M", "Bleu")
	s.Add(ctx, pants, "L", "Beige") // merge must not reorder

	ids := []string{}
	for _, l := range s.Lines() {
		ids = append(ids, l.ProductID)
	}
	assert.Equal(t, []string{"2", "1", "4"}, ids)
}
