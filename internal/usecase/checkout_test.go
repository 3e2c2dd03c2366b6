package usecase

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrders records created orders and can be told to reject.
type fakeOrders struct {
	created []domain.Order
	err     error
}

func (f *fakeOrders) CreateOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	o.ID = "ord-1"
	o.Status = domain.StatusPending
	f.created = append(f.created, o)
	return o, nil
}

func (f *fakeOrders) ListOrders(context.Context) ([]domain.Order, error) { return f.created, nil }
func (f *fakeOrders) UpdateStatus(context.Context, string, domain.Status) error {
	return nil
}

// fakeIdem is a map-backed IdempotencyStore.
type fakeIdem struct{ m map[string]string }

func (f *fakeIdem) Remember(_ context.Context, scope, key, value string) error {
	f.m[scope+":"+key] = value
	return nil
}

func (f *fakeIdem) Recall(_ context.Context, scope, key string) (string, bool, error) {
	v, ok := f.m[scope+":"+key]
	return v, ok, nil
}

// outageIdem answers every recall the way an unreachable store would.
type outageIdem struct{ remembered int }

func (o *outageIdem) Remember(context.Context, string, string, string) error {
	o.remembered++
	return nil
}

func (o *outageIdem) Recall(context.Context, string, string) (string, bool, error) {
	return "", true, errors.New("redis: connection refused")
}

func filledCart(t *testing.T) *CartStore {
	t.Helper()
	cart := NewCartStore(context.Background(), &memStorage{})
	cart.Add(context.Background(), domain.Product{ID: "1", Name: "Chemise", Price: 15000}, "M", "Blanc")
	cart.Add(context.Background(), domain.Product{ID: "3", Name: "T-shirt", Price: 5000}, "M", "Noir")
	// subtotal 20000
	return cart
}

func TestBeginRequiresNonEmptyCart(t *testing.T) {
	empty := NewCartStore(context.Background(), &memStorage{})
	flow := NewCheckoutFlow(empty, &fakeOrders{}, nil)

	assert.ErrorIs(t, flow.Begin(), ErrEmptyCart)
	assert.Equal(t, StepCart, flow.Step())
}

func TestBeginAndBack(t *testing.T) {
	flow := NewCheckoutFlow(filledCart(t), &fakeOrders{}, nil)

	require.NoError(t, flow.Begin())
	assert.Equal(t, StepCheckout, flow.Step())

	// begin is only valid from the cart step
	assert.ErrorIs(t, flow.Begin(), ErrFlowState)

	require.NoError(t, flow.Back())
	assert.Equal(t, StepCart, flow.Step())
}

func TestSubmitValidatesForm(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		address string
	}{
		{name: "empty phone", phone: "", address: "Cocody"},
		{name: "empty address", phone: "0707070707", address: ""},
		{name: "whitespace only", phone: "   ", address: "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := filledCart(t)
			backend := &fakeOrders{}
			flow := NewCheckoutFlow(cart, backend, nil)
			require.NoError(t, flow.Begin())

			_, err := flow.Submit(context.Background(), SubmitInput{
				Phone: tt.phone, Zone: domain.ZoneAbidjan, Address: tt.address,
			})

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Equal(t, StepCheckout, flow.Step())
			assert.Equal(t, 2, cart.Count(), "cart must be unchanged")
			assert.Empty(t, backend.created)
		})
	}
}

func TestSubmitPricesDelivery(t *testing.T) {
	tests := []struct {
		name      string
		zone      domain.Zone
		wantFee   int64
		wantTotal int64
	}{
		{name: "abidjan", zone: domain.ZoneAbidjan, wantFee: 1500, wantTotal: 21500},
		{name: "outside abidjan", zone: domain.ZoneOutside, wantFee: 2000, wantTotal: 22000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeOrders{}
			flow := NewCheckoutFlow(filledCart(t), backend, nil)
			require.NoError(t, flow.Begin())

			order, err := flow.Submit(context.Background(), SubmitInput{
				Phone: "0707070707", Zone: tt.zone, Address: "Cocody Riviera 2",
			})

			require.NoError(t, err)
			assert.Equal(t, int64(20000), order.Subtotal)
			assert.Equal(t, tt.wantFee, order.DeliveryFee)
			assert.Equal(t, tt.wantTotal, order.TotalAmount)
			assert.Equal(t, string(tt.zone), order.CustomerCity)
		})
	}
}

func TestSubmitSuccessClearsCartAndFinishes(t *testing.T) {
	cart := filledCart(t)
	backend := &fakeOrders{}
	flow := NewCheckoutFlow(cart, backend, nil)
	require.NoError(t, flow.Begin())

	order, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, StepSuccess, flow.Step())
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.Total())
}

func TestSubmitFailureKeepsCartAndStep(t *testing.T) {
	cart := filledCart(t)
	backend := &fakeOrders{err: errors.New("network down")}
	flow := NewCheckoutFlow(cart, backend, nil)
	require.NoError(t, flow.Begin())

	_, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody",
	})

	require.Error(t, err)
	assert.Equal(t, StepCheckout, flow.Step())
	assert.Equal(t, 2, cart.Count(), "cart must survive a rejected submission")

	// manual retry goes through once the backend recovers
	backend.err = nil
	_, err = flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody",
	})
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, flow.Step())
}

func TestSubmitRecallsRememberedOrder(t *testing.T) {
	idem := &fakeIdem{m: map[string]string{}}
	cart := filledCart(t)
	backend := &fakeOrders{}
	flow := NewCheckoutFlow(cart, backend, idem)
	require.NoError(t, flow.Begin())

	first, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody", IdemKey: "k1",
	})
	require.NoError(t, err)

	// the client resends the same submission after success
	require.NoError(t, flow.Exit())
	cart.Add(context.Background(), domain.Product{ID: "1", Price: 15000}, "M", "Blanc")
	require.NoError(t, flow.Begin())

	again, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody", IdemKey: "k1",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, backend.created, 1, "backend must not see a second order")
}

func TestSubmitRecallErrorFallsThroughToCreation(t *testing.T) {
	cart := filledCart(t)
	backend := &fakeOrders{}
	idem := &outageIdem{}
	flow := NewCheckoutFlow(cart, backend, idem)
	require.NoError(t, flow.Begin())

	order, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody", IdemKey: "k1",
	})

	// the failed lookup must not pass for an already-confirmed order
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Len(t, backend.created, 1, "the order goes through the backend as usual")
	assert.Equal(t, StepSuccess, flow.Step())
	assert.Equal(t, 1, idem.remembered)
}

func TestSubmitIgnoresEmptyRecalledID(t *testing.T) {
	idem := &fakeIdem{m: map[string]string{"checkout:k1": ""}}
	backend := &fakeOrders{}
	flow := NewCheckoutFlow(filledCart(t), backend, idem)
	require.NoError(t, flow.Begin())

	order, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody", IdemKey: "k1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
	assert.Len(t, backend.created, 1)
}

func TestSubmitRejectsCartEmptiedDuringCheckout(t *testing.T) {
	cart := filledCart(t)
	backend := &fakeOrders{}
	flow := NewCheckoutFlow(cart, backend, nil)
	require.NoError(t, flow.Begin())

	// the cart endpoints stay usable during checkout, so the lines can
	// vanish between Begin and Submit
	cart.Remove(context.Background(), "1", "M", "Blanc")
	cart.Remove(context.Background(), "3", "M", "Noir")

	_, err := flow.Submit(context.Background(), SubmitInput{
		Phone: "0707070707", Zone: domain.ZoneAbidjan, Address: "Cocody",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, StepCheckout, flow.Step())
	assert.Empty(t, backend.created)
}

func TestExitOnlyFromSuccess(t *testing.T) {
	flow := NewCheckoutFlow(filledCart(t), &fakeOrders{}, nil)
	assert.ErrorIs(t, flow.Exit(), ErrFlowState)
}
