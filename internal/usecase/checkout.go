package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/logging"
)

// Flow steps. The empty-cart view is a rendering branch of StepCart,
// not a step of its own.
type Step string

const (
	StepCart     Step = "cart"
	StepCheckout Step = "checkout"
	StepSuccess  Step = "success"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrFlowState    = errors.New("action not allowed in current step")
	ErrMissingField = errors.New("phone and address are required")
)

// CheckoutFlow is the linear cart → checkout → success machine. A
// rejected submission leaves the flow in checkout with the cart
// intact, so the shopper can resubmit.
type CheckoutFlow struct {
	mu     sync.Mutex
	step   Step
	cart   *CartStore
	orders OrderRepo
	idem   IdempotencyStore
}

func NewCheckoutFlow(cart *CartStore, orders OrderRepo, idem IdempotencyStore) *CheckoutFlow {
	return &CheckoutFlow{step: StepCart, cart: cart, orders: orders, idem: idem}
}

// Step returns the current step.
func (f *CheckoutFlow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Begin moves cart → checkout. Only allowed with a non-empty cart.
func (f *CheckoutFlow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepCart {
		return ErrFlowState
	}
	if f.cart.Count() == 0 {
		return ErrEmptyCart
	}
	f.step = StepCheckout
	return nil
}

// Back returns checkout → cart without side effects.
func (f *CheckoutFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepCheckout {
		return ErrFlowState
	}
	f.step = StepCart
	return nil
}

// SubmitInput carries the delivery form. IdemKey is optional; when a
// client resends it after a success it gets the same order back.
type SubmitInput struct {
	Phone   string
	Zone    domain.Zone
	Address string
	IdemKey string
}

// Submit finalizes the order: validates the form, prices the delivery,
// hands the payload to the backend, and only then clears the cart and
// moves to success. Any backend rejection keeps the cart and the step.
func (f *CheckoutFlow) Submit(ctx context.Context, in SubmitInput) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepCheckout {
		return domain.Order{}, ErrFlowState
	}

	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if phone == "" || address == "" {
		return domain.Order{}, ErrMissingField
	}

	// A resend of an already-confirmed submission short-circuits to
	// the recorded order id instead of charging the backend twice. A
	// recall failure or an empty recalled id is never proof of a prior
	// success, so those fall through to a normal submission.
	if f.idem != nil && in.IdemKey != "" {
		id, ok, err := f.idem.Recall(ctx, "checkout", in.IdemKey)
		if err != nil {
			logging.FromCtx(ctx).Warn("idempotency recall failed, submitting normally", "err", err)
		} else if ok && id != "" {
			f.cart.Clear(ctx)
			f.step = StepSuccess
			return domain.Order{ID: id, Status: domain.StatusPending}, nil
		}
	}

	lines := f.cart.Lines()
	subtotal := lines.Total()
	fee := in.Zone.Fee()

	payload := domain.Order{
		CustomerPhone:   phone,
		CustomerCity:    string(in.Zone),
		CustomerAddress: address,
		Items:           lines,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		TotalAmount:     subtotal + fee,
	}
	// The cart can be edited behind the flow's back, so the payload is
	// checked whole before it travels.
	if err := payload.Validate(); err != nil {
		return domain.Order{}, err
	}

	created, err := f.orders.CreateOrder(ctx, payload)
	if err != nil {
		return domain.Order{}, err
	}

	// Remembered only after success: a failed submission must stay
	// retryable under the same key.
	if f.idem != nil && in.IdemKey != "" {
		_ = f.idem.Remember(ctx, "checkout", in.IdemKey, created.ID)
	}

	f.cart.Clear(ctx)
	f.step = StepSuccess
	return created, nil
}

// Exit leaves the terminal success view back to the (now empty) cart.
func (f *CheckoutFlow) Exit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepSuccess {
		return ErrFlowState
	}
	f.step = StepCart
	return nil
}
