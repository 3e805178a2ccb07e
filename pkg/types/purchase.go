package types

import "errors"

// Purchase session states. A session moves Idle -> Selected -> Idle on
// cancel, or Idle -> Selected -> Confirmed -> Idle on completion. Confirmed
// is terminal: it produces a user notification and nothing else.
const (
	PurchaseIdle      = "idle"
	PurchaseSelected  = "selected"
	PurchaseConfirmed = "confirmed"
)

// Purchase session errors.
var (
	ErrNoSelection       = errors.New("no product selected")
	ErrInvalidTransition = errors.New("invalid purchase transition")
)

// PurchaseSession tracks a single selected product and its pending state.
// It never moves money and never writes to the store; the only catalog
// effect of a confirmed purchase is an optional in-memory stock decrement.
type PurchaseSession struct {
	State   string
	Product *Product
}

// NewPurchaseSession returns an idle session with nothing selected.
func NewPurchaseSession() *PurchaseSession {
	return &PurchaseSession{State: PurchaseIdle}
}

// Select moves the session to Selected for the given product.
// Selecting while another product is pending returns ErrInvalidTransition.
func (s *PurchaseSession) Select(p *Product) error {
	if p == nil {
		return ErrNoSelection
	}
	if s.State != PurchaseIdle {
		return ErrInvalidTransition
	}
	s.State = PurchaseSelected
	s.Product = p
	return nil
}

// Cancel abandons the pending selection and returns to Idle.
// Idempotent: canceling an idle session succeeds.
func (s *PurchaseSession) Cancel() {
	s.State = PurchaseIdle
	s.Product = nil
}

// Confirm completes the pending purchase and returns the purchased product
// for the caller's notification. When the product tracks stock, the counter
// is decremented with a floor of zero. Confirmed is terminal: the only
// transition out is Cancel back to Idle.
func (s *PurchaseSession) Confirm() (*Product, error) {
	if s.State != PurchaseSelected || s.Product == nil {
		return nil, ErrInvalidTransition
	}
	s.State = PurchaseConfirmed
	p := s.Product
	p.DecrementStock()
	return p, nil
}
