//go:build e2e

package e2e

import (
	"context"
	"sync"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra/payment/stripe"
	"court-booking/internal/usecase/commands"
)

// FakeGateway keeps webhook verification on the real Stripe code path and
// answers checkout creation and polling from memory.
type FakeGateway struct {
	*stripe.Gateway

	mu       sync.Mutex
	outcomes map[string]payment.Outcome
	amounts  map[string]int64
}

func NewFakeGateway(real *stripe.Gateway) *FakeGateway {
	return &FakeGateway{
		Gateway:  real,
		outcomes: make(map[string]payment.Outcome),
		amounts:  make(map[string]int64),
	}
}

func (g *FakeGateway) CreateCheckout(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sessionID := "cs_test_" + req.BookingID
	g.outcomes[sessionID] = payment.OutcomeUnpaid
	g.amounts[sessionID] = req.AmountMinor
	return &commands.CheckoutSession{
		SessionID:   sessionID,
		RedirectURL: "https://checkout.stripe.test/c/pay/" + sessionID,
	}, nil
}

func (g *FakeGateway) FetchStatus(_ context.Context, sessionID string) (*payment.Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome, ok := g.outcomes[sessionID]
	if !ok {
		outcome = payment.OutcomeUnpaid
	}
	status := "open"
	switch outcome {
	case payment.OutcomePaid:
		status = "complete"
	case payment.OutcomeExpired:
		status = "expired"
	}
	return &payment.Report{
		SessionID:     sessionID,
		Outcome:       outcome,
		SessionStatus: status,
		AmountTotal:   g.amounts[sessionID],
		Currency:      "aed",
	}, nil
}

// Settle sets what the next poll of sessionID reports.
func (g *FakeGateway) Settle(sessionID string, outcome payment.Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outcomes[sessionID] = outcome
}
