package stripe

import (
	"context"
	"encoding/json"
	"log/slog"

	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

const (
	eventSessionCompleted = "checkout.session.completed"
	eventSessionExpired   = "checkout.session.expired"

	metaBookingID = "booking_id"
	metaUserID    = "user_id"
)

type Gateway struct {
	api           *client.API
	webhookSecret string
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	api := &client.API{}
	api.Init(cfg.StripeAPIKey, nil)
	return &Gateway{api: api, webhookSecret: cfg.StripeWebhookSecret}
}

func (g *Gateway) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL:        stripego.String(req.ReturnOrigin + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripego.String(req.ReturnOrigin + "/bookings"),
		ClientReferenceID: stripego.String(req.BookingID),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripego.String(req.Currency),
					UnitAmount: stripego.Int64(req.AmountMinor),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(req.Description),
					},
				},
				Quantity: stripego.Int64(1),
			},
		},
	}
	params.AddMetadata(metaBookingID, req.BookingID)
	params.AddMetadata(metaUserID, req.UserID)
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe: create checkout session"), errs.ErrUpstream)
	}
	return &commands.CheckoutSession{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

func (g *Gateway) FetchStatus(ctx context.Context, sessionID string) (*payment.Report, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "stripe: get checkout session %s", sessionID), errs.ErrUpstream)
	}
	return ReportFromSession(sess), nil
}

func (g *Gateway) ParseWebhook(_ context.Context, payload []byte, signature string) (*payment.Report, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		slog.Debug("stripe webhook verification failed", "error", err.Error())
		return nil, payment.ErrInvalidSignature
	}

	switch string(event.Type) {
	case eventSessionCompleted, eventSessionExpired:
	default:
		slog.Debug("stripe webhook ignored", "type", string(event.Type), "event_id", event.ID)
		return nil, nil
	}

	var sess stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Wrap(err, "stripe: decode checkout session")
	}
	return ReportFromSession(&sess), nil
}

// ReportFromSession maps a checkout session onto a processor outcome.
func ReportFromSession(sess *stripego.CheckoutSession) *payment.Report {
	outcome := payment.OutcomeUnpaid
	switch {
	case sess.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid:
		outcome = payment.OutcomePaid
	case sess.Status == stripego.CheckoutSessionStatusExpired:
		outcome = payment.OutcomeExpired
	}
	return &payment.Report{
		SessionID:     sess.ID,
		Outcome:       outcome,
		SessionStatus: string(sess.Status),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}
}
