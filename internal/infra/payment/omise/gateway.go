package omise

import (
	"context"
	"encoding/json"
	"log/slog"

	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	omisego "github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

const eventChargeComplete = "charge.complete"

// Gateway charges through an offsite source. Omise webhooks are unsigned,
// so an event is only trusted after it is fetched back from the API.
type Gateway struct {
	client     *omisego.Client
	sourceType string
}

func NewGateway(cfg config.PaymentConfig) (*Gateway, error) {
	c, err := omisego.NewClient(cfg.OmisePublicKey, cfg.OmiseSecretKey)
	if err != nil {
		return nil, errs.Wrap(err, "omise: create client")
	}
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	return &Gateway{client: c, sourceType: cfg.OmiseSourceType}, nil
}

func (g *Gateway) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Mark(err, errs.ErrUpstream)
	}

	src := &omisego.Source{}
	if err := g.client.Do(src, &operations.CreateSource{
		Type:     g.sourceType,
		Amount:   req.AmountMinor,
		Currency: req.Currency,
	}); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "omise: create source"), errs.ErrUpstream)
	}

	ch := &omisego.Charge{}
	if err := g.client.Do(ch, &operations.CreateCharge{
		Amount:      req.AmountMinor,
		Currency:    req.Currency,
		Source:      src.ID,
		Description: req.Description,
		ReturnURI:   req.ReturnOrigin + "/payment-success?booking_id=" + req.BookingID,
		Metadata: map[string]interface{}{
			"booking_id": req.BookingID,
			"user_id":    req.UserID,
		},
	}); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "omise: create charge"), errs.ErrUpstream)
	}

	return &commands.CheckoutSession{SessionID: ch.ID, RedirectURL: ch.AuthorizeURI}, nil
}

func (g *Gateway) FetchStatus(ctx context.Context, sessionID string) (*payment.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Mark(err, errs.ErrUpstream)
	}

	ch := &omisego.Charge{}
	if err := g.client.Do(ch, &operations.RetrieveCharge{ChargeID: sessionID}); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "omise: retrieve charge %s", sessionID), errs.ErrUpstream)
	}
	return ReportFromCharge(ch), nil
}

type incomingEvent struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

func (g *Gateway) ParseWebhook(_ context.Context, payload []byte, _ string) (*payment.Report, error) {
	var inc incomingEvent
	if err := json.Unmarshal(payload, &inc); err != nil || inc.ID == "" {
		return nil, payment.ErrInvalidSignature
	}

	ev := &omisego.Event{}
	if err := g.client.Do(ev, &operations.RetrieveEvent{EventID: inc.ID}); err != nil {
		slog.Warn("omise event lookup failed", "event_id", inc.ID, "error", err.Error())
		return nil, payment.ErrInvalidSignature
	}
	if ev.Key != eventChargeComplete {
		slog.Debug("omise webhook ignored", "key", ev.Key, "event_id", ev.ID)
		return nil, nil
	}

	raw, err := json.Marshal(ev.Data)
	if err != nil {
		return nil, errs.Wrap(err, "omise: encode event data")
	}
	var ch omisego.Charge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, errs.Wrap(err, "omise: decode charge")
	}
	return ReportFromCharge(&ch), nil
}

// ReportFromCharge treats every terminal non-successful charge as expired.
func ReportFromCharge(ch *omisego.Charge) *payment.Report {
	outcome := payment.OutcomeUnpaid
	switch string(ch.Status) {
	case "successful":
		outcome = payment.OutcomePaid
	case "failed", "expired", "reversed":
		outcome = payment.OutcomeExpired
	}

	meta := make(map[string]string, len(ch.Metadata))
	for k, v := range ch.Metadata {
		if s, ok := v.(string); ok {
			meta[k] = s
		}
	}
	return &payment.Report{
		SessionID:     ch.ID,
		Outcome:       outcome,
		SessionStatus: string(ch.Status),
		AmountTotal:   ch.Amount,
		Currency:      ch.Currency,
		Metadata:      meta,
	}
}
