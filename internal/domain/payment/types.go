package payment

import "errors"

var (
	ErrAlreadyPaid         = errors.New("booking already paid")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrUnknownOutcome      = errors.New("unknown processor outcome")
	ErrEmptySessionID      = errors.New("external session id is empty")
	ErrNonPositiveAmount   = errors.New("checkout amount must be positive")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Status is shared by bookings and transactions.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

// Outcome is the processor's view of a checkout session.
type Outcome string

const (
	OutcomePaid    Outcome = "paid"
	OutcomeUnpaid  Outcome = "unpaid"
	OutcomeExpired Outcome = "expired"
)

// Report is what the processor told us about one checkout session,
// obtained either by polling or from a verified webhook.
type Report struct {
	SessionID     string
	Outcome       Outcome
	SessionStatus string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

type Transition int

const (
	TransitionNone Transition = iota
	TransitionMarkPaid
	TransitionMarkFailed
)

// Decide is the reconciliation state machine for one transaction.
// paid is terminal: every later report is a no-op.
func Decide(current Status, outcome Outcome) (Transition, error) {
	if current == StatusPaid {
		return TransitionNone, nil
	}
	switch outcome {
	case OutcomePaid:
		return TransitionMarkPaid, nil
	case OutcomeExpired:
		if current == StatusPending {
			return TransitionMarkFailed, nil
		}
		return TransitionNone, nil
	case OutcomeUnpaid:
		return TransitionNone, nil
	default:
		return TransitionNone, ErrUnknownOutcome
	}
}
