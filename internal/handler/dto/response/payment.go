package response

import "court-booking/internal/usecase/commands"

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type PaymentStatusResponse struct {
	SessionID     string  `json:"session_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountTotal   int64   `json:"amount_total"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{URL: r.URL, SessionID: r.SessionID}
}

func FromPaymentStatus(s *commands.PaymentStatus) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		SessionID:     s.SessionID,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		AmountTotal:   s.AmountTotal,
		Amount:        float64(s.AmountTotal) / 100.0,
		Currency:      s.Currency,
	}
}
