package converter

import (
	"errors"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/payment"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
)

var errInvalidPaymentStatus = errors.New("invalid payment status")

func BookingToInsertParams(b *booking.Booking) query.InsertBookingParams {
	return query.InsertBookingParams{
		BookingID:     b.ID(),
		UserID:        b.UserID(),
		CourtID:       b.CourtID(),
		BookingDate:   pgconv.DateToPgtype(b.Date().Time()),
		TimeSlot:      b.Slot().String(),
		Duration:      int32(b.Duration().Minutes()),
		PriceMinor:    b.Price().Minor(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row query.Booking) (*booking.Booking, error) {
	slot, err := booking.ParseSlot(row.TimeSlot)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := PaymentStatusFromRow(row.PaymentStatus)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(row.PriceMinor)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.BookingID,
		row.UserID,
		row.CourtID,
		booking.DateOf(pgconv.DateFromPgtype(row.BookingDate)),
		slot,
		price,
		status,
		paymentStatus,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func PaymentStatusFromRow(s string) (payment.Status, error) {
	st := payment.Status(s)
	if !st.IsValid() {
		return "", errInvalidPaymentStatus
	}
	return st, nil
}

func TransactionToInsertParams(t *payment.Transaction) query.InsertPaymentTransactionParams {
	return query.InsertPaymentTransactionParams{
		TransactionID: t.ID(),
		BookingID:     t.BookingID(),
		UserID:        t.UserID(),
		SessionID:     t.SessionID(),
		AmountMinor:   t.Amount(),
		Currency:      t.Currency(),
		PaymentStatus: t.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TransactionFromRow(row query.PaymentTransaction) (*payment.Transaction, error) {
	status, err := PaymentStatusFromRow(row.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructTransaction(
		row.TransactionID,
		row.BookingID,
		row.UserID,
		row.SessionID,
		row.AmountMinor,
		row.Currency,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
