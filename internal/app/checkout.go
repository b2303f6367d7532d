package app

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"hotel_portal/internal/domain"
)

// ErrConfirmationPending is the partial-failure outcome: the payment went
// through but the booking status patch did not. The two calls are not
// transactional and nothing retries or rolls back; the caller must show this
// message, not the generic payment failure.
var ErrConfirmationPending = errors.New("Payment processed but booking status update failed. Please contact support.")

// CheckoutService runs the two-step payment flow: charge through the payment
// service, then confirm the booking through the booking service.
type CheckoutService struct {
	rooms    domain.RoomsAPI
	payments domain.PaymentAPI
	log      zerolog.Logger
}

func NewCheckoutService(rooms domain.RoomsAPI, payments domain.PaymentAPI, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{rooms: rooms, payments: payments, log: log}
}

func (s *CheckoutService) Pay(ctx context.Context, bookingID int64, form domain.PaymentForm) (domain.PaymentRecord, error) {
	if err := form.Validate(); err != nil {
		return domain.PaymentRecord{}, err
	}

	booking, err := s.rooms.GetBooking(ctx, bookingID)
	if err != nil {
		return domain.PaymentRecord{}, errors.Wrap(err, "load booking")
	}

	due := booking.TotalAmount - booking.PaidAmount
	customerName := form.CardName
	if customerName == "" {
		customerName = booking.GuestName
	}
	req := domain.PaymentRequest{
		BookingID:          bookingID,
		Amount:             due,
		PaymentMethod:      form.MethodCode(),
		Status:             domain.PaymentPending,
		CustomerEmail:      booking.GuestEmail,
		CustomerName:       customerName,
		Description:        fmt.Sprintf("Payment for Room %s booking", roomNumberOf(booking)),
		CardLastFourDigits: form.CardLastFour(),
		CardType:           form.CardType(),
	}

	rec, err := s.payments.CreatePayment(ctx, req)
	if err != nil {
		return domain.PaymentRecord{}, errors.Wrap(err, "payment failed")
	}

	if err := s.rooms.UpdateBookingStatus(ctx, bookingID, domain.ReservationConfirmed); err != nil {
		s.log.Error().Err(err).Int64("booking_id", bookingID).Str("payment_id", rec.ID).
			Msg("payment succeeded but booking confirmation failed")
		return rec, ErrConfirmationPending
	}
	return rec, nil
}

func roomNumberOf(b domain.BookingRecord) string {
	if b.Room != nil && b.Room.RoomNumber != "" {
		return b.Room.RoomNumber
	}
	return "N/A"
}
