package backend

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"hotel_portal/internal/domain"
)

// RoomsClient talks to the room/booking service, which returns raw JSON
// records rather than the envelope.
type RoomsClient struct{ c *Client }

func NewRooms(base string, tokens TokenSource, timeout time.Duration, rps int) *RoomsClient {
	return &RoomsClient{c: newClient("rooms", base, tokens, timeout, rps)}
}

func (r *RoomsClient) ListRooms(ctx context.Context, filters map[string]string) ([]domain.RoomRecord, error) {
	path := "/rooms/all"
	if len(filters) > 0 {
		q := url.Values{}
		keys := make([]string, 0, len(filters))
		for k := range filters {
			keys = append(keys, k)
		}
		sort.Strings(keys) // stable query string
		for _, k := range keys {
			q.Set(k, filters[k])
		}
		path += "?" + q.Encode()
	}
	var out []domain.RoomRecord
	err := r.c.do(ctx, "GET", path, "GET /rooms/all", nil, &out)
	return out, err
}

func (r *RoomsClient) CreateBooking(ctx context.Context, req domain.CreateBookingRequest) (domain.BookingRecord, error) {
	var rec domain.BookingRecord
	err := r.c.do(ctx, "POST", "/bookings", "POST /bookings", req, &rec)
	return rec, err
}

func (r *RoomsClient) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	var out []domain.BookingRecord
	err := r.c.do(ctx, "GET", "/bookings", "GET /bookings", nil, &out)
	return out, err
}

func (r *RoomsClient) GetBooking(ctx context.Context, id int64) (domain.BookingRecord, error) {
	var rec domain.BookingRecord
	err := r.c.do(ctx, "GET", fmt.Sprintf("/bookings/%d", id), "GET /bookings/{id}", nil, &rec)
	return rec, err
}

func (r *RoomsClient) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return r.c.do(ctx, "PATCH", fmt.Sprintf("/bookings/%d/status", id), "PATCH /bookings/{id}/status", body, nil)
}
