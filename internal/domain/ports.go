package domain

import (
	"context"
	"encoding/json"
)

// FallbackPolicy names what the catalog and reservation reads do when an
// upstream call fails: substitute fixed placeholder data so the page never
// breaks, or propagate the error to the caller.
type FallbackPolicy string

const (
	FallbackPlaceholder FallbackPolicy = "placeholder"
	FallbackPropagate   FallbackPolicy = "propagate"
)

// Envelope is the uniform response wrapper the auth service speaks. The room,
// booking and payment endpoints return raw records instead.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (TokenPair, error)
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	GetProfile(ctx context.Context) (User, error)
	UpdateProfile(ctx context.Context, u User) (User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type RoomsAPI interface {
	ListRooms(ctx context.Context, filters map[string]string) ([]RoomRecord, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (BookingRecord, error)
	ListBookings(ctx context.Context) ([]BookingRecord, error)
	GetBooking(ctx context.Context, id int64) (BookingRecord, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error
}

type PaymentAPI interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (PaymentRecord, error)
}

// KeyValue is the durable mirror behind the session store, the server-side
// stand-in for the two local-storage keys.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
