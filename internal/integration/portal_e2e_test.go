//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_portal/internal/adapters/backend"
	server "hotel_portal/internal/adapters/http_server"
	redisad "hotel_portal/internal/adapters/redis"
	"hotel_portal/internal/app"
	"hotel_portal/internal/domain"
	"hotel_portal/internal/session"
)

// ---------- stub upstreams ----------

// stubAuth speaks the auth service's envelope.
type stubAuth struct {
	token string
	user  domain.User
}

func (s *stubAuth) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			writeEnvelope(w, false, "Invalid credentials", nil)
			return
		}
		pair := domain.TokenPair{AccessToken: s.token, TokenType: "Bearer", ExpiresIn: 3600, User: s.user}
		writeEnvelope(w, true, "", pair)
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, true, "logged out", nil)
	})
	return mux
}

func writeEnvelope(w http.ResponseWriter, success bool, msg string, data any) {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(domain.Envelope{
		Success:   success,
		Message:   msg,
		Data:      raw,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// stubRooms returns raw records and captures the bearer tokens it sees.
type stubRooms struct {
	rooms   []domain.RoomRecord
	tokens  []string
	patched []string
}

func (s *stubRooms) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms/all", func(w http.ResponseWriter, r *http.Request) {
		s.tokens = append(s.tokens, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(s.rooms)
	})
	mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateBookingRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(domain.BookingRecord{
			ID:             42,
			Room:           &domain.RoomRecord{ID: req.RoomID, RoomNumber: "101", RoomType: "DELUXE"},
			GuestName:      req.GuestName,
			GuestEmail:     req.GuestEmail,
			CheckInDate:    req.CheckInDate,
			CheckOutDate:   req.CheckOutDate,
			NumberOfGuests: req.NumberOfGuests,
			Status:         domain.ReservationPending,
			TotalAmount:    req.TotalAmount,
		})
	})
	mux.HandleFunc("GET /bookings/42", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.BookingRecord{
			ID:          42,
			Room:        &domain.RoomRecord{RoomNumber: "101"},
			GuestEmail:  "asha@example.com",
			TotalAmount: 16000,
		})
	})
	mux.HandleFunc("PATCH /bookings/42/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.patched = append(s.patched, body["status"])
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type stubPayments struct{ reqs []domain.PaymentRequest }

func (s *stubPayments) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payments", func(w http.ResponseWriter, r *http.Request) {
		var req domain.PaymentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.reqs = append(s.reqs, req)
		_ = json.NewEncoder(w).Encode(domain.PaymentRecord{
			ID:        "pay-e2e-1",
			BookingID: req.BookingID,
			Amount:    req.Amount,
			Status:    domain.PaymentCompleted,
		})
	})
	return mux
}

// ---------- wiring ----------

type portalEnv struct {
	portal   *httptest.Server
	store    *session.Store
	kv       domain.KeyValue
	rooms    *stubRooms
	payments *stubPayments
}

func newPortalEnv(t *testing.T) *portalEnv {
	t.Helper()

	auth := &stubAuth{
		token: "tok-e2e",
		user:  domain.User{ID: "u1", FirstName: "Asha", Email: "asha@example.com"},
	}
	rooms := &stubRooms{rooms: []domain.RoomRecord{
		{ID: 1, RoomNumber: "101", RoomType: "DELUXE", PricePerNight: 8000, Capacity: 3, Amenities: "WiFi, AC, TV", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", RoomType: "STANDARD", PricePerNight: 5000, Capacity: 2, Status: domain.RoomOccupied},
	}}
	payments := &stubPayments{}

	authSrv := httptest.NewServer(auth.handler())
	t.Cleanup(authSrv.Close)
	roomsSrv := httptest.NewServer(rooms.handler())
	t.Cleanup(roomsSrv.Close)
	paySrv := httptest.NewServer(payments.handler())
	t.Cleanup(paySrv.Close)

	mr := miniredis.RunT(t)
	kv := redisad.New(mr.Addr(), "", 0)
	store := session.NewStore(kv, zerolog.Nop())

	authAPI := backend.NewAuth(authSrv.URL, store, 5*time.Second, 100)
	roomsAPI := backend.NewRooms(roomsSrv.URL, store, 5*time.Second, 100)
	payAPI := backend.NewPayments(paySrv.URL, store, 5*time.Second, 100)

	manager := session.NewManager(authAPI, store, zerolog.Nop())
	require.NoError(t, manager.Init(context.Background()))

	catalog := app.NewCatalogService(roomsAPI, domain.FallbackPlaceholder, zerolog.Nop())
	reservations := app.NewReservationService(roomsAPI, domain.FallbackPlaceholder, zerolog.Nop())
	checkout := app.NewCheckoutService(roomsAPI, payAPI, zerolog.Nop())

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Auth:         manager,
		Profile:      authAPI,
		Catalog:      catalog,
		Reservations: reservations,
		Checkout:     checkout,
	})
	portal := httptest.NewServer(srv.Mux())
	t.Cleanup(portal.Close)

	return &portalEnv{portal: portal, store: store, kv: kv, rooms: rooms, payments: payments}
}

func (e *portalEnv) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(e.portal.URL+path, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decodeResp(t *testing.T, resp *http.Response, data any) (success bool, message string) {
	t.Helper()
	defer resp.Body.Close()
	var out struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	if data != nil && out.Data != nil {
		require.NoError(t, json.Unmarshal(out.Data, data))
	}
	return out.Success, out.Message
}

// ---------- tests ----------

func TestPortal_FullBookingFlow(t *testing.T) {
	env := newPortalEnv(t)

	// login
	resp := env.post(t, "/v1/auth/login", domain.Credentials{Email: "asha@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pair domain.TokenPair
	ok, _ := decodeResp(t, resp, &pair)
	require.True(t, ok)
	require.Equal(t, "tok-e2e", pair.AccessToken)

	// the session survives into the durable mirror
	tok, found, err := env.kv.Get(context.Background(), "session:token")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok-e2e", tok)

	// hotel list synthesized from the room inventory, with the bearer attached
	resp, err = http.Get(env.portal.URL + "/v1/hotels")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	var hotels []domain.Hotel
	ok, _ = decodeResp(t, resp, &hotels)
	require.True(t, ok)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Grand Palace Hotel", hotels[0].Name)
	assert.Equal(t, 2, hotels[0].TotalRooms)
	assert.Equal(t, 1, hotels[0].AvailableRooms)
	require.NotEmpty(t, env.rooms.tokens)
	assert.Equal(t, "Bearer tok-e2e", env.rooms.tokens[0])

	// conditional revalidation short-circuits
	req, _ := http.NewRequest(http.MethodGet, env.portal.URL+"/v1/hotels", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	// create a reservation; total is recomputed from nights x rate
	resp = env.post(t, "/v1/reservations", map[string]any{
		"roomId":        1,
		"pricePerNight": 8000,
		"checkIn":       "2025-09-15",
		"checkOut":      "2025-09-17",
		"guests":        2,
		"guestName":     "Asha K",
		"guestEmail":    "asha@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var res domain.Reservation
	ok, _ = decodeResp(t, resp, &res)
	require.True(t, ok)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, 16000.0, res.TotalAmount)
	assert.Regexp(t, `^HTL`, res.ConfirmationNumber)

	// pay and confirm
	resp = env.post(t, fmt.Sprintf("/v1/reservations/%d/payment", res.ID), domain.PaymentForm{
		Method:     domain.MethodCard,
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/25",
		CVV:        "123",
		CardName:   "Asha K",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec domain.PaymentRecord
	ok, _ = decodeResp(t, resp, &rec)
	require.True(t, ok)
	assert.Equal(t, "pay-e2e-1", rec.ID)

	require.Len(t, env.payments.reqs, 1)
	assert.Equal(t, 16000.0, env.payments.reqs[0].Amount)
	assert.Equal(t, "CREDIT_CARD", env.payments.reqs[0].PaymentMethod)
	assert.Equal(t, "1111", env.payments.reqs[0].CardLastFourDigits)
	require.Len(t, env.rooms.patched, 1)
	assert.Equal(t, domain.ReservationConfirmed, env.rooms.patched[0])
}

func TestPortal_LoginFailureSurfacesMessage(t *testing.T) {
	env := newPortalEnv(t)

	resp := env.post(t, "/v1/auth/login", domain.Credentials{Email: "asha@example.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	ok, msg := decodeResp(t, resp, nil)
	assert.False(t, ok)
	assert.Equal(t, "Invalid credentials", msg)

	// nothing was mirrored
	_, found, err := env.kv.Get(context.Background(), "session:token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPortal_HotelsServePlaceholderWhenRoomsDown(t *testing.T) {
	env := newPortalEnv(t)
	// point the catalog at a dead upstream by shutting the stub down first
	deadSrv := httptest.NewServer(http.NotFoundHandler())
	deadSrv.Close()

	store := session.NewStore(env.kv, zerolog.Nop())
	roomsAPI := backend.NewRooms(deadSrv.URL, store, time.Second, 100)
	catalog := app.NewCatalogService(roomsAPI, domain.FallbackPlaceholder, zerolog.Nop())

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Catalog: catalog})
	portal := httptest.NewServer(srv.Mux())
	t.Cleanup(portal.Close)

	resp, err := http.Get(portal.URL + "/v1/hotels")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "placeholder policy never surfaces the outage")
	var hotels []domain.Hotel
	ok, _ := decodeResp(t, resp, &hotels)
	require.True(t, ok)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Grand Palace Hotel", hotels[0].Name)
	assert.Equal(t, "Ocean View Resort", hotels[1].Name)
}

func TestPortal_ValidationRejectsBeforeUpstream(t *testing.T) {
	env := newPortalEnv(t)

	resp := env.post(t, "/v1/reservations", map[string]any{"roomId": 1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	ok, msg := decodeResp(t, resp, nil)
	assert.False(t, ok)
	assert.Contains(t, msg, "checkIn")
	assert.Empty(t, env.payments.reqs)
}
