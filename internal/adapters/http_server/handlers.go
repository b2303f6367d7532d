package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_portal/internal/adapters/backend"
	"hotel_portal/internal/app"
	"hotel_portal/internal/domain"
	"hotel_portal/internal/session"
)

type Handlers struct {
	Auth         *session.Manager
	Profile      domain.AuthAPI
	Catalog      *app.CatalogService
	Reservations *app.ReservationService
	Checkout     *app.CheckoutService
}

// apiResponse mirrors the auth service's envelope so every portal endpoint
// speaks one uniform wrapper.
type apiResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Post("/auth/logout", h.logout)
		r.Post("/auth/refresh", h.refresh)

		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)
		r.Put("/profile/password", h.changePassword)

		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)

		r.Post("/reservations", h.createReservation)
		r.Get("/reservations", h.listReservations)
		r.Post("/reservations/{id}/payment", h.payReservation)
	})
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func writeErr(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, apiResponse{Success: false, Message: err.Error(), Error: err.Error()})
}

// statusFor maps a service error onto an HTTP status. Upstream errors that
// carried a real status keep it; envelope-level failures and transport errors
// get the fallback.
func statusFor(err error, fallback int) int {
	if errors.Is(err, domain.ErrMissingFields) {
		return http.StatusBadRequest
	}
	var be *backend.Error
	if errors.As(err, &be) && be.Status >= 400 {
		return be.Status
	}
	return fallback
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return false
	}
	return true
}

// ---- auth ----

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decodeBody(w, r, &creds) {
		return
	}
	pair, err := h.Auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusUnauthorized), err)
		return
	}
	writeOK(w, pair)
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pair, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadRequest), err)
		return
	}
	writeOK(w, pair)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Context())
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "logged out"})
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	pair, err := h.Auth.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusUnauthorized), err)
		return
	}
	writeOK(w, pair)
}

// ---- profile ----

func (h *Handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.Profile.GetProfile(r.Context())
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeOK(w, u)
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if !decodeBody(w, r, &u) {
		return
	}
	updated, err := h.Auth.UpdateUser(r.Context(), u)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeOK(w, updated)
}

func (h *Handlers) changePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.Profile.ChangePassword(r.Context(), body.CurrentPassword, body.NewPassword); err != nil {
		writeErr(w, statusFor(err, http.StatusBadRequest), err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "password changed"})
}

// ---- hotels ----

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	resp := apiResponse{Success: true, Data: v, Timestamp: time.Now().UTC().Format(time.RFC3339)}
	body, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	// hash only the payload so the timestamp does not churn the tag
	data, _ := json.Marshal(v)
	sum := sha1.Sum(data)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cacheable body")
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	filters := map[string]string{}
	for _, k := range []string{"status", "roomType", "minPrice", "maxPrice"} {
		if v := r.URL.Query().Get(k); v != "" {
			filters[k] = v
		}
	}
	hotels, err := h.Catalog.GetHotels(r.Context(), filters)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeCacheable(w, r, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, errors.New("id must be a number"))
		return
	}
	hotel, err := h.Catalog.GetHotelByID(r.Context(), id)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeCacheable(w, r, hotel)
}

// ---- reservations ----

// createReservationBody carries the booking form plus the room identity and
// nightly rate the total is derived from. The total is always recomputed
// server-side, never trusted from the caller.
type createReservationBody struct {
	RoomID        int64   `json:"roomId"`
	PricePerNight float64 `json:"pricePerNight"`
	domain.BookingForm
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var body createReservationBody
	if !decodeBody(w, r, &body) {
		return
	}
	if err := body.Validate(); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	req := domain.CreateBookingRequest{
		RoomID:          body.RoomID,
		CheckInDate:     body.CheckIn,
		CheckOutDate:    body.CheckOut,
		NumberOfGuests:  body.Guests,
		GuestName:       body.GuestName,
		GuestEmail:      body.GuestEmail,
		GuestPhone:      body.GuestPhone,
		TotalAmount:     body.Total(body.PricePerNight),
		SpecialRequests: body.SpecialRequests,
	}
	res, err := h.Reservations.Create(r.Context(), req)
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: res})
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reservations.ListForUser(r.Context())
	if err != nil {
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeOK(w, out)
}

func (h *Handlers) payReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, errors.New("id must be a number"))
		return
	}
	var form domain.PaymentForm
	if !decodeBody(w, r, &form) {
		return
	}
	rec, err := h.Checkout.Pay(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, app.ErrConfirmationPending) {
			// the charge went through; return the record alongside the warning
			writeJSON(w, http.StatusBadGateway, apiResponse{
				Success: false,
				Message: err.Error(),
				Error:   err.Error(),
				Data:    rec,
			})
			return
		}
		writeErr(w, statusFor(err, http.StatusBadGateway), err)
		return
	}
	writeOK(w, rec)
}
