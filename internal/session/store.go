package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"hotel_portal/internal/adapters/observability"
	"hotel_portal/internal/domain"
)

// Fixed keys in the durable mirror, one for the bearer token and one for the
// serialized user profile.
const (
	tokenKey = "session:token"
	userKey  = "session:user"
)

// Store holds the access token and cached user profile. The in-memory copy is
// authoritative for the life of the process; every write is mirrored into the
// durable KeyValue so a restart rehydrates via Load. Mirror failures are
// logged, never surfaced: losing persistence must not break the session in
// hand. No expiry check happens here; a stale token is only discovered when an
// upstream call rejects it.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *domain.User

	kv  domain.KeyValue
	log zerolog.Logger
}

func NewStore(kv domain.KeyValue, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load rehydrates token and user from the durable mirror. Absent keys are not
// an error; the session simply starts logged out.
func (s *Store) Load(ctx context.Context) error {
	token, ok, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	var user *domain.User
	if raw, found, err := s.kv.Get(ctx, userKey); err != nil {
		return err
	} else if found {
		var u domain.User
		if jerr := json.Unmarshal([]byte(raw), &u); jerr != nil {
			s.log.Warn().Err(jerr).Msg("stored user profile is unreadable, dropping it")
			_ = s.kv.Del(ctx, userKey)
		} else {
			user = &u
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.token = token
	}
	s.user = user
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns a copy of the cached profile, or nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	observability.ObserveStore("session", "set")
	if err := s.kv.Set(ctx, tokenKey, token); err != nil {
		s.log.Warn().Err(err).Msg("session token mirror write failed")
	}
}

// SetSession records a fresh token and user together, as a successful login
// or registration does.
func (s *Store) SetSession(ctx context.Context, token string, user domain.User) {
	s.mu.Lock()
	s.token = token
	u := user
	s.user = &u
	s.mu.Unlock()

	observability.ObserveStore("session", "set")
	if err := s.kv.Set(ctx, tokenKey, token); err != nil {
		s.log.Warn().Err(err).Msg("session token mirror write failed")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal user for session mirror failed")
		return
	}
	if err := s.kv.Set(ctx, userKey, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("session user mirror write failed")
	}
}

// Clear wipes both copies unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	observability.ObserveStore("session", "del")
	if err := s.kv.Del(ctx, tokenKey); err != nil {
		s.log.Warn().Err(err).Msg("session token mirror delete failed")
	}
	if err := s.kv.Del(ctx, userKey); err != nil {
		s.log.Warn().Err(err).Msg("session user mirror delete failed")
	}
}
