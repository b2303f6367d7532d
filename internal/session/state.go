package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"hotel_portal/internal/domain"
)

// State is the application session value. It transitions only through the
// actions below.
type State struct {
	User            *domain.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

type ActionType int

const (
	ActionStart ActionType = iota
	ActionSuccess
	ActionFailure
	ActionLogout
	ActionUpdateUser
	ActionClearError
)

type Action struct {
	Type  ActionType
	User  *domain.User
	Token string
	Err   string
}

// Reduce is the pure transition function over the session state.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionStart:
		s.IsLoading = true
		s.Error = ""
	case ActionSuccess:
		s.User = a.User
		s.Token = a.Token
		s.IsAuthenticated = true
		s.IsLoading = false
		s.Error = ""
	case ActionFailure:
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.IsLoading = false
		s.Error = a.Err
	case ActionLogout:
		s = State{}
	case ActionUpdateUser:
		s.User = a.User
	case ActionClearError:
		s.Error = ""
	}
	return s
}

// Manager drives the session state against the auth service and the store.
// It is constructed explicitly and injected wherever needed; there is no
// package-level session singleton.
type Manager struct {
	mu    sync.Mutex
	state State

	api   domain.AuthAPI
	store *Store
	log   zerolog.Logger
}

func NewManager(api domain.AuthAPI, store *Store, log zerolog.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) dispatch(a Action) {
	m.mu.Lock()
	m.state = Reduce(m.state, a)
	m.mu.Unlock()
}

// Init resynthesizes the session from the store. Authentication is restored
// only when both a token and a user survived; anything less stays logged out.
func (m *Manager) Init(ctx context.Context) error {
	if err := m.store.Load(ctx); err != nil {
		return err
	}
	token := m.store.Token()
	user := m.store.CurrentUser()
	if token != "" && user != nil {
		m.dispatch(Action{Type: ActionSuccess, User: user, Token: token})
	}
	return nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	m.dispatch(Action{Type: ActionStart})
	pair, err := m.api.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		m.dispatch(Action{Type: ActionFailure, Err: err.Error()})
		return domain.TokenPair{}, err
	}
	m.store.SetSession(ctx, pair.AccessToken, pair.User)
	u := pair.User
	m.dispatch(Action{Type: ActionSuccess, User: &u, Token: pair.AccessToken})
	return pair, nil
}

// Register creates the account and then establishes the session by chaining
// into Login with the same credentials. Registration alone never logs in.
func (m *Manager) Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenPair, error) {
	m.dispatch(Action{Type: ActionStart})
	if _, err := m.api.Register(ctx, req); err != nil {
		m.dispatch(Action{Type: ActionFailure, Err: err.Error()})
		return domain.TokenPair{}, err
	}
	return m.Login(ctx, req.Email, req.Password)
}

// Logout clears the session unconditionally. The remote call is best-effort:
// its failure is logged, not surfaced.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn().Err(err).Msg("remote logout failed, clearing session anyway")
	}
	m.store.Clear(ctx)
	m.dispatch(Action{Type: ActionLogout})
}

// Refresh swaps the access token in place, leaving the cached user untouched.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	pair, err := m.api.Refresh(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	m.store.SetToken(ctx, pair.AccessToken)
	if user := m.store.CurrentUser(); user != nil {
		m.dispatch(Action{Type: ActionSuccess, User: user, Token: pair.AccessToken})
	}
	return pair, nil
}

// UpdateUser replaces the cached profile after a successful remote update.
// Other state fields stay untouched.
func (m *Manager) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	updated, err := m.api.UpdateProfile(ctx, u)
	if err != nil {
		m.dispatch(Action{Type: ActionFailure, Err: err.Error()})
		return domain.User{}, err
	}
	m.dispatch(Action{Type: ActionUpdateUser, User: &updated})
	return updated, nil
}

func (m *Manager) ClearError() {
	m.dispatch(Action{Type: ActionClearError})
}
