package backend

import (
	"context"
	"time"

	"hotel_portal/internal/domain"
)

// AuthClient talks to the auth/profile service. Every endpoint here speaks the
// response envelope, and every failure propagates to the caller.
type AuthClient struct{ c *Client }

func NewAuth(base string, tokens TokenSource, timeout time.Duration, rps int) *AuthClient {
	return &AuthClient{c: newClient("auth", base, tokens, timeout, rps)}
}

func (a *AuthClient) Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	var pair domain.TokenPair
	err := a.c.doEnvelope(ctx, "POST", "/auth/login", "POST /auth/login", creds, &pair)
	return pair, err
}

func (a *AuthClient) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	var u domain.User
	err := a.c.doEnvelope(ctx, "POST", "/auth/register", "POST /auth/register", req, &u)
	return u, err
}

func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.doEnvelope(ctx, "POST", "/auth/logout", "POST /auth/logout", nil, nil)
}

func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var pair domain.TokenPair
	err := a.c.doEnvelope(ctx, "POST", "/auth/refresh", "POST /auth/refresh", body, &pair)
	return pair, err
}

func (a *AuthClient) GetProfile(ctx context.Context) (domain.User, error) {
	var u domain.User
	err := a.c.doEnvelope(ctx, "GET", "/users/profile", "GET /users/profile", nil, &u)
	return u, err
}

func (a *AuthClient) UpdateProfile(ctx context.Context, u domain.User) (domain.User, error) {
	var updated domain.User
	err := a.c.doEnvelope(ctx, "PUT", "/users/profile", "PUT /users/profile", u, &updated)
	return updated, err
}

func (a *AuthClient) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return a.c.doEnvelope(ctx, "PUT", "/users/change-password", "PUT /users/change-password", body, nil)
}
