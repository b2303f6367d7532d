// internal/adapters/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"hotel_portal/internal/adapters/observability"
	"hotel_portal/internal/domain"
)

// TokenSource supplies the current bearer token; an empty string means no
// Authorization header is attached.
type TokenSource interface {
	Token() string
}

// Error is a non-success upstream response, carrying the server-supplied
// message when one was decodable.
type Error struct {
	Service string
	Status  int
	Message string
}

// Error returns only the message: callers surface it to users verbatim.
func (e *Error) Error() string { return e.Message }

// Client is the shared transport under the per-service clients. One attempt
// per call; failures are surfaced or substituted by the caller, never retried
// here. A zero timeout means a hung upstream hangs the triggering interaction.
type Client struct {
	service string
	base    string
	hc      *http.Client
	tokens  TokenSource
	rl      *rate.Limiter
}

func newClient(service, base string, tokens TokenSource, timeout time.Duration, rps int) *Client {
	if rps <= 0 {
		rps = 25
	}
	return &Client{
		service: service,
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// do performs one JSON round trip. label is the metrics endpoint label
// ("POST /bookings"), kept free of path parameters.
func (c *Client) do(ctx context.Context, method, path, label string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", c.service)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveUpstream(c.service, label, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrapf(err, "%s unreachable", c.service)
	}
	defer resp.Body.Close()
	observability.ObserveUpstream(c.service, label, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "%s: decode response", c.service)
	}
	return nil
}

// doEnvelope is do for the endpoints that speak the uniform
// {success,message,data,error,timestamp} wrapper.
func (c *Client) doEnvelope(ctx context.Context, method, path, label string, body, dataOut any) error {
	var env domain.Envelope
	if err := c.do(ctx, method, path, label, body, &env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = "request failed"
		}
		return &Error{Service: c.service, Status: http.StatusOK, Message: msg}
	}
	if dataOut != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dataOut); err != nil {
			return errors.Wrapf(err, "%s: decode envelope data", c.service)
		}
	}
	return nil
}

// statusError reads a bounded slice of the error body and prefers the server's
// message over a status-derived one.
func (c *Client) statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}
	return &Error{Service: c.service, Status: resp.StatusCode, Message: msg}
}
