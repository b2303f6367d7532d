package backend

import (
	"context"
	"time"

	"hotel_portal/internal/domain"
)

// PaymentClient talks to the payment service.
type PaymentClient struct{ c *Client }

func NewPayments(base string, tokens TokenSource, timeout time.Duration, rps int) *PaymentClient {
	return &PaymentClient{c: newClient("payments", base, tokens, timeout, rps)}
}

func (p *PaymentClient) CreatePayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentRecord, error) {
	var rec domain.PaymentRecord
	err := p.c.do(ctx, "POST", "/v1/payments", "POST /v1/payments", req, &rec)
	return rec, err
}
