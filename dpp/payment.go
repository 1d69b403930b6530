package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const (
	pathPayments          = "payments"
	pathPaymentsCancel    = "payments/cancel"
	pathPaymentsComplete  = "payments/complete"
	pathPaymentsAuthorize = "payments/authorize"
	pathPaymentsSearch    = "payments/search"
	pathRefunds           = "refunds"
)

// CreatePayment creates and captures a payment
func (c *Client) CreatePayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPayments, body: payload})
}

// CancelPayment cancels an authorized payment
func (c *Client) CancelPayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentsCancel, body: payload})
}

// CompletePayment captures a previously authorized payment
func (c *Client) CompletePayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentsComplete, body: payload})
}

// AuthorizePayment authorizes a payment without capturing it
func (c *Client) AuthorizePayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentsAuthorize, body: payload})
}

// SearchPayment searches payments by the criteria in payload
func (c *Client) SearchPayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentsSearch, body: payload})
}

// RefundPayment refunds a captured payment
func (c *Client) RefundPayment(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathRefunds, body: payload})
}
