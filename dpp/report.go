package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const (
	pathBatches      = "batches"
	pathReports      = "reports"
	pathPaymentLinks = "paymentlinks"
)

// CloseBatch closes the open settlement batch
func (c *Client) CloseBatch(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathBatches, body: payload})
}

// RetrieveReport requests a transaction report
func (c *Client) RetrieveReport(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathReports, body: payload})
}

// CreatePaymentLink creates a hosted payment link
func (c *Client) CreatePaymentLink(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentLinks, body: payload})
}
