package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const (
	pathPaymentMethods     = "paymentmethods"
	pathPaymentMethodToken = "paymentmethods/token"
)

// CreatePaymentMethod stores a payment method for a customer
func (c *Client) CreatePaymentMethod(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentMethods, body: payload})
}

// ModifyPaymentMethod partially updates the payment method with the given id
func (c *Client) ModifyPaymentMethod(ctx context.Context, id string, payload any) (*Response, error) {
	path, err := resourcePath(pathPaymentMethods, id)
	if err != nil {
		return nil, err
	}
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPatch, path: path, body: payload})
}

// GenerateToken tokenizes card or account data
func (c *Client) GenerateToken(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathPaymentMethodToken, body: payload})
}
