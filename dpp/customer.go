package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const pathCustomers = "customers"

// CreateCustomer creates a customer
func (c *Client) CreateCustomer(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathCustomers, body: payload})
}

// GetCustomers lists customers
func (c *Client) GetCustomers(ctx context.Context) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodGet, path: pathCustomers})
}

// GetCustomer fetches a single customer
func (c *Client) GetCustomer(ctx context.Context, id string) (*Response, error) {
	path, err := resourcePath(pathCustomers, id)
	if err != nil {
		return nil, err
	}
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodGet, path: path})
}

// ModifyCustomer partially updates the customer with the given id
func (c *Client) ModifyCustomer(ctx context.Context, id string, payload any) (*Response, error) {
	path, err := resourcePath(pathCustomers, id)
	if err != nil {
		return nil, err
	}
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPatch, path: path, body: payload})
}
