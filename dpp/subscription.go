package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const pathSubscriptions = "subscriptions"

// CreateSubscription creates a recurring payment schedule
func (c *Client) CreateSubscription(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathSubscriptions, body: payload})
}

// ModifySubscription partially updates the subscription with the given id
func (c *Client) ModifySubscription(ctx context.Context, id string, payload any) (*Response, error) {
	path, err := resourcePath(pathSubscriptions, id)
	if err != nil {
		return nil, err
	}
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPatch, path: path, body: payload})
}
