package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/types"
)

const (
	pathEventsSubscribe   = "events/subscribe"
	pathEventsUnsubscribe = "events/unsubscribe"
	pathEventsTest        = "events/test"
	pathEventsResend      = "events/resend"
)

// SubscribeEvent registers a webhook for gateway events
func (c *Client) SubscribeEvent(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathEventsSubscribe, body: payload})
}

// UnsubscribeEvent removes a webhook registration
func (c *Client) UnsubscribeEvent(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathEventsUnsubscribe, body: payload})
}

// TestEvent asks the gateway to deliver a test event
func (c *Client) TestEvent(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathEventsTest, body: payload})
}

// ResendEvent redelivers a previously sent event
func (c *Client) ResendEvent(ctx context.Context, payload any) (*Response, error) {
	return c.performRequest(ctx, pendingRequest{method: types.HTTPMethodPost, path: pathEventsResend, body: payload})
}
