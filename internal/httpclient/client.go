package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/flexprice/dpp-gateway/internal/config"
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/flexprice/dpp-gateway/internal/types"
)

// Request represents an HTTP request. It is built once per call and never
// shared, so concurrent calls cannot see each other's URL, verb or body.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// Client interface for making HTTP requests
type Client interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// DefaultClient implements the Client interface
type DefaultClient struct {
	client *http.Client
}

// NewDefaultClient creates a new DefaultClient using the configured timeout
func NewDefaultClient(cfg *config.Configuration) Client {
	timeout := cfg.Gateway.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

// NewClientWithHTTP wraps an existing *http.Client, e.g. one with a custom transport
func NewClientWithHTTP(c *http.Client) Client {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	return &DefaultClient{client: c}
}

// Send makes an HTTP request and returns the response.
// Any status outside 2xx is returned as *Error.
func (c *DefaultClient) Send(ctx context.Context, req *Request) (*Response, error) {
	method, err := types.ParseHTTPMethod(req.Method)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method.String(), req.URL, body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the request URL").
			Mark(ierr.ErrHTTPClient)
	}

	// Set Content-Length if body is present
	if req.Body != nil {
		httpReq.ContentLength = int64(len(req.Body))
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to reach the gateway").
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read the gateway response").
			Mark(ierr.ErrHTTPClient)
	}

	headers := make(map[string]string)
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    headers,
	}, nil
}
