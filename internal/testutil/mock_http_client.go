package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/types"
)

// MockHTTPClient implements httpclient.Client for tests. Responses are
// matched by URL suffix and every request is recorded.
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	requests []httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
	Err        error
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for a given URL suffix
func (m *MockHTTPClient) RegisterResponse(url string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[url] = resp
}

// RegisterJSONResponse is a helper to register a JSON body with a status code
func (m *MockHTTPClient) RegisterJSONResponse(url string, statusCode int, body string) {
	m.RegisterResponse(url, MockResponse{
		StatusCode: statusCode,
		Body:       []byte(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
}

// Send implements the httpclient.Client interface with the same status
// handling as httpclient.DefaultClient
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, cloneRequest(req))
	m.mu.Unlock()

	if _, err := types.ParseHTTPMethod(req.Method); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// longest suffix wins so "customers/42" beats "42"
	var matched MockResponse
	var matchedLen int
	found := false
	for route, resp := range m.routes {
		if strings.HasSuffix(req.URL, route) && len(route) >= matchedLen {
			matched = resp
			matchedLen = len(route)
			found = true
		}
	}

	if !found {
		return nil, httpclient.NewError(http.StatusNotFound, []byte("Not Found"))
	}
	if matched.Err != nil {
		return nil, matched.Err
	}
	if matched.StatusCode < 200 || matched.StatusCode >= 300 {
		return nil, httpclient.NewError(matched.StatusCode, matched.Body)
	}

	return &httpclient.Response{
		StatusCode: matched.StatusCode,
		Body:       matched.Body,
		Headers:    matched.Headers,
	}, nil
}

// Requests returns a copy of every request sent so far
func (m *MockHTTPClient) Requests() []httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]httpclient.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil when nothing was sent
func (m *MockHTTPClient) LastRequest() *httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return nil
	}
	req := m.requests[len(m.requests)-1]
	return &req
}

func cloneRequest(req *httpclient.Request) httpclient.Request {
	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		headers[k] = v
	}
	var body []byte
	if req.Body != nil {
		body = append([]byte(nil), req.Body...)
	}
	return httpclient.Request{
		Method:  req.Method,
		URL:     req.URL,
		Headers: headers,
		Body:    body,
	}
}
