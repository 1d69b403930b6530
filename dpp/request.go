package dpp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flexprice/dpp-gateway/internal/config"
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Payload is a convenience type for ad-hoc request bodies. Any value that
// encodes to JSON is accepted where a payload is expected.
type Payload map[string]any

// Response is a successful gateway response
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       jsoniter.RawMessage
}

// Decode unmarshals the response body into v
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return ierr.NewError("empty response body").
			WithHint("The gateway returned no content").
			Mark(ierr.ErrSystem)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return ierr.WithError(err).
			WithHint("The gateway returned an unreadable response").
			Mark(ierr.ErrSystem)
	}
	return nil
}

// Map decodes the response body as a JSON object
func (r *Response) Map() (map[string]any, error) {
	out := map[string]any{}
	if err := r.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// pendingRequest describes one gateway call. It is created by an endpoint
// method and handed to performRequest by value; nothing about it lives on
// the Client.
type pendingRequest struct {
	method types.HTTPMethod
	path   string
	body   any
}

// WithPartnerToken overrides the configured partner token for calls made with ctx
func WithPartnerToken(ctx context.Context, token string) context.Context {
	return types.SetPartnerToken(ctx, token)
}

// resourcePath joins a collection path and an escaped identifier
func resourcePath(collection, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ierr.NewErrorf("missing identifier for %s", collection).
			WithHint("A resource identifier is required").
			Mark(ierr.ErrValidation)
	}
	return collection + "/" + url.PathEscape(id), nil
}

// performRequest is the shared dispatcher of every endpoint method
func (c *Client) performRequest(ctx context.Context, req pendingRequest) (*Response, error) {
	if err := req.method.Validate(); err != nil {
		return nil, err
	}

	env, profile := c.snapshot()
	session, ok := c.session(ctx, env, profile)
	if !ok {
		return nil, ierr.NewError("no valid bearer token").
			WithHintf("Call RefreshToken for the %s environment before making requests", env).
			Mark(ierr.ErrAuthentication)
	}

	var body []byte
	if req.method.HasBody() && req.body != nil {
		encoded, err := encodeBody(req.body)
		if err != nil {
			return nil, err
		}
		body = encoded
	}

	fullURL := profile.BaseURL + req.path
	requestID := lo.CoalesceOrEmpty(types.GetRequestID(ctx), types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST))

	httpReq := &httpclient.Request{
		Method:  req.method.String(),
		URL:     fullURL,
		Headers: c.headers(ctx, session, profile),
		Body:    body,
	}

	start := time.Now()
	resp, err := c.httpClient.Send(ctx, httpReq)
	if err != nil {
		return nil, c.requestError(err, requestID, env, req)
	}

	c.logger.Debugw("gateway request completed",
		"request_id", requestID,
		"environment", env,
		"method", req.method,
		"url", fullURL,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func (c *Client) headers(ctx context.Context, session Session, profile config.ProfileConfig) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + session.BearerToken,
		"PartnerToken":  lo.CoalesceOrEmpty(types.GetPartnerToken(ctx), profile.PartnerToken),
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	}
}

func encodeBody(payload any) ([]byte, error) {
	switch v := payload.(type) {
	case []byte:
		if !json.Valid(v) {
			return nil, ierr.NewError("request body is not valid JSON").
				WithHint("Invalid request data").
				Mark(ierr.ErrValidation)
		}
		return v, nil
	case string:
		return encodeBody([]byte(v))
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid request data").
			Mark(ierr.ErrValidation)
	}
	return encoded, nil
}

func (c *Client) requestError(err error, requestID string, env types.Environment, req pendingRequest) error {
	httpErr, ok := httpclient.IsHTTPError(err)
	if !ok {
		c.logger.Errorw("gateway request failed",
			"request_id", requestID,
			"environment", env,
			"method", req.method,
			"path", req.path,
			"error", err)
		return ierr.WithError(err).
			WithHint("Unable to connect to the gateway").
			WithReportableDetails(map[string]any{
				"request_id": requestID,
				"method":     req.method,
				"path":       req.path,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	c.logger.Errorw("gateway returned error",
		"request_id", requestID,
		"environment", env,
		"method", req.method,
		"path", req.path,
		"status_code", httpErr.StatusCode,
		"response_body", string(httpErr.Response))

	wrapped := ierr.WithError(err).
		WithHintf("Gateway returned status %d", httpErr.StatusCode).
		WithReportableDetails(map[string]any{
			"request_id":    requestID,
			"status_code":   httpErr.StatusCode,
			"method":        req.method,
			"path":          req.path,
			"response_body": string(httpErr.Response),
		}).
		Mark(ierr.ErrHTTPClient)

	switch httpErr.StatusCode {
	case http.StatusUnauthorized:
		return ierr.WithError(wrapped).Mark(ierr.ErrAuthentication)
	case http.StatusNotFound:
		return ierr.WithError(wrapped).Mark(ierr.ErrNotFound)
	}
	return wrapped
}
