package dpp

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/types"
	jsoniter "github.com/json-iterator/go"
)

// Session is the bearer token state of one environment
type Session struct {
	BearerToken string
	// ExpiresAt is zero when the token endpoint did not report an expiry
	ExpiresAt   time.Time
	Environment types.Environment
}

// Valid reports whether the session holds a token that has not expired
func (s Session) Valid() bool {
	if s.BearerToken == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// tokenResponse is the body returned by the token endpoint
type tokenResponse struct {
	AccessToken     string              `json:"access_token"`
	TokenType       string              `json:"token_type"`
	TokenExpiryTime jsoniter.RawMessage `json:"tokenExpiry_time"`
	ExpiresIn       jsoniter.RawMessage `json:"expires_in"`
}

// GetBearerToken is an alias of RefreshToken
func (c *Client) GetBearerToken(ctx context.Context) (Session, error) {
	return c.RefreshToken(ctx)
}

// RefreshToken exchanges the client credentials of the active environment
// for a bearer token and caches it. The client never renews a token on its
// own; call RefreshToken again before Session().ExpiresAt.
func (c *Client) RefreshToken(ctx context.Context) (Session, error) {
	env, profile := c.snapshot()

	if !profile.HasCredentials() {
		return Session{}, ierr.NewError("missing client credentials").
			WithHintf("Configure the client id and secret for the %s environment", env).
			Mark(ierr.ErrAuthentication)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", c.cfg.Scope)

	basic := base64.StdEncoding.EncodeToString([]byte(profile.ClientID + ":" + profile.ClientSecret))
	req := &httpclient.Request{
		Method: http.MethodPost,
		URL:    profile.TokenURL,
		Headers: map[string]string{
			"Authorization": "Basic " + basic,
			"Content-Type":  "application/x-www-form-urlencoded",
			"Accept":        "application/json",
		},
		Body: []byte(form.Encode()),
	}

	resp, err := c.httpClient.Send(ctx, req)
	if err != nil {
		details := map[string]any{"environment": env}
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			details["status_code"] = httpErr.StatusCode
		}
		c.logger.Errorw("token request failed", "environment", env, "error", err)
		return Session{}, ierr.WithError(err).
			WithHint("Unable to obtain a bearer token, check the client credentials").
			WithReportableDetails(details).
			Mark(ierr.ErrAuthentication)
	}

	var body tokenResponse
	if err := jsoniter.Unmarshal(resp.Body, &body); err != nil {
		return Session{}, ierr.WithError(err).
			WithHint("The token endpoint returned an unreadable response").
			Mark(ierr.ErrAuthentication)
	}
	if body.AccessToken == "" {
		return Session{}, ierr.NewError("token response has no access_token").
			WithHint("The token endpoint did not return a bearer token").
			Mark(ierr.ErrAuthentication)
	}

	now := time.Now()
	expiresAt := parseTokenExpiry(body.TokenExpiryTime, body.ExpiresIn, now)
	if !expiresAt.IsZero() && !expiresAt.After(now) {
		return Session{}, ierr.NewError("received an expired bearer token").
			WithReportableDetails(map[string]any{"expires_at": expiresAt}).
			Mark(ierr.ErrAuthentication)
	}

	session := Session{
		BearerToken: body.AccessToken,
		ExpiresAt:   expiresAt,
		Environment: env,
	}

	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(now)
	}
	c.tokens.Set(ctx, tokenKey(env, profile), session, ttl)

	c.logger.Debugw("refreshed bearer token",
		"environment", env,
		"expires_at", expiresAt)

	return session, nil
}

// parseTokenExpiry understands tokenExpiry_time as epoch seconds or
// milliseconds, a relative number of seconds, or a timestamp. expires_in
// (seconds) is used when tokenExpiry_time is absent.
func parseTokenExpiry(expiry, expiresIn jsoniter.RawMessage, now time.Time) time.Time {
	if t, ok := parseExpiryValue(expiry, now); ok {
		return t
	}
	if raw := unquote(expiresIn); raw != "" {
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 && secs < maxRelativeSeconds {
			return now.Add(time.Duration(secs * float64(time.Second)))
		}
	}
	return time.Time{}
}

// Numeric expiries beyond these bounds would overflow int64 nanoseconds
// and are ignored.
const (
	maxExpiryMillis    = math.MaxInt64 / 1e6
	maxRelativeSeconds = math.MaxInt64 / 1e9
)

func parseExpiryValue(raw jsoniter.RawMessage, now time.Time) (time.Time, bool) {
	s := unquote(raw)
	if s == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case math.IsNaN(n) || math.IsInf(n, 0) || n > maxExpiryMillis:
			return time.Time{}, false
		case n >= 1e12:
			return time.UnixMilli(int64(n)), true
		case n >= 1e9:
			return time.Unix(int64(n), 0), true
		case n > 0:
			return now.Add(time.Duration(n * float64(time.Second))), true
		default:
			return time.Time{}, false
		}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func unquote(raw jsoniter.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if unq, err := strconv.Unquote(s); err == nil {
		return strings.TrimSpace(unq)
	}
	return s
}

func (s Session) String() string {
	return fmt.Sprintf("Session{environment: %s, expires_at: %s}", s.Environment, s.ExpiresAt.Format(time.RFC3339))
}
