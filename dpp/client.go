// Package dpp is a client for the DPP Experience payment gateway API.
//
// A Client holds the active environment (sandbox or production) together
// with that environment's URLs and credentials, caches the bearer token
// obtained through the OAuth2 client-credentials grant, and exposes one
// method per gateway endpoint. Every call builds its own request value, so
// a single Client may be shared between goroutines.
package dpp

import (
	"context"
	"sync"

	"github.com/flexprice/dpp-gateway/internal/cache"
	"github.com/flexprice/dpp-gateway/internal/config"
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/logger"
	"github.com/flexprice/dpp-gateway/internal/types"
)

// Client is the gateway client
type Client struct {
	// mu guards env and profile; they always change together
	mu      sync.RWMutex
	env     types.Environment
	profile config.ProfileConfig

	cfg        config.GatewayConfig
	httpClient httpclient.Client
	tokens     cache.Cache
	logger     *logger.Logger
}

// NewClient creates a Client from an explicit configuration. Nil
// dependencies are replaced by defaults.
func NewClient(
	cfg *config.Configuration,
	log *logger.Logger,
	httpClient httpclient.Client,
	tokens cache.Cache,
) (*Client, error) {
	if cfg == nil {
		return nil, ierr.NewError("missing configuration").
			WithHint("A gateway configuration is required").
			Mark(ierr.ErrValidation)
	}
	if err := cfg.Gateway.Environment.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	if httpClient == nil {
		httpClient = httpclient.NewDefaultClient(cfg)
	}
	if tokens == nil {
		tokens = cache.NewInMemoryCache()
	}

	return &Client{
		env:        cfg.Gateway.Environment,
		profile:    cfg.Gateway.Profile(cfg.Gateway.Environment),
		cfg:        cfg.Gateway,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     log,
	}, nil
}

// SwitchEnv toggles between sandbox and production. URLs and credentials
// are swapped in one step; calling it twice restores the original state.
func (c *Client) SwitchEnv() {
	c.mu.Lock()
	from := c.env
	c.env = c.env.Toggle()
	c.profile = c.cfg.Profile(c.env)
	to := c.env
	c.mu.Unlock()

	c.logger.Infow("switched gateway environment", "from", from, "to", to)
}

// Environment returns the active environment
func (c *Client) Environment() types.Environment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.env
}

// BaseURL returns the gateway base URL of the active environment
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.BaseURL
}

// TokenURL returns the token endpoint of the active environment
func (c *Client) TokenURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.TokenURL
}

// snapshot returns a consistent copy of the environment state for one call
func (c *Client) snapshot() (types.Environment, config.ProfileConfig) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.env, c.profile
}

// Session returns the cached bearer token of the active environment.
// The zero Session is returned when no valid token is cached.
func (c *Client) Session(ctx context.Context) Session {
	env, profile := c.snapshot()
	session, _ := c.session(ctx, env, profile)
	return session
}

func (c *Client) session(ctx context.Context, env types.Environment, profile config.ProfileConfig) (Session, bool) {
	v, found := c.tokens.Get(ctx, tokenKey(env, profile))
	if !found {
		return Session{}, false
	}
	session, ok := v.(Session)
	if !ok || !session.Valid() {
		return Session{}, false
	}
	return session, true
}

// ClearTokens drops every cached bearer token. Subsequent calls fail until
// RefreshToken is called again.
func (c *Client) ClearTokens(ctx context.Context) {
	c.tokens.DeleteByPrefix(ctx, cache.PrefixBearerToken)
	c.logger.Infow("cleared cached bearer tokens", "environment", c.Environment())
}

func tokenKey(env types.Environment, profile config.ProfileConfig) string {
	return cache.GenerateKey(cache.PrefixBearerToken, env, profile.ClientID)
}
