package dpp

import (
	"context"

	"github.com/flexprice/dpp-gateway/internal/config"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/logger"
	"github.com/flexprice/dpp-gateway/internal/types"
)

type (
	Config        = config.Configuration
	GatewayConfig = config.GatewayConfig
	ProfileConfig = config.ProfileConfig
	Environment   = types.Environment
	Logger        = logger.Logger
	HTTPClient    = httpclient.Client
	HTTPRequest   = httpclient.Request
	HTTPResponse  = httpclient.Response
)

const (
	Sandbox    = types.EnvironmentSandbox
	Production = types.EnvironmentProduction
)

// DefaultConfig returns a sandbox configuration without credentials
func DefaultConfig() *Config {
	return config.GetDefaultConfig()
}

// LoadConfig reads configuration from config.yaml, .env and DPP_* variables
func LoadConfig() (*Config, error) {
	return config.NewConfig()
}

type options struct {
	cfg        *Config
	env        Environment
	httpClient HTTPClient
	logger     *Logger
}

// Option customizes New
type Option func(*options)

// WithConfig uses cfg instead of loading configuration from the environment
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithEnvironment selects the starting environment
func WithEnvironment(env Environment) Option {
	return func(o *options) { o.env = env }
}

// WithHTTPClient replaces the transport
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger replaces the logger
func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a Client, loading configuration with LoadConfig unless
// WithConfig is given
func New(opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.cfg
	if cfg == nil {
		loaded, err := config.NewConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.env != "" {
		copied := *cfg
		copied.Gateway.Environment = o.env
		cfg = &copied
	}

	log := o.logger
	if log == nil {
		l, err := logger.NewLogger(cfg)
		if err != nil {
			return nil, err
		}
		log = l
	}

	return NewClient(cfg, log, o.httpClient, nil)
}

// Do sends a request to any gateway path, for endpoints without a
// dedicated method. method must be GET, POST or PATCH.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Response, error) {
	m, err := types.ParseHTTPMethod(method)
	if err != nil {
		return nil, err
	}
	return c.performRequest(ctx, pendingRequest{method: m, path: path, body: payload})
}
