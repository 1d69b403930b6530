package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flexprice/dpp-gateway/internal/types"
	"github.com/flexprice/dpp-gateway/internal/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging LoggingConfig `validate:"required"`
	Gateway GatewayConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required,oneof=debug info warn error"`
}

// GatewayConfig holds everything needed to talk to the DPP Experience API.
// Each environment carries its own profile so switching environments
// swaps URLs and credentials together.
type GatewayConfig struct {
	Environment types.Environment `validate:"required,oneof=sandbox production"`
	Scope       string            `validate:"required"`
	Timeout     time.Duration     `validate:"gt=0"`
	Sandbox     ProfileConfig     `validate:"required"`
	Production  ProfileConfig     `validate:"required"`
}

// ProfileConfig is the URL and credential set of a single environment
type ProfileConfig struct {
	BaseURL      string `mapstructure:"base_url" validate:"required,url"`
	TokenURL     string `mapstructure:"token_url" validate:"required,url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	PartnerToken string `mapstructure:"partner_token"`
}

// Profile returns the profile of the given environment
func (c GatewayConfig) Profile(env types.Environment) ProfileConfig {
	if env == types.EnvironmentProduction {
		return c.Production
	}
	return c.Sandbox
}

// HasCredentials reports whether the profile can request a bearer token
func (p ProfileConfig) HasCredentials() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

func NewConfig() (*Configuration, error) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dpp")

	v.SetEnvPrefix("DPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyLegacyCredentials(&config.Gateway, os.Getenv)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("gateway.environment", types.EnvironmentSandbox)
	v.SetDefault("gateway.scope", DefaultScope)
	v.SetDefault("gateway.timeout", DefaultTimeout)

	for _, env := range []types.Environment{types.EnvironmentSandbox, types.EnvironmentProduction} {
		prefix := fmt.Sprintf("gateway.%s.", env)
		v.SetDefault(prefix+"base_url", env.BaseURL())
		v.SetDefault(prefix+"token_url", env.TokenURL())
		// registered so AutomaticEnv picks up DPP_GATEWAY_SANDBOX_CLIENT_ID and friends on Unmarshal
		v.SetDefault(prefix+"client_id", "")
		v.SetDefault(prefix+"client_secret", "")
		v.SetDefault(prefix+"partner_token", "")
	}
}

// applyLegacyCredentials fills profile credentials from the unprefixed
// variable names used by older deployments. Environment specific names
// (SANDBOX_CLIENT_ID, PROD_CLIENT_ID, ...) beat the shared ones
// (CLIENT_ID, CLIENT_SECRET, ACCESS_TOKEN); neither overrides a value
// that is already configured.
func applyLegacyCredentials(c *GatewayConfig, getenv func(string) string) {
	fill := func(p *ProfileConfig, prefix string) {
		pick := func(current *string, name string) {
			if *current != "" {
				return
			}
			if v := getenv(prefix + name); v != "" {
				*current = v
				return
			}
			*current = getenv(name)
		}
		pick(&p.ClientID, "CLIENT_ID")
		pick(&p.ClientSecret, "CLIENT_SECRET")
		pick(&p.PartnerToken, "ACCESS_TOKEN")
	}

	fill(&c.Sandbox, "SANDBOX_")
	fill(&c.Production, "PROD_")
}

func (c Configuration) Validate() error {
	return validator.ValidateRequest(c)
}

const (
	DefaultScope   = "mulesoft_scope"
	DefaultTimeout = 30 * time.Second
)

// GetDefaultConfig returns a sandbox configuration without credentials.
// This is useful for scripts and tests that fill in what they need.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Gateway: GatewayConfig{
			Environment: types.EnvironmentSandbox,
			Scope:       DefaultScope,
			Timeout:     DefaultTimeout,
			Sandbox: ProfileConfig{
				BaseURL:  types.EnvironmentSandbox.BaseURL(),
				TokenURL: types.EnvironmentSandbox.TokenURL(),
			},
			Production: ProfileConfig{
				BaseURL:  types.EnvironmentProduction.BaseURL(),
				TokenURL: types.EnvironmentProduction.TokenURL(),
			},
		},
	}
}
