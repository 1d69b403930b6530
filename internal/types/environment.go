package types

import (
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
)

// Environment selects which DPP deployment the client talks to
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

const (
	SandboxBaseURL     = "https://sandbox.api.deluxe.com/dpp/v1/gateway/"
	SandboxTokenURL    = "https://sandbox.api.deluxe.com/secservices/oauth2/v2/token"
	ProductionBaseURL  = "https://api.deluxe.com/dpp/v1/gateway/"
	ProductionTokenURL = "https://api.deluxe.com/secservices/oauth2/v2/token"
)

// Validate validates the environment
func (e Environment) Validate() error {
	switch e {
	case EnvironmentSandbox, EnvironmentProduction:
		return nil
	default:
		return ierr.NewError("invalid environment").
			WithHint("Please provide a valid environment").
			WithReportableDetails(map[string]any{
				"allowed": []Environment{
					EnvironmentSandbox,
					EnvironmentProduction,
				},
			}).
			Mark(ierr.ErrValidation)
	}
}

// Toggle returns the other environment
func (e Environment) Toggle() Environment {
	if e == EnvironmentProduction {
		return EnvironmentSandbox
	}
	return EnvironmentProduction
}

// BaseURL returns the gateway base URL, always ending in a slash
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

// TokenURL returns the OAuth2 token endpoint of the environment
func (e Environment) TokenURL() string {
	if e == EnvironmentProduction {
		return ProductionTokenURL
	}
	return SandboxTokenURL
}

func (e Environment) String() string {
	return string(e)
}
