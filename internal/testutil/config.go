package testutil

import (
	"github.com/flexprice/dpp-gateway/internal/config"
)

const (
	SandboxClientID        = "sandbox-client"
	SandboxClientSecret    = "sandbox-secret"
	SandboxPartnerToken    = "sandbox-partner"
	ProductionClientID     = "prod-client"
	ProductionClientSecret = "prod-secret"
	ProductionPartnerToken = "prod-partner"
)

// NewTestConfig returns the default configuration with credentials for both environments
func NewTestConfig() *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Gateway.Sandbox.ClientID = SandboxClientID
	cfg.Gateway.Sandbox.ClientSecret = SandboxClientSecret
	cfg.Gateway.Sandbox.PartnerToken = SandboxPartnerToken
	cfg.Gateway.Production.ClientID = ProductionClientID
	cfg.Gateway.Production.ClientSecret = ProductionClientSecret
	cfg.Gateway.Production.PartnerToken = ProductionPartnerToken
	return cfg
}
