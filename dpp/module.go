package dpp

import (
	"github.com/flexprice/dpp-gateway/internal/cache"
	"github.com/flexprice/dpp-gateway/internal/config"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
	"github.com/flexprice/dpp-gateway/internal/logger"
	"go.uber.org/fx"
)

// Module provides a *Client and its dependencies to an fx application
var Module = fx.Options(
	fx.Provide(
		config.NewConfig,
		logger.NewLogger,
		httpclient.NewDefaultClient,
		cache.NewInMemoryCache,
		NewClient,
	),
)
