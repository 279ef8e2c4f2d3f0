package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/hazemhalim/dukkan/internal/config"
)

// Module exposes notification client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.NotifyGatewayURL == "" {
		return NoopClient{}, nil
	}
	return NewHTTPClient(p.Config.NotifyGatewayURL, p.Logger)
}
