package environment

import (
	"log/slog"
	"net/http"

	"smm-bot/internal/config"
)

type Servers struct {
	HTTP struct {
		Observability *http.Server
	}
}

func newServers(cfg config.Config, logger *slog.Logger, readiness readinessChecker) *Servers {
	var servers Servers

	servers.HTTP.Observability = initObservability(logger.WithGroup("http"), readiness, cfg)

	return &servers
}
