package environment

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"smm-bot/internal/config"
	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/infra/telegram"
)

type Clients struct {
	Reseller    *reseller.Client
	TelegramBot *telegram.Client
}

func newClients(cfg config.Config, tracerProvider trace.TracerProvider, logger *slog.Logger) (*Clients, error) {
	telegramBot, err := telegram.NewClient(cfg.Telegram, logger.With(slog.String("component", "telegram")))
	if err != nil {
		return nil, err
	}

	resellerClient := reseller.NewClient(
		cfg.Reseller.APIURL,
		cfg.Reseller.APIKey,
		cfg.Reseller.Timeout,
		tracerProvider,
		logger.With(slog.String("component", "reseller")),
	)

	return &Clients{
		Reseller:    resellerClient,
		TelegramBot: telegramBot,
	}, nil
}
