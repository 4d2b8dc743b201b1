package environment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel"

	"smm-bot/internal/config"
	"smm-bot/internal/infra/metrics"
)

type closer func()

type Env struct {
	Config   *config.Config
	Logger   *slog.Logger
	Servers  *Servers
	Clients  *Clients
	Services *Services

	Closers []closer
}

func Setup(ctx context.Context) (*Env, error) {
	// Загружаем .env файл если он существует (игнорируем ошибки - файл может не существовать)
	_ = godotenv.Load()

	var cfg config.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("env processing: %w", err)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("initLogger: %w", err)
	}

	metrics.MustRegister()

	tracerProvider, err := initTracing(cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("initTracing: %w", err)
	}
	otel.SetTracerProvider(tracerProvider)

	clients, err := newClients(cfg, tracerProvider, logger)
	if err != nil {
		return nil, fmt.Errorf("newClients: %w", err)
	}

	services := newServices(clients, &cfg, logger)

	servers := newServers(cfg, logger, services.Healthcheck)

	return &Env{
		Config:   &cfg,
		Logger:   logger,
		Servers:  servers,
		Clients:  clients,
		Services: services,
		Closers: []closer{
			clients.TelegramBot.Stop,
			shutdownTracing(tracerProvider, logger),
		},
	}, nil
}
