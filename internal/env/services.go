package environment

import (
	"log/slog"

	"smm-bot/internal/config"
	"smm-bot/internal/stories/catalog"
	"smm-bot/internal/stories/orders"
	"smm-bot/internal/telegram"
	"smm-bot/internal/telegram/cmds"
	"smm-bot/internal/telegram/flows/cancelorders"
	"smm-bot/internal/telegram/flows/orderstatus"
	"smm-bot/internal/telegram/flows/placeorder"
	"smm-bot/internal/telegram/states"
	"smm-bot/internal/workers"
	"smm-bot/internal/workers/healthcheck"
	"smm-bot/internal/workers/sessioncleanup"
)

type Services struct {
	TelegramRouter *telegram.Router
	Workers        *workers.Manager
	Healthcheck    *healthcheck.Worker
}

func newServices(clients *Clients, cfg *config.Config, logger *slog.Logger) *Services {
	catalogService := catalog.NewService(clients.Reseller)
	orderService := orders.NewService(clients.Reseller, logger.With(slog.String("component", "orders")))

	// Создаем StateManager
	stateManager := states.NewManager()

	flowLogger := logger.With(slog.String("component", "flows"))

	placeOrderHandler := placeorder.NewHandler(
		clients.TelegramBot,
		stateManager,
		catalogService,
		orderService,
		flowLogger,
	)

	orderStatusHandler := orderstatus.NewHandler(
		clients.TelegramBot,
		stateManager,
		orderService,
		flowLogger,
	)

	cancelOrdersHandler := cancelorders.NewHandler(
		clients.TelegramBot,
		stateManager,
		orderService,
		flowLogger,
	)

	balanceCommand := cmds.NewBalanceCommand(
		clients.TelegramBot,
		orderService,
		flowLogger,
	)

	// Создаем роутер
	router := telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		logger.With(slog.String("component", "router")),
		placeOrderHandler,
		orderStatusHandler,
		cancelOrdersHandler,
		balanceCommand,
	)

	workerLogger := logger.With(slog.String("component", "workers"))

	healthWorker := healthcheck.NewWorker(clients.Reseller, cfg.Healthcheck.Schedule, workerLogger)
	cleanupWorker := sessioncleanup.NewWorker(stateManager, cfg.Sessions.TTL, cfg.Sessions.CleanupSchedule, workerLogger)

	return &Services{
		TelegramRouter: router,
		Workers:        workers.NewManager(workerLogger, cleanupWorker, healthWorker),
		Healthcheck:    healthWorker,
	}
}
