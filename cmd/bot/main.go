package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	environment "smm-bot/internal/env"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize environment
	env, err := environment.Setup(ctx)
	if err != nil {
		log.Fatalf("Failed to setup environment: %v", err)
	}

	logger := env.Logger
	logger.Info("Starting smm-bot application")

	// Start observability server in background
	go func() {
		logger.Info("Starting observability server", slog.String("addr", env.Servers.HTTP.Observability.Addr))
		if err := env.Servers.HTTP.Observability.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Observability server error", slog.Any("error", err))
		}
	}()

	if err := env.Services.Workers.Start(); err != nil {
		logger.Error("Failed to start workers", slog.Any("error", err))
		return
	}

	// Устанавливаем команды для меню бота
	if err := env.Services.TelegramRouter.SetupBotCommands(); err != nil {
		logger.Error("Failed to setup bot commands", slog.Any("error", err))
	}

	env.Clients.TelegramBot.Start()

	var inflight sync.WaitGroup
	serveUpdates(ctx, env, &inflight)

	logger.Info("Shutting down application...")

	waitInflight(&inflight, env.Config.ShutdownDuration, logger)

	env.Services.Workers.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.Config.ShutdownDuration)
	defer cancel()

	if err := env.Servers.HTTP.Observability.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Observability server shutdown error", slog.Any("error", err))
	}

	// Close resources
	for _, closer := range env.Closers {
		closer()
	}

	logger.Info("Application stopped")
}

// serveUpdates обрабатывает каждый update в отдельной горутине, пока не
// отменен ctx.
func serveUpdates(ctx context.Context, env *environment.Env, inflight *sync.WaitGroup) {
	updates := env.Clients.TelegramBot.GetUpdates()

	// Начатые запросы к реселлеру доводятся до конца даже при остановке.
	handlerCtx := context.WithoutCancel(ctx)

	env.Logger.Info("Started listening for updates with router...")

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			inflight.Add(1)
			go func(update tgbotapi.Update) {
				defer inflight.Done()
				// Ошибки уже залогированы роутером
				_ = env.Services.TelegramRouter.Route(handlerCtx, &update)
			}(update)
		}
	}
}

func waitInflight(inflight *sync.WaitGroup, timeout time.Duration, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warn("Timed out waiting for in-flight updates", slog.Duration("timeout", timeout))
	}
}
