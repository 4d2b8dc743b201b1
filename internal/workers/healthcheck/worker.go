package healthcheck

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"smm-bot/internal/infra/metrics"
)

const checkTimeout = 10 * time.Second

// Worker периодически запрашивает баланс реселлера и помнит результат
// последней проверки. До первой проверки API считается недоступным.
type Worker struct {
	reseller Reseller
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron

	up        atomic.Bool
	lastCheck atomic.Int64
}

func NewWorker(reseller Reseller, schedule string, logger *slog.Logger) *Worker {
	return &Worker{
		reseller: reseller,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

func (w *Worker) Name() string {
	return "healthcheck"
}

// Start сразу выполняет первую проверку, затем - по расписанию
func (w *Worker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		w.check(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule healthcheck worker: %w", err)
	}

	go w.check(context.Background())

	w.cron.Start()
	return nil
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping health check worker")
	<-w.cron.Stop().Done()
}

// Ready сообщает, прошла ли последняя проверка
func (w *Worker) Ready() bool {
	return w.up.Load()
}

// LastCheck возвращает время последней проверки
func (w *Worker) LastCheck() time.Time {
	ts := w.lastCheck.Load()
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(0, ts)
}

func (w *Worker) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	_, err := w.reseller.Balance(ctx)
	up := err == nil

	// Первую проверку логируем всегда, дальше только смену состояния
	first := w.lastCheck.Load() == 0
	if prev := w.up.Swap(up); first || prev != up {
		if up {
			w.logger.Info("Reseller API is reachable")
		} else {
			w.logger.Warn("Reseller API is unavailable", "error", err)
		}
	}

	w.lastCheck.Store(time.Now().UnixNano())
	metrics.SetResellerUp(up)
}
