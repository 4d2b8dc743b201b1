package sessioncleanup

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"smm-bot/internal/infra/metrics"
)

// Worker удаляет диалоги, в которых пользователь не отвечал дольше ttl
type Worker struct {
	sessions Sessions
	ttl      time.Duration
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron
}

func NewWorker(sessions Sessions, ttl time.Duration, schedule string, logger *slog.Logger) *Worker {
	return &Worker{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

func (w *Worker) Name() string {
	return "session_cleanup"
}

func (w *Worker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, w.run)
	if err != nil {
		return fmt.Errorf("failed to schedule session cleanup worker: %w", err)
	}

	w.cron.Start()
	return nil
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping session cleanup worker")
	<-w.cron.Stop().Done()
}

func (w *Worker) run() {
	removed := w.sessions.Sweep(w.ttl)
	active := w.sessions.Len()
	metrics.SetActiveSessions(active)

	if removed > 0 {
		w.logger.Info("Expired sessions removed", "removed", removed, "active", active)
	}
}
