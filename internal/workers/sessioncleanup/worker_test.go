package sessioncleanup

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"smm-bot/internal/telegram/states"
)

func TestRunSweepsIdleSessions(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sm := states.NewManagerWithClock(func() time.Time { return now })

	sm.SetState(1, states.OrderStatusWaitOrderID, nil)
	now = now.Add(40 * time.Minute)
	sm.SetState(2, states.CancelOrdersWaitOrderIDs, nil)

	w := NewWorker(sm, 30*time.Minute, "@every 1m", slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.run()

	if sm.Len() != 1 {
		t.Fatalf("Len = %d, want 1", sm.Len())
	}
	if got := sm.GetState(2); got != states.CancelOrdersWaitOrderIDs {
		t.Errorf("fresh session removed: state = %q", got)
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	w := NewWorker(states.NewManager(), time.Minute, "every minute", slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("expected schedule error")
	}
}
