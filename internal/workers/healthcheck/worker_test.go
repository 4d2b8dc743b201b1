package healthcheck

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
)

type stubReseller struct {
	err error
}

func (s *stubReseller) Balance(ctx context.Context) (reseller.Balance, error) {
	return reseller.Balance{Amount: "1"}, s.err
}

func TestCheckTracksAvailability(t *testing.T) {
	r := &stubReseller{}
	w := NewWorker(r, "@every 1m", slog.New(slog.NewTextHandler(io.Discard, nil)))

	if w.Ready() {
		t.Fatal("must not be ready before the first check")
	}
	if !w.LastCheck().IsZero() {
		t.Fatal("LastCheck must be zero before the first check")
	}

	steps := []struct {
		err  error
		want bool
	}{
		{err: nil, want: true},
		{err: errors.Wrap(reseller.ErrNetwork, "dial"), want: false},
		{err: &reseller.APIError{Message: "Invalid API key"}, want: false},
		{err: nil, want: true},
	}

	for i, step := range steps {
		r.err = step.err
		w.check(context.Background())

		if got := w.Ready(); got != step.want {
			t.Errorf("step %d: Ready = %v, want %v", i, got, step.want)
		}
	}

	if w.LastCheck().IsZero() {
		t.Error("LastCheck not recorded")
	}
}

func TestFirstFailedCheckIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := &stubReseller{err: errors.Wrap(reseller.ErrNetwork, "dial")}
	w := NewWorker(r, "@every 1m", slog.New(slog.NewTextHandler(&buf, nil)))

	w.check(context.Background())

	if !strings.Contains(buf.String(), "Reseller API is unavailable") {
		t.Fatalf("first failure not logged: %q", buf.String())
	}

	buf.Reset()
	w.check(context.Background())

	if strings.Contains(buf.String(), "Reseller API is unavailable") {
		t.Errorf("repeated failure logged again: %q", buf.String())
	}
}
