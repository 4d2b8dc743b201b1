package cmds

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/mocks"
)

type stubBalance struct {
	balance reseller.Balance
	err     error
}

func (s *stubBalance) Balance(ctx context.Context) (reseller.Balance, error) {
	return s.balance, s.err
}

func TestBalanceCommand(t *testing.T) {
	tests := []struct {
		name     string
		service  *stubBalance
		wantText string
	}{
		{
			name:     "rubles",
			service:  &stubBalance{balance: reseller.Balance{Amount: "150.5", Currency: "RUB"}},
			wantText: "💰 Ваш баланс: 150.5 ₽",
		},
		{
			name:     "other currency",
			service:  &stubBalance{balance: reseller.Balance{Amount: "100.84292", Currency: "USD"}},
			wantText: "💰 Ваш баланс: 100.84292 USD",
		},
		{
			name:     "failure",
			service:  &stubBalance{err: errors.Wrap(reseller.ErrNetwork, "balance")},
			wantText: messages.BalanceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &mocks.MockBotApi{}
			cmd := NewBalanceCommand(bot, tt.service, slog.New(slog.NewTextHandler(io.Discard, nil)))

			if err := cmd.Execute(context.Background(), 1); err != nil {
				t.Fatalf("Execute: %v", err)
			}

			msg, ok := bot.LastMessage()
			if !ok || msg.Text != tt.wantText {
				t.Errorf("text = %q, want %q", msg.Text, tt.wantText)
			}
		})
	}
}
