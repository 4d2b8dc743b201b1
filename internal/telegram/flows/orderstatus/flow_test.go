package orderstatus

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/mocks"
	"smm-bot/internal/telegram/states"
)

const chatID int64 = 7

type stubOrders struct {
	status reseller.OrderStatus
	err    error
	calls  []string
}

func (s *stubOrders) OrderStatus(ctx context.Context, orderID string) (reseller.OrderStatus, error) {
	s.calls = append(s.calls, orderID)
	return s.status, s.err
}

func newHandler(o *stubOrders) (*Handler, *mocks.MockBotApi, *states.Manager) {
	bot := &mocks.MockBotApi{}
	sm := states.NewManager()
	return NewHandler(bot, sm, o, slog.New(slog.NewTextHandler(io.Discard, nil))), bot, sm
}

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		status    reseller.OrderStatus
		err       error
		wantText  []string
		wantCalls int
	}{
		{
			name:      "found",
			input:     "23501",
			status:    reseller.OrderStatus{Charge: "0.27819", Service: "12", Status: "In_progress", Currency: "USD"},
			wantText:  []string{"23501", "0.27819 USD", `In\_progress`, "*Осталось:* " + messages.NoData},
			wantCalls: 1,
		},
		{
			name:      "api error",
			input:     "1",
			err:       &reseller.APIError{Message: "Incorrect order ID"},
			wantText:  []string{"Incorrect order ID"},
			wantCalls: 1,
		},
		{
			name:      "malformed reply",
			input:     "1",
			err:       errors.Wrap(reseller.ErrMalformedResponse, "status"),
			wantText:  []string{messages.MalformedReply},
			wantCalls: 1,
		},
		{
			name:      "network",
			input:     "1",
			err:       errors.Wrap(reseller.ErrNetwork, "status"),
			wantText:  []string{messages.NetworkError},
			wantCalls: 1,
		},
		{
			name:     "not digits",
			input:    "12a",
			wantText: []string{messages.OrderStatusInvalidID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &stubOrders{status: tt.status, err: tt.err}
			h, bot, sm := newHandler(o)

			if err := h.Start(chatID); err != nil {
				t.Fatalf("Start: %v", err)
			}
			if err := h.Handle(context.Background(), mocks.TextUpdate(chatID, tt.input)); err != nil {
				t.Fatalf("Handle: %v", err)
			}

			msg, _ := bot.LastMessage()
			for _, want := range tt.wantText {
				if !strings.Contains(msg.Text, want) {
					t.Errorf("text %q does not contain %q", msg.Text, want)
				}
			}
			if len(o.calls) != tt.wantCalls {
				t.Errorf("remote calls = %d, want %d", len(o.calls), tt.wantCalls)
			}
			// Ввод одноразовый: состояние снимается при любом исходе.
			if got := sm.GetState(chatID); got != states.StateNone {
				t.Errorf("state = %q, want none", got)
			}
		})
	}
}

func TestOrderStatusUsesMarkdown(t *testing.T) {
	h, bot, _ := newHandler(&stubOrders{status: reseller.OrderStatus{Status: "Completed"}})

	_ = h.Start(chatID)
	if err := h.Handle(context.Background(), mocks.TextUpdate(chatID, "5")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	msg, _ := bot.LastMessage()
	if msg.ParseMode != tgbotapi.ModeMarkdown {
		t.Errorf("ParseMode = %q", msg.ParseMode)
	}
}

func TestHandleWithoutPrompt(t *testing.T) {
	o := &stubOrders{}
	h, bot, _ := newHandler(o)

	if err := h.Handle(context.Background(), mocks.TextUpdate(chatID, "5")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(o.calls) != 0 || len(bot.SentMessages) != 0 {
		t.Error("input without prompt must be ignored")
	}
}
