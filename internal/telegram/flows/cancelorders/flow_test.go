package cancelorders

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/mocks"
	"smm-bot/internal/telegram/states"
)

const chatID int64 = 9

type stubOrders struct {
	results []reseller.CancelResult
	err     error
	calls   []string
}

func (s *stubOrders) CancelOrders(ctx context.Context, orderIDs string) ([]reseller.CancelResult, error) {
	s.calls = append(s.calls, orderIDs)
	return s.results, s.err
}

func TestCancelOrders(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		results   []reseller.CancelResult
		err       error
		wantText  string
		wantCalls []string
	}{
		{
			name:      "success",
			input:     " 12345, 12346 ",
			wantText:  messages.CancelOrdersSuccess,
			wantCalls: []string{"12345, 12346"},
		},
		{
			name:     "non digit element",
			input:    "12345,12346,abc",
			wantText: messages.CancelOrdersInvalidIDs,
		},
		{
			name:     "empty element",
			input:    "12345,,12346",
			wantText: messages.CancelOrdersInvalidIDs,
		},
		{
			name:     "too many",
			input:    strings.TrimSuffix(strings.Repeat("1,", 101), ","),
			wantText: messages.CancelOrdersTooMany,
		},
		{
			name:      "partial failure",
			input:     "2,9",
			results:   []reseller.CancelResult{{OrderID: "2"}, {OrderID: "9", Error: "Incorrect order ID"}},
			wantText:  "⚠️ Не все заказы отменены:\n• 9: Incorrect order ID",
			wantCalls: []string{"2,9"},
		},
		{
			name:      "api error",
			input:     "1",
			err:       &reseller.APIError{Message: "Incorrect request"},
			wantText:  "❌ Ошибка: Incorrect request",
			wantCalls: []string{"1"},
		},
		{
			name:      "network",
			input:     "1",
			err:       errors.Wrap(reseller.ErrNetwork, "cancel"),
			wantText:  messages.CancelOrdersNetworkError,
			wantCalls: []string{"1"},
		},
		{
			name:      "malformed",
			input:     "1",
			err:       errors.Wrap(reseller.ErrMalformedResponse, "cancel"),
			wantText:  messages.MalformedReply,
			wantCalls: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &mocks.MockBotApi{}
			sm := states.NewManager()
			o := &stubOrders{results: tt.results, err: tt.err}
			h := NewHandler(bot, sm, o, slog.New(slog.NewTextHandler(io.Discard, nil)))

			if err := h.Start(chatID); err != nil {
				t.Fatalf("Start: %v", err)
			}
			if err := h.Handle(context.Background(), mocks.TextUpdate(chatID, tt.input)); err != nil {
				t.Fatalf("Handle: %v", err)
			}

			msg, _ := bot.LastMessage()
			if msg.Text != tt.wantText {
				t.Errorf("text = %q, want %q", msg.Text, tt.wantText)
			}
			if len(o.calls) != len(tt.wantCalls) {
				t.Fatalf("remote calls = %v, want %v", o.calls, tt.wantCalls)
			}
			for i := range o.calls {
				if o.calls[i] != tt.wantCalls[i] {
					t.Errorf("call %d = %q, want %q", i, o.calls[i], tt.wantCalls[i])
				}
			}
			if got := sm.GetState(chatID); got != states.StateNone {
				t.Errorf("state = %q, want none", got)
			}
		})
	}
}
