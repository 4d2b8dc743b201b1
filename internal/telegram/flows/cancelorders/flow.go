package cancelorders

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"smm-bot/internal/stories/orders"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/states"
)

type Handler struct {
	bot          botApi
	stateManager stateManager
	orderService orderService
	logger       *slog.Logger
}

func NewHandler(bot botApi, sm stateManager, os orderService, logger *slog.Logger) *Handler {
	return &Handler{
		bot:          bot,
		stateManager: sm,
		orderService: os,
		logger:       logger,
	}
}

func (h *Handler) Start(chatID int64) error {
	h.stateManager.SetState(chatID, states.CancelOrdersWaitOrderIDs, nil)
	return h.sendMessage(chatID, messages.CancelOrdersPrompt)
}

// Handle проверяет список номеров и отправляет его в API. Неверный ввод
// не запрашивается повторно.
func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update) error {
	if update.Message == nil {
		return nil
	}
	chatID := update.Message.Chat.ID

	if _, ok := h.stateManager.Take(chatID, states.CancelOrdersWaitOrderIDs); !ok {
		return nil
	}

	raw := strings.TrimSpace(update.Message.Text)
	if _, err := orders.ParseOrderIDs(raw); err != nil {
		if errors.Is(err, orders.ErrTooManyOrders) {
			return h.sendMessage(chatID, messages.CancelOrdersTooMany)
		}
		return h.sendMessage(chatID, messages.CancelOrdersInvalidIDs)
	}

	results, err := h.orderService.CancelOrders(ctx, raw)
	if err != nil {
		h.logger.Error("Failed to cancel orders", "orders", raw, "error", err)
		return h.sendMessage(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network:   messages.CancelOrdersNetworkError,
			Malformed: messages.MalformedReply,
			Other:     messages.CancelOrdersError,
		}))
	}

	return h.sendMessage(chatID, messages.FormatCancelResults(results))
}

func (h *Handler) sendMessage(chatID int64, text string) error {
	_, err := h.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
