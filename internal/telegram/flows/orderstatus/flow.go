package orderstatus

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"smm-bot/internal/stories/orders"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/states"
)

// Handler запрашивает номер заказа и показывает его статус. Ввод принимается
// один раз: после любого ответа пользователь возвращается в главное меню.
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
	h.stateManager.SetState(chatID, states.OrderStatusWaitOrderID, nil)
	return h.sendMessage(chatID, messages.OrderStatusPrompt)
}

func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update) error {
	if update.Message == nil {
		return nil
	}
	chatID := update.Message.Chat.ID

	if _, ok := h.stateManager.Take(chatID, states.OrderStatusWaitOrderID); !ok {
		return nil
	}

	orderID := strings.TrimSpace(update.Message.Text)
	if !orders.IsOrderID(orderID) {
		return h.sendMessage(chatID, messages.OrderStatusInvalidID)
	}

	status, err := h.orderService.OrderStatus(ctx, orderID)
	if err != nil {
		h.logger.Error("Failed to get order status", "order_id", orderID, "error", err)
		return h.sendMessage(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network:   messages.NetworkError,
			Malformed: messages.MalformedReply,
			Other:     messages.OrderStatusError,
		}))
	}

	msg := tgbotapi.NewMessage(chatID, messages.FormatOrderStatus(orderID, status, func(s string) string {
		return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
	}))
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err = h.bot.Send(msg)
	return err
}

func (h *Handler) sendMessage(chatID int64, text string) error {
	_, err := h.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
