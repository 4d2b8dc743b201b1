package telegram

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"smm-bot/internal/infra/metrics"
	"smm-bot/internal/telegram/cmds"
	"smm-bot/internal/telegram/flows/cancelorders"
	"smm-bot/internal/telegram/flows/orderstatus"
	"smm-bot/internal/telegram/flows/placeorder"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/states"
)

type Router struct {
	bot          botApi
	stateManager stateManager
	logger       *slog.Logger

	// Handlers
	placeOrderHandler   *placeorder.Handler
	orderStatusHandler  *orderstatus.Handler
	cancelOrdersHandler *cancelorders.Handler
	balanceCommand      *cmds.BalanceCommand
}

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type stateManager interface {
	GetState(chatID int64) states.State
	Clear(chatID int64)
}

// NewRouter создает новый роутер с зависимостями
func NewRouter(
	bot botApi,
	stateManager stateManager,
	logger *slog.Logger,
	placeOrderHandler *placeorder.Handler,
	orderStatusHandler *orderstatus.Handler,
	cancelOrdersHandler *cancelorders.Handler,
	balanceCommand *cmds.BalanceCommand,
) *Router {
	return &Router{
		bot:                 bot,
		stateManager:        stateManager,
		logger:              logger,
		placeOrderHandler:   placeOrderHandler,
		orderStatusHandler:  orderStatusHandler,
		cancelOrdersHandler: cancelOrdersHandler,
		balanceCommand:      balanceCommand,
	}
}

// Route обрабатывает один update. Паника внутри обработчика не выходит
// за пределы Route: пользователь получает извинение, состояние сбрасывается.
func (r *Router) Route(ctx context.Context, update *tgbotapi.Update) (err error) {
	chatID := extractChatID(update)
	if chatID == 0 {
		return nil // Некорректный update
	}

	logger := r.logger.With(
		slog.String("request_id", uuid.NewString()),
		slog.Int64("chat_id", chatID),
		slog.Int64("user_id", extractUserID(update)),
	)

	defer func() {
		if rec := recover(); rec != nil {
			metrics.IncPanic()
			logger.Error("Panic while handling update",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))

			r.stateManager.Clear(chatID)
			_ = r.sendText(chatID, messages.Apology)
			err = nil
		}
	}()

	if err = r.route(ctx, update, chatID); err != nil {
		logger.Error("Failed to handle update", slog.Any("error", err))
	}
	return err
}

func (r *Router) route(ctx context.Context, update *tgbotapi.Update, chatID int64) error {
	// ПРИОРИТЕТ: команды отменяют любой флоу
	if update.Message != nil && update.Message.IsCommand() {
		metrics.IncUpdate("command")
		r.stateManager.Clear(chatID)
		return r.handleCommand(update.Message)
	}

	if update.CallbackQuery != nil {
		metrics.IncUpdate("callback")
		if placeorder.IsCallback(update.CallbackQuery.Data) {
			return r.placeOrderHandler.HandleCallback(ctx, update)
		}
		_, err := r.bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, messages.MenuOutdated))
		return err
	}

	if update.Message == nil {
		return nil
	}
	metrics.IncUpdate("message")

	// Кнопки главного меню важнее ожидаемого ввода. Начатый флоу сбрасывается.
	switch strings.TrimSpace(update.Message.Text) {
	case messages.ButtonPlaceOrder:
		r.stateManager.Clear(chatID)
		return r.placeOrderHandler.Start(ctx, chatID)
	case messages.ButtonBalance:
		r.stateManager.Clear(chatID)
		return r.balanceCommand.Execute(ctx, chatID)
	case messages.ButtonOrderStatus:
		r.stateManager.Clear(chatID)
		return r.orderStatusHandler.Start(chatID)
	case messages.ButtonCancelOrders:
		r.stateManager.Clear(chatID)
		return r.cancelOrdersHandler.Start(chatID)
	}

	state := r.stateManager.GetState(chatID)

	// Проверяем состояние флоу оформления заказа
	if strings.HasPrefix(string(state), "po_") {
		return r.placeOrderHandler.Handle(ctx, update, state)
	}

	switch state {
	case states.OrderStatusWaitOrderID:
		return r.orderStatusHandler.Handle(ctx, update)
	case states.CancelOrdersWaitOrderIDs:
		return r.cancelOrdersHandler.Handle(ctx, update)
	}

	// Если нет активного состояния - показываем меню
	return r.sendMainMenu(chatID, messages.ChooseAction)
}

func (r *Router) handleCommand(message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		return r.sendMainMenu(chatID, messages.Welcome)
	default:
		return r.sendMainMenu(chatID, messages.ChooseAction)
	}
}

func (r *Router) sendMainMenu(chatID int64, text string) error {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(messages.ButtonPlaceOrder),
			tgbotapi.NewKeyboardButton(messages.ButtonBalance),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(messages.ButtonOrderStatus),
			tgbotapi.NewKeyboardButton(messages.ButtonCancelOrders),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := r.bot.Send(msg)
	return err
}

func (r *Router) sendText(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SetupBotCommands устанавливает команды для меню бота
func (r *Router) SetupBotCommands() error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Главное меню",
		},
	}

	_, err := r.bot.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}

func extractUserID(update *tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
}

func extractChatID(update *tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.Chat != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil && update.CallbackQuery.Message.Chat != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}
