package placeorder

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"smm-bot/internal/stories/orders"
	"smm-bot/internal/telegram/flows"
	"smm-bot/internal/telegram/messages"
	"smm-bot/internal/telegram/states"
)

const (
	callbackCategoryPrefix = "cat_"
	callbackServicePrefix  = "srv_"
	callbackConfirm        = "confirm_order"
	callbackCancel         = "cancel_order"
)

// IsCallback сообщает, относится ли callback к флоу оформления заказа.
func IsCallback(data string) bool {
	return strings.HasPrefix(data, callbackCategoryPrefix) ||
		strings.HasPrefix(data, callbackServicePrefix) ||
		data == callbackConfirm ||
		data == callbackCancel
}

type Handler struct {
	bot            botApi
	stateManager   stateManager
	catalogService catalogService
	orderService   orderService
	logger         *slog.Logger
}

func NewHandler(
	bot botApi,
	sm stateManager,
	cs catalogService,
	os orderService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		stateManager:   sm,
		catalogService: cs,
		orderService:   os,
		logger:         logger,
	}
}

// Start загружает категории и показывает их списком
func (h *Handler) Start(ctx context.Context, chatID int64) error {
	categories, err := h.catalogService.ListCategories(ctx)
	if err != nil {
		h.logger.Error("Failed to load categories", "error", err)
		return h.abort(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network:   messages.NetworkError,
			Malformed: messages.MalformedReply,
			Other:     messages.CategoriesLoadError,
		}))
	}
	if len(categories) == 0 {
		return h.abort(chatID, messages.CategoriesLoadError)
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for i, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category, callbackCategoryPrefix+strconv.Itoa(i)),
		))
	}

	h.stateManager.SetState(chatID, states.PlaceOrderWaitCategory, &flows.CategorySelectionData{
		Categories: categories,
	})

	msg := tgbotapi.NewMessage(chatID, messages.CategoriesChoose)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	_, err = h.bot.Send(msg)
	return err
}

// Handle обрабатывает текстовые сообщения в состояниях флоу
func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update, state states.State) error {
	switch state {
	case states.PlaceOrderWaitLink:
		return h.handleLinkInput(update)
	case states.PlaceOrderWaitQuantity:
		return h.handleQuantityInput(ctx, update)
	case states.PlaceOrderWaitCategory, states.PlaceOrderWaitService, states.PlaceOrderWaitConfirmation:
		return h.sendMessage(extractChatID(update), messages.UseButtons)
	default:
		return fmt.Errorf("unknown place order state: %s", state)
	}
}

// HandleCallback обрабатывает нажатия inline-кнопок флоу
func (h *Handler) HandleCallback(ctx context.Context, update *tgbotapi.Update) error {
	if update.CallbackQuery == nil {
		return nil
	}

	data := update.CallbackQuery.Data
	switch {
	case strings.HasPrefix(data, callbackCategoryPrefix):
		return h.handleCategorySelected(ctx, update, strings.TrimPrefix(data, callbackCategoryPrefix))
	case strings.HasPrefix(data, callbackServicePrefix):
		return h.handleServiceSelected(update, strings.TrimPrefix(data, callbackServicePrefix))
	case data == callbackConfirm:
		return h.handleConfirm(ctx, update)
	case data == callbackCancel:
		return h.handleCancel(update)
	default:
		return h.answerCallback(update, messages.MenuOutdated)
	}
}

func (h *Handler) handleCategorySelected(ctx context.Context, update *tgbotapi.Update, key string) error {
	chatID := extractChatID(update)

	// Категории хранятся и при выборе услуги, чтобы можно было вернуться
	// к предыдущему списку.
	var categories []string
	switch h.stateManager.GetState(chatID) {
	case states.PlaceOrderWaitCategory:
		data, err := h.stateManager.GetCategorySelectionData(chatID)
		if err != nil {
			return h.abortInternal(update, err)
		}
		categories = data.Categories
	case states.PlaceOrderWaitService:
		data, err := h.stateManager.GetServiceSelectionData(chatID)
		if err != nil {
			return h.abortInternal(update, err)
		}
		categories = data.Categories
	default:
		return h.answerCallback(update, messages.MenuOutdated)
	}

	index, ok := parseIndex(key, len(categories))
	if !ok {
		return h.answerCallback(update, messages.MenuOutdated)
	}
	category := categories[index]

	if err := h.answerCallback(update, ""); err != nil {
		h.logger.Error("Failed to answer callback query", "error", err)
	}

	services, err := h.catalogService.ListServices(ctx, category)
	if err != nil {
		h.logger.Error("Failed to load services", "category", category, "error", err)
		return h.abort(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network:   messages.NetworkError,
			Malformed: messages.MalformedReply,
			Other:     messages.ServicesLoadError,
		}))
	}
	if len(services) == 0 {
		return h.abort(chatID, messages.ServicesEmpty)
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(services))
	for i, service := range services {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(service.Label, callbackServicePrefix+strconv.Itoa(i)),
		))
	}

	h.stateManager.SetState(chatID, states.PlaceOrderWaitService, &flows.ServiceSelectionData{
		Categories: categories,
		Category:   category,
		Services:   services,
	})

	msg := tgbotapi.NewMessage(chatID, messages.FormatServicesChoose(
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, category),
	))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err = h.bot.Send(msg)
	return err
}

func (h *Handler) handleServiceSelected(update *tgbotapi.Update, key string) error {
	chatID := extractChatID(update)

	if h.stateManager.GetState(chatID) != states.PlaceOrderWaitService {
		return h.answerCallback(update, messages.MenuOutdated)
	}

	data, err := h.stateManager.GetServiceSelectionData(chatID)
	if err != nil {
		return h.abortInternal(update, err)
	}

	index, ok := parseIndex(key, len(data.Services))
	if !ok {
		return h.answerCallback(update, messages.MenuOutdated)
	}
	service := data.Services[index]

	if err := h.answerCallback(update, ""); err != nil {
		h.logger.Error("Failed to answer callback query", "error", err)
	}

	h.stateManager.SetState(chatID, states.PlaceOrderWaitLink, &flows.LinkInputData{
		ServiceID:   service.ID,
		ServiceInfo: service.Label,
	})

	return h.sendMessage(chatID, messages.FormatServiceSelected(service.Label))
}

func (h *Handler) handleLinkInput(update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	link := extractText(update)
	if link == "" {
		return h.sendMessage(chatID, messages.LinkExpected)
	}

	data, err := h.stateManager.GetLinkInputData(chatID)
	if err != nil {
		return h.abortInternal(update, err)
	}

	h.stateManager.SetState(chatID, states.PlaceOrderWaitQuantity, &flows.QuantityInputData{
		ServiceID:   data.ServiceID,
		ServiceInfo: data.ServiceInfo,
		Link:        link,
	})

	return h.sendMessage(chatID, messages.QuantityPrompt)
}

func (h *Handler) handleQuantityInput(ctx context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	// При ошибке ввода состояние не меняется, пользователь может повторить.
	quantity, err := orders.ParseQuantity(extractText(update))
	switch {
	case errors.Is(err, orders.ErrQuantityOutOfRange):
		return h.sendMessage(chatID, messages.QuantityOutOfRange)
	case err != nil:
		return h.sendMessage(chatID, messages.QuantityNotNumber)
	}

	data, err := h.stateManager.GetQuantityInputData(chatID)
	if err != nil {
		return h.abortInternal(update, err)
	}
	if data.ServiceID == "" || data.Link == "" {
		return h.abortInternal(update, errors.New("service or link missing"))
	}

	quote, err := h.catalogService.ComputePrice(ctx, data.ServiceID, quantity)
	if err != nil {
		h.logger.Error("Failed to compute price", "service_id", data.ServiceID, "error", err)
		return h.abort(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network: messages.NetworkError,
			Other:   messages.PriceError,
		}))
	}

	h.stateManager.SetState(chatID, states.PlaceOrderWaitConfirmation, &flows.ConfirmationData{
		Order: orders.OrderRequest{
			ServiceID: data.ServiceID,
			Link:      data.Link,
			Quantity:  quantity,
		},
		Quote: quote,
	})

	msg := tgbotapi.NewMessage(chatID, messages.FormatOrderConfirmation(data.Link, quantity, quote.Rate, quote.Total))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonConfirm, callbackConfirm),
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonCancel, callbackCancel),
		),
	)

	_, err = h.bot.Send(msg)
	return err
}

func (h *Handler) handleConfirm(ctx context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	// Take снимает состояние атомарно: повторное нажатие не создаст второй заказ.
	raw, ok := h.stateManager.Take(chatID, states.PlaceOrderWaitConfirmation)
	if !ok {
		return h.answerCallback(update, messages.MenuOutdated)
	}
	data, ok := raw.(*flows.ConfirmationData)
	if !ok {
		return h.abortInternal(update, fmt.Errorf("invalid confirmation data %T", raw))
	}

	if err := h.answerCallback(update, ""); err != nil {
		h.logger.Error("Failed to answer callback query", "error", err)
	}

	orderID, err := h.orderService.PlaceOrder(ctx, data.Order)
	if err != nil {
		h.logger.Error("Failed to place order", "service_id", data.Order.ServiceID, "error", err)
		return h.sendMessage(chatID, messages.FormatRemoteError(err, messages.ErrorTexts{
			Network: messages.NetworkError,
			Other:   messages.OrderCreateError,
		}))
	}

	// Показываем цену, которую пользователь подтвердил.
	return h.sendMessage(chatID, messages.FormatOrderPlaced(
		orderID,
		data.Order.Link,
		data.Order.Quantity,
		data.Quote.Rate,
		data.Quote.Total,
	))
}

func (h *Handler) handleCancel(update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	if _, ok := h.stateManager.Take(chatID, states.PlaceOrderWaitConfirmation); !ok {
		return h.answerCallback(update, messages.MenuOutdated)
	}

	if err := h.answerCallback(update, messages.OrderCancelledCallback); err != nil {
		h.logger.Error("Failed to answer callback query", "error", err)
	}

	return h.sendMessage(chatID, messages.OrderCancelled)
}

// abort сбрасывает флоу и сообщает пользователю причину
func (h *Handler) abort(chatID int64, text string) error {
	h.stateManager.Clear(chatID)
	return h.sendMessage(chatID, text)
}

func (h *Handler) abortInternal(update *tgbotapi.Update, cause error) error {
	h.logger.Error("Place order flow data is inconsistent", "error", cause)
	if update.CallbackQuery != nil {
		_ = h.answerCallback(update, "")
	}
	return h.abort(extractChatID(update), messages.InternalState)
}

func (h *Handler) answerCallback(update *tgbotapi.Update, text string) error {
	_, err := h.bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, text))
	return err
}

func (h *Handler) sendMessage(chatID int64, text string) error {
	_, err := h.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func parseIndex(key string, size int) (int, bool) {
	index, err := strconv.Atoi(key)
	if err != nil || index < 0 || index >= size {
		return 0, false
	}
	return index, true
}

func extractText(update *tgbotapi.Update) string {
	if update.Message == nil {
		return ""
	}
	return strings.TrimSpace(update.Message.Text)
}

func extractChatID(update *tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}
