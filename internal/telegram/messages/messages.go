package messages

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
)

// Общие
const (
	Error          = "❌ Ошибка. Пожалуйста, попробуйте позже."
	Apology        = "😔 Что-то пошло не так. Начните заново с /start."
	InternalState  = "❌ Ошибка: Отсутствует информация об услуге или ссылке"
	MenuOutdated   = "Это меню устарело"
	UseButtons     = "Используйте кнопки для выбора"
	ChooseAction   = "Выберите действие:"
	Welcome        = "Добро пожаловать! Выберите действие:"
	NoData         = "Нет данных"
	NetworkError   = "❌ Ошибка сети. Проверьте соединение."
	MalformedReply = "❌ Ошибка: сервер вернул некорректный ответ."
)

// Кнопки главного меню. Текст кнопки одновременно является командой.
const (
	ButtonPlaceOrder   = "🛒 Оформить заказ"
	ButtonBalance      = "💰 Баланс"
	ButtonOrderStatus  = "📦 Статус заказа"
	ButtonCancelOrders = "❌ Отменить заказ"
	ButtonConfirm      = "✅ Подтвердить"
	ButtonCancel       = "❌ Отменить"
)

// Оформление заказа
const (
	CategoriesChoose       = "📂 Выберите категорию:"
	CategoriesLoadError    = "❌ Ошибка: не удалось загрузить категории."
	ServicesEmpty          = "❌ В этой категории пока нет услуг."
	ServicesLoadError      = "❌ Ошибка: не удалось загрузить услуги."
	LinkExpected           = "🔗 Пожалуйста, отправьте ссылку текстовым сообщением."
	QuantityPrompt         = "🔢 Введите количество (минимум 10, максимум 50 000):\n\n💡 После ввода количества будет показана итоговая стоимость заказа."
	QuantityNotNumber      = "❌ Ошибка: Пожалуйста, введите корректное число"
	QuantityOutOfRange     = "❌ Ошибка: Количество должно быть от 10 до 50 000"
	PriceError             = "❌ Ошибка при расчете стоимости заказа"
	OrderCreateError       = "❌ Ошибка при создании заказа. Пожалуйста, попробуйте снова."
	OrderCancelled         = "❌ Заказ отменен"
	OrderCancelledCallback = "Заказ отменен"
)

// Баланс
const (
	BalanceError = "❌ Ошибка при получении баланса"
)

// Статус заказа
const (
	OrderStatusPrompt    = "🔎 Введите номер заказа:"
	OrderStatusInvalidID = "❌ Ошибка: введите корректный номер заказа."
	OrderStatusError     = "❌ Внутренняя ошибка. Попробуйте позже."
)

// Отмена заказов
const (
	CancelOrdersPrompt       = "📝 Введите номера заказов для отмены через запятую (максимум 100 заказов):\nПример: 12345,12346,12347"
	CancelOrdersTooMany      = "❌ Ошибка: можно отменить максимум 100 заказов за раз"
	CancelOrdersInvalidIDs   = "❌ Ошибка: все ID заказов должны быть числами"
	CancelOrdersSuccess      = "✅ Заказы успешно отменены!"
	CancelOrdersNetworkError = "❌ Ошибка сети при отмене заказов."
	CancelOrdersError        = "❌ Внутренняя ошибка при отмене заказов."
)

// ErrorTexts - тексты для каждого вида ошибки удаленного API.
type ErrorTexts struct {
	Network   string
	Malformed string
	Other     string
}

// FormatRemoteError выбирает сообщение по виду ошибки. Ошибка, которую
// вернуло API, показывается пользователю как есть.
func FormatRemoteError(err error, texts ErrorTexts) string {
	var apiErr *reseller.APIError
	switch {
	case errors.As(err, &apiErr):
		return "❌ Ошибка: " + apiErr.Message
	case errors.Is(err, reseller.ErrNetwork) && texts.Network != "":
		return texts.Network
	case errors.Is(err, reseller.ErrMalformedResponse) && texts.Malformed != "":
		return texts.Malformed
	default:
		return texts.Other
	}
}

func FormatServicesChoose(category string) string {
	return fmt.Sprintf("✅ Выберите услугу в категории *%s*: ", category)
}

func FormatServiceSelected(serviceInfo string) string {
	return fmt.Sprintf("📋 Выбрана услуга:\n%s\n\n🔗 Введите ссылку на профиль или пост:", serviceInfo)
}

func FormatOrderConfirmation(link string, quantity int, rate, total float64) string {
	return fmt.Sprintf(`📋 Подтверждение заказа:

🔗 Ссылка: %s
📊 Количество: %d
💰 Цена за 1000: %.2f ₽
💵 Итоговая стоимость: %.2f ₽

Подтвердите или отмените заказ:`, link, quantity, rate, total)
}

func FormatOrderPlaced(orderID, link string, quantity int, rate, total float64) string {
	return fmt.Sprintf(`✅ Заказ успешно размещен!

📦 Номер заказа: %s
🔗 Ссылка: %s
📊 Количество: %d
💰 Цена за 1000: %.2f ₽
💵 Итоговая стоимость: %.2f ₽`, orderID, link, quantity, rate, total)
}

func FormatBalance(amount, currency string) string {
	return fmt.Sprintf("💰 Ваш баланс: %s %s", amount, currencySign(currency))
}

// FormatOrderStatus возвращает статус заказа в разметке Markdown. Значения
// полей экранирует вызывающий.
func FormatOrderStatus(orderID string, status reseller.OrderStatus, escape func(string) string) string {
	field := func(v string) string {
		if v == "" {
			return NoData
		}
		return escape(v)
	}

	charge := NoData
	if status.Charge != "" {
		charge = escape(status.Charge) + " " + currencySign(status.Currency)
	}

	return fmt.Sprintf("📦 *Статус заказа %s*\n"+
		"💰 *Стоимость:* %s\n"+
		"🛠 *Услуга:* %s\n"+
		"📌 *Статус:* %s\n"+
		"📉 *Осталось:* %s\n",
		escape(orderID),
		charge,
		field(status.Service),
		field(status.Status),
		field(status.Remains))
}

// FormatCancelResults перечисляет заказы, которые API отказалось отменить.
func FormatCancelResults(results []reseller.CancelResult) string {
	var failed []string
	for _, r := range results {
		if r.Error != "" {
			failed = append(failed, fmt.Sprintf("• %s: %s", r.OrderID, r.Error))
		}
	}
	if len(failed) == 0 {
		return CancelOrdersSuccess
	}
	return "⚠️ Не все заказы отменены:\n" + strings.Join(failed, "\n")
}

func currencySign(currency string) string {
	switch strings.ToUpper(currency) {
	case "", "RUB":
		return "₽"
	default:
		return currency
	}
}
