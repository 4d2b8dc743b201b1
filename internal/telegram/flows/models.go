package flows

import (
	"smm-bot/internal/stories/catalog"
	"smm-bot/internal/stories/orders"
)

// Данные флоу оформления заказа. Каждому состоянию соответствует свой тип,
// поэтому в сессии не бывает полей от разных шагов одновременно.

// CategorySelectionData - показан список категорий. Индекс в Categories -
// ключ кнопки cat_<index>.
type CategorySelectionData struct {
	Categories []string
}

// ServiceSelectionData - показан список услуг категории. Индекс в Services -
// ключ кнопки srv_<index>, действительный только для этого списка.
type ServiceSelectionData struct {
	Categories []string
	Category   string
	Services   []catalog.ServiceOption
}

type LinkInputData struct {
	ServiceID   string
	ServiceInfo string
}

type QuantityInputData struct {
	ServiceID   string
	ServiceInfo string
	Link        string
}

// ConfirmationData - заказ, ожидающий подтверждения, и показанная пользователю цена.
type ConfirmationData struct {
	Order orders.OrderRequest
	Quote catalog.Quote
}
