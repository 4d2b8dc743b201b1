package orderstatus

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	}

	stateManager interface {
		SetState(chatID int64, state states.State, data any)
		Take(chatID int64, state states.State) (any, bool)
	}

	orderService interface {
		OrderStatus(ctx context.Context, orderID string) (reseller.OrderStatus, error)
	}
)
