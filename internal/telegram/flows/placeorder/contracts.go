package placeorder

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"smm-bot/internal/stories/catalog"
	"smm-bot/internal/stories/orders"
	"smm-bot/internal/telegram/flows"
	"smm-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
		Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	}

	stateManager interface {
		GetState(chatID int64) states.State
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
		Take(chatID int64, state states.State) (any, bool)
		GetCategorySelectionData(chatID int64) (*flows.CategorySelectionData, error)
		GetServiceSelectionData(chatID int64) (*flows.ServiceSelectionData, error)
		GetLinkInputData(chatID int64) (*flows.LinkInputData, error)
		GetQuantityInputData(chatID int64) (*flows.QuantityInputData, error)
	}

	catalogService interface {
		ListCategories(ctx context.Context) ([]string, error)
		ListServices(ctx context.Context, category string) ([]catalog.ServiceOption, error)
		ComputePrice(ctx context.Context, serviceID string, quantity int) (catalog.Quote, error)
	}

	orderService interface {
		PlaceOrder(ctx context.Context, req orders.OrderRequest) (string, error)
	}
)
