package cmds

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"smm-bot/internal/infra/reseller"
	"smm-bot/internal/telegram/messages"
)

type BalanceCommand struct {
	bot     botApi
	service BalanceService
	logger  *slog.Logger
}

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type BalanceService interface {
	Balance(ctx context.Context) (reseller.Balance, error)
}

func NewBalanceCommand(bot botApi, service BalanceService, logger *slog.Logger) *BalanceCommand {
	return &BalanceCommand{
		bot:     bot,
		service: service,
		logger:  logger,
	}
}

// Execute показывает баланс аккаунта реселлера. Состояние диалога не меняется.
func (c *BalanceCommand) Execute(ctx context.Context, chatID int64) error {
	text := messages.BalanceError

	balance, err := c.service.Balance(ctx)
	if err != nil {
		c.logger.Error("Failed to get balance", "error", err)
	} else {
		text = messages.FormatBalance(balance.Amount, balance.Currency)
	}

	_, err = c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
