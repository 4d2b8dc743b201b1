package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"smm-bot/internal/config"
)

type Client struct {
	api     *tgbotapi.BotAPI
	logger  *slog.Logger
	limiter *rate.Limiter
	timeout int
	updates tgbotapi.UpdatesChannel
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewClient(cfg config.TelegramConfig, logger *slog.Logger) (*Client, error) {
	// Long polling держит запрос открытым cfg.Timeout, HTTP-клиенту нужен запас.
	httpClient := &http.Client{Timeout: cfg.Timeout + cfg.Timeout/2}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("создание telegram бота: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		api:     bot,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
		timeout: int(cfg.Timeout.Seconds()),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start начинает получение обновлений (long polling)
func (c *Client) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.timeout

	c.updates = c.api.GetUpdatesChan(u)

	c.logger.Info("Telegram бот запущен", slog.String("username", c.api.Self.UserName))
}

// Stop останавливает получение обновлений и прерывает ожидание лимитера
func (c *Client) Stop() {
	c.cancel()
	c.api.StopReceivingUpdates()
	c.logger.Info("Telegram бот остановлен")
}

// GetUpdates возвращает канал с обновлениями
func (c *Client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updates
}

// Send отправляет любое сообщение с rate limiting (для интерфейса botApi)
func (c *Client) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiting: %w", err)
	}

	message, err := c.api.Send(chattable)
	if err != nil {
		c.logger.Error("ошибка отправки", slog.Any("error", err))
		return tgbotapi.Message{}, fmt.Errorf("отправка: %w", err)
	}

	return message, nil
}

// Request отправляет запрос к API (для интерфейса botApi)
func (c *Client) Request(chattable tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w", err)
	}

	resp, err := c.api.Request(chattable)
	if err != nil {
		c.logger.Error("ошибка запроса к API", slog.Any("error", err))
		return nil, fmt.Errorf("запрос к API: %w", err)
	}

	return resp, nil
}
