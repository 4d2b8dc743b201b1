package mocks

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBotApi - мок Telegram Bot API, запоминает все отправленные сообщения
type MockBotApi struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockBotApi) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

func (m *MockBotApi) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Texts возвращает тексты отправленных сообщений по порядку.
func (m *MockBotApi) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var texts []string
	for _, c := range m.SentMessages {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

// LastMessage возвращает последнее отправленное текстовое сообщение.
func (m *MockBotApi) LastMessage() (tgbotapi.MessageConfig, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.SentMessages) - 1; i >= 0; i-- {
		if msg, ok := m.SentMessages[i].(tgbotapi.MessageConfig); ok {
			return msg, true
		}
	}
	return tgbotapi.MessageConfig{}, false
}

// Reset забывает отправленные сообщения.
func (m *MockBotApi) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = nil
	m.Requests = nil
}

// TextUpdate собирает update с текстовым сообщением.
func TextUpdate(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: chatID},
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

// CommandUpdate собирает update с командой, например "/start".
func CommandUpdate(chatID int64, command string) *tgbotapi.Update {
	update := TextUpdate(chatID, command)
	update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return update
}

// CallbackUpdate собирает update с нажатием inline-кнопки.
func CallbackUpdate(chatID int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: chatID},
			Message: &tgbotapi.Message{
				MessageID: 1,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
			Data: data,
		},
	}
}
