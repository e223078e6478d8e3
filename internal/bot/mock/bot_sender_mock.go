package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBot records everything sent through it.
type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, c)

	chatID := int64(123)
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		chatID = msg.ChatID
	}
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}}, nil
}

// Messages returns the plain messages sent so far.
func (m *MockBot) Messages() []tgbotapi.MessageConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range m.SentMessages {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
}
