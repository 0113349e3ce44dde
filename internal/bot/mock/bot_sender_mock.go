package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	SendErr      error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.SendErr != nil {
		return tgbotapi.Message{}, m.SendErr
	}
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}

// MockFileURLGetter resolves every file id to a fixed URL.
type MockFileURLGetter struct {
	URL string
	Err error
}

func (m *MockFileURLGetter) GetFileDirectURL(fileID string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
