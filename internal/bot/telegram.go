package bot

import (
	"log"

	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	WordSI
	NewsSI
	AudioSI
	SettingsSI
	BackupSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type FileURLGetter interface {
	GetFileDirectURL(fileID string) (string, error)
}

type TelegramAPI struct {
	bot      *tgbotapi.BotAPI
	cache    *cache.Cache
	word     *WordT
	card     *CardT
	news     *NewsT
	settings *SettingsT
	backup   *BackupT
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:      bot,
		cache:    cache,
		word:     NewWordTAPI(bot, cache, service),
		card:     NewCardTAPI(bot, cache, service, service),
		news:     NewNewsTAPI(bot, cache, service),
		settings: NewSettingsTAPI(bot, service),
		backup:   NewBackupTAPI(bot, bot, cache, service),
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			switch {
			case update.Message.IsCommand():
				t.handleCommand(update.Message)
			case update.Message.Document != nil:
				t.handleDocument(update.Message)
			default:
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func (t *TelegramAPI) handleDocument(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	t.backup.handleImportDocument(message, t.userLang(message.From.ID))
}

// userLang is the language the user last picked, English until they pick one.
func (t *TelegramAPI) userLang(userID int64) string {
	lang, exists := t.cache.GetLang(userID)
	if !exists {
		return "en"
	}
	return lang
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
