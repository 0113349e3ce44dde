package bot

import (
	"context"
	"log"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SettingsSI interface {
	Settings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, patch map[string]any) (models.Settings, error)
}

type SettingsT struct {
	bot     BotSender
	service SettingsSI
}

func NewSettingsTAPI(bot BotSender, service SettingsSI) *SettingsT {
	return &SettingsT{
		bot:     bot,
		service: service,
	}
}

var playbackSpeeds = []float64{0.5, 0.75, 1.0, 1.25, 1.5}

func (t *SettingsT) showSettings(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings, err := t.service.Settings(ctx)
	if err != nil {
		log.Printf("Failed to load settings for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load settings")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, service.FormatSettings(settings))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = settingsKeyboard()
	sendMessage(t.bot, msg)
}

func (t *SettingsT) handleSettingsCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings, err := t.service.Settings(ctx)
	if err != nil {
		log.Printf("Failed to load settings for user %d: %v", query.From.ID, err)
		return
	}

	var patch map[string]any

	switch query.Data {
	case "set_speed":
		patch = map[string]any{"playbackSpeed": nextPlaybackSpeed(settings.PlaybackSpeed)}
	case "set_autoplay":
		patch = map[string]any{"autoplay": !settings.Autoplay}
	case "set_voice":
		voice := "FEMALE"
		if settings.VoiceGender == "FEMALE" {
			voice = "MALE"
		}
		patch = map[string]any{"voiceGender": voice}
	default:
		log.Printf("Unknown callback data: %s from user %d", query.Data, query.From.ID)
		return
	}

	updated, err := t.service.UpdateSettings(ctx, patch)
	if err != nil {
		log.Printf("Failed to update settings for user %d: %v", query.From.ID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't save settings")
		sendMessage(t.bot, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		service.FormatSettings(updated),
	)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = settingsKeyboard()

	sendMessage(t.bot, editMsg)
}

func nextPlaybackSpeed(current float64) float64 {
	for i, speed := range playbackSpeeds {
		if speed == current {
			return playbackSpeeds[(i+1)%len(playbackSpeeds)]
		}
	}
	return playbackSpeeds[0]
}

func settingsKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔊 Speed", "set_speed"),
			tgbotapi.NewInlineKeyboardButtonData("▶️ Autoplay", "set_autoplay"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🗣 Voice", "set_voice"),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		},
	)
	return &keyboard
}
