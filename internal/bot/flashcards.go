package bot

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/service"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type AudioSI interface {
	Speak(ctx context.Context, text, lang string) (string, error)
}

// CardT runs flashcard review sessions. The card a user is looking at lives
// in the cache between the question and the answer.
type CardT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
	audio   AudioSI
}

func NewCardTAPI(bot BotSender, cache *cache.Cache, service WordSI, audio AudioSI) *CardT {
	return &CardT{
		bot:     bot,
		cache:   cache,
		service: service,
		audio:   audio,
	}
}

func (t *CardT) sendFlashcard(message *tgbotapi.Message, userID int64, lang string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	word, err := t.service.Flashcard(ctx, lang)
	if err != nil {
		log.Printf("Failed to get flashcard for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "🎉 Nothing left to review! Generate new words first.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetCard(userID, word)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("💡 Reveal", "card_reveal"),
			tgbotapi.NewInlineKeyboardButtonData("🔊 Listen", "card_audio"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("⏭ Next", "card_next"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, service.FormatCardFront(word))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CardT) handleCardCallbackQuery(query *tgbotapi.CallbackQuery, lang string) {
	switch query.Data {
	case "card_reveal":
		t.revealCard(query)
	case "card_audio":
		t.speakCard(query, lang)
	case "card_mastered":
		t.markCard(query, lang, "mastered")
	case "card_favorite":
		t.markCard(query, lang, "favorite")
	case "card_remove":
		t.removeCard(query, lang)
	case "card_next":
		t.sendFlashcard(query.Message, query.From.ID, lang)
	default:
		log.Printf("Unknown callback data: %s", query.Data)
	}
}

func (t *CardT) revealCard(query *tgbotapi.CallbackQuery) {
	word, exists := t.cache.GetCard(query.From.ID)
	if !exists {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Card expired, take the next one.")
		sendMessage(t.bot, msg)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✅ Mastered", "card_mastered"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Favorite", "card_favorite"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔊 Listen", "card_audio"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Remove", "card_remove"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("⏭ Next", "card_next"),
		},
	)

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		service.FormatCard(word),
	)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}

func (t *CardT) markCard(query *tgbotapi.CallbackQuery, lang, field string) {
	userID := query.From.ID

	word, exists := t.cache.GetCard(userID)
	if !exists {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Card expired, take the next one.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.UpdateWordStatus(ctx, lang, word.ID, field, true); err != nil {
		log.Printf("Failed to update word status for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't save that, try again.")
		sendMessage(t.bot, msg)
		return
	}

	statusText := "⭐ Kept in favorites."
	if field == "mastered" {
		statusText = "✅ Great! Marked as mastered."
		t.cache.DeleteCard(userID)
	}

	fullText := fmt.Sprintf("%s\n\n%s", query.Message.Text, statusText)
	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fullText,
	)
	editMsg.ParseMode = "markdown"

	var buttons [][]tgbotapi.InlineKeyboardButton
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{tgbotapi.NewInlineKeyboardButtonData("⏭ NEXT CARD", "card_next")})

	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}

	sendMessage(t.bot, editMsg)
}

func (t *CardT) removeCard(query *tgbotapi.CallbackQuery, lang string) {
	userID := query.From.ID

	word, exists := t.cache.GetCard(userID)
	if !exists {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Card expired, take the next one.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.DeleteCard(userID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.RemoveWord(ctx, lang, word.ID); err != nil {
		log.Printf("Failed to remove word for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't remove that word.")
		sendMessage(t.bot, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fmt.Sprintf("🗑 \"%s\" removed.", word.Target),
	)

	var buttons [][]tgbotapi.InlineKeyboardButton
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{tgbotapi.NewInlineKeyboardButtonData("⏭ NEXT CARD", "card_next")})

	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}

	sendMessage(t.bot, editMsg)
}

func (t *CardT) speakCard(query *tgbotapi.CallbackQuery, lang string) {
	word, exists := t.cache.GetCard(query.From.ID)
	if !exists {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Card expired, take the next one.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payload, err := t.audio.Speak(ctx, word.Target, lang)
	if err != nil {
		log.Printf("Failed to synthesize audio for user %d: %v", query.From.ID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Audio is unavailable right now.")
		sendMessage(t.bot, msg)
		return
	}

	audio, err := decodeAudioPayload(payload, word.Target)
	if err != nil {
		log.Printf("Failed to decode audio payload for user %d: %v", query.From.ID, err)
		return
	}

	sendMessage(t.bot, tgbotapi.NewAudio(query.Message.Chat.ID, audio))
}

// decodeAudioPayload turns a "data:audio/mp3;base64,..." payload into an
// uploadable file.
func decodeAudioPayload(payload, name string) (tgbotapi.FileBytes, error) {
	_, encoded, found := strings.Cut(payload, ",")
	if !found {
		return tgbotapi.FileBytes{}, fmt.Errorf("payload is not a data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return tgbotapi.FileBytes{}, fmt.Errorf("failed to decode audio payload: %w", err)
	}

	return tgbotapi.FileBytes{Name: name + ".mp3", Bytes: raw}, nil
}
