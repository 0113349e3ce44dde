package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const wordsPerBatch = 5

type WordSI interface {
	GenerateWords(ctx context.Context, lang, category string, count int) ([]models.Word, error)
	Words(ctx context.Context, lang string, page int, filter string) (string, bool, error)
	Flashcard(ctx context.Context, lang string) (models.Word, error)
	UpdateWordStatus(ctx context.Context, lang, id, field string, value bool) error
	RemoveWord(ctx context.Context, lang, id string) error
	WordStat(ctx context.Context, lang string) (string, error)
}

type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *WordT) showCategoryMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("📖 General", "gen_"+models.CategoryGeneral),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🏃 Common verbs", "gen_"+models.CategoryCommonVerbs),
			tgbotapi.NewInlineKeyboardButtonData("🌀 Irregular verbs", "gen_"+models.CategoryIrregularVerbs),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "📚 What kind of words do you want?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *WordT) handleGenerate(query *tgbotapi.CallbackQuery, lang string) {
	category := strings.TrimPrefix(query.Data, "gen_")
	if !models.ValidCategory(category) {
		log.Printf("Unknown category: %s from user %d", category, query.From.ID)
		return
	}

	// generation goes out to the model, give it room
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitMsg := tgbotapi.NewMessage(query.Message.Chat.ID, "⏳ Generating words, one moment...")
	sendMessage(t.bot, waitMsg)

	words, err := t.service.GenerateWords(ctx, lang, category, wordsPerBatch)
	if err != nil {
		log.Printf("Failed to generate words for chat %d: %v", query.Message.Chat.ID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't generate words. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✨ %d new words added:\n\n", len(words)))
	for i, word := range words {
		sb.WriteString(fmt.Sprintf("%d. **%s** → *%s*\n", i+1, word.Target, word.NativeMeaning))
	}
	sb.WriteString("\nReview them with 🎴 Flashcards!")

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, sb.String())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *WordT) showWords(message *tgbotapi.Message, lang string, page int, filter string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.service.Words(ctx, lang, page, filter)
	if err != nil {
		log.Printf("Failed to load words for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Nothing to show here yet")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = t.wordPaginationKeyboard(filter, page, hasNext)
	sendMessage(t.bot, msg)
}

func (t *WordT) sendWordStats(message *tgbotapi.Message, lang string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := t.service.WordStat(ctx, lang)
	if err != nil {
		log.Printf("Failed to get stats for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Error")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, stats)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

// handlePagination reacts to "words_<filter>_<page>" callbacks.
func (t *WordT) handlePagination(query *tgbotapi.CallbackQuery, lang string) {
	parts := strings.Split(query.Data, "_")
	if len(parts) != 3 {
		return
	}

	filter := parts[1]
	if filter != "all" && filter != "mastered" && filter != "favorite" {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Error: bad list filter.")
		sendMessage(t.bot, msg)
		return
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil || page < 0 {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Error: bad page number.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.service.Words(ctx, lang, page, filter)
	if err != nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Nothing to show here yet")
		sendMessage(t.bot, msg)
		return
	}
	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
	)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = t.wordPaginationKeyboard(filter, page, hasNext)

	sendMessage(t.bot, editMsg)
}

func (t *WordT) wordPaginationKeyboard(filter string, page int, hasNxt bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", fmt.Sprintf("words_%s_%d", filter, page-1)))
	}

	if hasNxt {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("words_%s_%d", filter, page+1)))
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	filterRow := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if filter != "mastered" {
		filterRow = append(filterRow, tgbotapi.NewInlineKeyboardButtonData("✅ Mastered", "words_mastered_0"))
	}
	if filter != "favorite" {
		filterRow = append(filterRow, tgbotapi.NewInlineKeyboardButtonData("⭐ Favorites", "words_favorite_0"))
	}
	if filter != "all" {
		filterRow = append(filterRow, tgbotapi.NewInlineKeyboardButtonData("📚 All", "words_all_0"))
	}
	buttons = append(buttons, filterRow)

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}
