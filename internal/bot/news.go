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

type NewsSI interface {
	GenerateArticles(ctx context.Context, lang string) ([]models.Article, error)
	Articles(ctx context.Context, lang string, page int) (string, bool, error)
}

type NewsT struct {
	bot     BotSender
	cache   *cache.Cache
	service NewsSI
}

func NewNewsTAPI(bot BotSender, cache *cache.Cache, service NewsSI) *NewsT {
	return &NewsT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *NewsT) showArticle(message *tgbotapi.Message, lang string, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.service.Articles(ctx, lang, page)
	if err != nil {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("📥 Fetch news", "new_news"),
			},
		)

		msg := tgbotapi.NewMessage(message.Chat.ID, "📰 No news saved yet. Fetch some?")
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = t.newsPaginationKeyboard(page, hasNext)
	sendMessage(t.bot, msg)
}

func (t *NewsT) handleNewsCallbackQuery(query *tgbotapi.CallbackQuery, lang string) {
	data := query.Data

	switch {
	case data == "new_news":
		t.fetchNews(query, lang)
	case strings.HasPrefix(data, "news_"):
		t.handlePagination(query, lang)
	default:
		log.Printf("Unknown callback data: %s", query.Data)
	}
}

func (t *NewsT) fetchNews(query *tgbotapi.CallbackQuery, lang string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitMsg := tgbotapi.NewMessage(query.Message.Chat.ID, "⏳ Fetching news, one moment...")
	sendMessage(t.bot, waitMsg)

	if _, err := t.service.GenerateArticles(ctx, lang); err != nil {
		log.Printf("Failed to fetch news for chat %d: %v", query.Message.Chat.ID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't fetch news. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	t.showArticle(query.Message, lang, 0)
}

func (t *NewsT) handlePagination(query *tgbotapi.CallbackQuery, lang string) {
	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "news_"))
	if err != nil || page < 0 {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Error: bad page number.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.service.Articles(ctx, lang, page)
	if err != nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't load that article")
		sendMessage(t.bot, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
	)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = t.newsPaginationKeyboard(page, hasNext)

	sendMessage(t.bot, editMsg)
}

func (t *NewsT) newsPaginationKeyboard(page int, hasNxt bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", fmt.Sprintf("news_%d", page-1)))
	}

	if hasNxt {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("news_%d", page+1)))
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("📥 Fetch more", "new_news"),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}
