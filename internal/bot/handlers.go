package bot

import (
	"log"
	"strings"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonNewWords   = "📚 New words"
	ButtonMyWords    = "❗My words"
	ButtonFlashcards = "🎴 Flashcards"
	ButtonNews       = "📰 News"
	ButtonStats      = "📊 My progress"
	ButtonLanguage   = "🌍 Language"
	ButtonSettings   = "⚙️ Settings"
	ButtonBackup     = "💾 Backup"
	ButtonMainMenu   = "🏠 Main menu"
	ButtonBack       = "⏪ Back"
	ButtonHelp       = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "export":
		t.backup.sendExport(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I'm your vocabulary trainer!\n\n" +
		"✨ What I can do:\n" +
		"• 📚 Generate new words to learn\n" +
		"• 🎴 Run flashcard reviews\n" +
		"• 📰 Bring you learner-level news\n" +
		"• 🔊 Pronounce any word for you\n\n" +
		"Pick a language with the 🌍 button, then press a button below to begin!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonNewWords),
			tgbotapi.NewKeyboardButton(ButtonFlashcards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyWords),
			tgbotapi.NewKeyboardButton(ButtonNews),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonLanguage),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonSettings),
			tgbotapi.NewKeyboardButton(ButtonBackup),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/help — this message
/export — download a backup of all your data

🎯 Use the buttons:
• "New words" — generate words to learn
• "Flashcards" — review what you've learned
• "My words" — browse your vocabulary
• "News" — short news in your target language
• "Settings" — playback speed, voice and more
• "Backup" — export or restore your data (send me a backup file to restore)
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID
	lang := t.userLang(userID)
	text := message.Text

	switch text {
	case ButtonNewWords:
		t.word.showCategoryMenu(message)
	case ButtonMyWords:
		t.word.showWords(message, lang, 0, "all")
	case ButtonFlashcards:
		t.card.sendFlashcard(message, userID, lang)
	case ButtonNews:
		t.news.showArticle(message, lang, 0)
	case ButtonStats:
		t.word.sendWordStats(message, lang)
	case ButtonLanguage:
		t.showLanguageMenu(message)
	case ButtonSettings:
		t.settings.showSettings(message)
	case ButtonBackup:
		t.backup.showBackupMenu(message)
	case ButtonMainMenu, ButtonBack:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) showLanguageMenu(message *tgbotapi.Message) {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, lang := range models.SupportedLanguages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(models.LanguageName(lang), "lang_"+lang))
		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "🌍 Which language are you learning?")
	msg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleLanguagePick(query *tgbotapi.CallbackQuery) {
	lang := strings.TrimPrefix(query.Data, "lang_")
	if !models.SupportedLanguage(lang) {
		log.Printf("Unknown language pick: %s from user %d", lang, query.From.ID)
		return
	}

	t.cache.SetLang(query.From.ID, lang)

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "🌍 Now learning "+models.LanguageName(lang)+"!")
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	data := query.Data
	lang := t.userLang(query.From.ID)

	switch {
	case strings.HasPrefix(data, "lang_"):
		t.handleLanguagePick(query)

	case strings.HasPrefix(data, "gen_"):
		t.word.handleGenerate(query, lang)

	case strings.HasPrefix(data, "words_"):
		t.word.handlePagination(query, lang)

	case strings.HasPrefix(data, "card_"):
		t.card.handleCardCallbackQuery(query, lang)

	case strings.HasPrefix(data, "news_") || data == "new_news":
		t.news.handleNewsCallbackQuery(query, lang)

	case strings.HasPrefix(data, "set_"):
		t.settings.handleSettingsCallbackQuery(query)

	case data == "backup_export":
		t.backup.sendExport(query.Message)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
