package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxBackupSize caps uploaded backup documents at 20 MB, the Telegram bot
// API download limit.
const maxBackupSize = 20 << 20

type BackupSI interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte, fallbackLang string) (map[string]string, error)
}

type BackupT struct {
	bot     BotSender
	files   FileURLGetter
	cache   *cache.Cache
	service BackupSI
}

func NewBackupTAPI(bot BotSender, files FileURLGetter, cache *cache.Cache, service BackupSI) *BackupT {
	return &BackupT{
		bot:     bot,
		files:   files,
		cache:   cache,
		service: service,
	}
}

func (t *BackupT) showBackupMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("📤 Export my data", "backup_export"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"💾 *Backup*\n\nExport downloads everything: words, news, settings and audio.\n"+
			"To restore, just send me a backup file as a document.")
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *BackupT) sendExport(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := t.service.Export(ctx)
	if err != nil {
		log.Printf("Failed to export backup for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Export failed. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	file := tgbotapi.FileBytes{
		Name:  fmt.Sprintf("vocab-backup-%s.json", time.Now().Format(time.DateOnly)),
		Bytes: data,
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, file)
	doc.Caption = "📤 Here's your backup. Send it back to me any time to restore."

	sendMessage(t.bot, doc)
}

// handleImportDocument restores a backup file the user uploaded. Words that
// look like older single-language exports land in the user's current
// language.
func (t *BackupT) handleImportDocument(message *tgbotapi.Message, lang string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	data, err := t.downloadDocument(ctx, message.Document)
	if err != nil {
		log.Printf("Failed to download backup for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't read that file.")
		sendMessage(t.bot, msg)
		return
	}

	if _, err := t.service.Import(ctx, data, lang); err != nil {
		log.Printf("Failed to import backup for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ That doesn't look like one of my backup files.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "✅ Backup restored! Your words were merged, nothing was lost.")
	sendMessage(t.bot, msg)
}

func (t *BackupT) downloadDocument(ctx context.Context, document *tgbotapi.Document) ([]byte, error) {
	url, err := t.files.GetFileDirectURL(document.FileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBackupSize))
}
