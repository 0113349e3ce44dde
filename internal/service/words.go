package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/repair"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const wordsPerPage = 10

type AudioForgetI interface {
	Forget(ctx context.Context, texts ...string)
}

type WordS struct {
	genAI GenAII
	repo  WordRI
	audio AudioForgetI
	log   *zap.Logger
}

func NewWordService(api GenAII, repo WordRI, audio AudioForgetI, log *zap.Logger) *WordS {
	return &WordS{
		genAI: api,
		repo:  repo,
		audio: audio,
		log:   log,
	}
}

// GenerateWords asks the model for count new entries and appends the ones the
// partition does not hold yet. The model sometimes repeats known words despite
// the exclusion hint, so empty rounds are retried.
func (w *WordS) GenerateWords(ctx context.Context, lang, category string, count int) ([]models.Word, error) {
	existing, err := w.repo.LoadWords(ctx, lang)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	exclude := make([]string, 0, len(existing))
	for _, word := range existing {
		known[models.NormalizeTarget(word.Target)] = true
		exclude = append(exclude, word.Target)
	}

	maxAttempts := 3
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raws, err := w.genAI.GenerateWords(ctx, models.LanguageName(lang), category, count, exclude)
		if err != nil {
			w.log.Error("failed to generate words", zap.String("lang", lang), zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				return nil, fmt.Errorf("couldn't generate words after %d attempts: %w", maxAttempts, err)
			}
			continue
		}

		for i := range raws {
			if _, ok := raws[i]["id"].(string); !ok {
				raws[i]["id"] = uuid.NewString()
			}
			if _, ok := raws[i]["category"].(string); !ok {
				raws[i]["category"] = category
			}
		}

		words, _ := repair.Words(raws)

		fresh := make([]models.Word, 0, len(words))
		for _, word := range words {
			key := models.NormalizeTarget(word.Target)
			if known[key] || word.Target == repair.PlaceholderTarget {
				continue
			}
			known[key] = true
			fresh = append(fresh, word)
		}

		if len(fresh) == 0 {
			w.log.Warn("generation round produced no new words", zap.String("lang", lang), zap.Int("attempt", attempt))
			continue
		}

		if _, err := w.repo.AppendWords(ctx, lang, fresh); err != nil {
			return nil, err
		}

		return fresh, nil
	}

	return nil, fmt.Errorf("no new words after %d attempts", maxAttempts)
}

// Words returns one formatted page of the vocabulary list. filter is one of
// "all", "mastered", "favorite".
func (w *WordS) Words(ctx context.Context, lang string, page int, filter string) (string, bool, error) {
	words, err := w.repo.LoadWords(ctx, lang)
	if err != nil {
		return "", false, err
	}

	filtered := make([]models.Word, 0, len(words))
	for _, word := range words {
		switch filter {
		case "mastered":
			if !word.Mastered {
				continue
			}
		case "favorite":
			if !word.IsFavorite {
				continue
			}
		}
		filtered = append(filtered, word)
	}

	total := len(filtered)
	if total == 0 {
		return "", false, fmt.Errorf("empty list")
	}

	start := page * wordsPerPage
	if start >= total {
		return "", false, fmt.Errorf("page out of range")
	}
	end := start + wordsPerPage
	if end > total {
		end = total
	}

	return formatWords(filtered[start:end], total, page, lang), end < total, nil
}

func formatWords(words []models.Word, total, page int, lang string) string {
	var sb strings.Builder

	totalPages := total / wordsPerPage
	if total%wordsPerPage != 0 {
		totalPages += 1
	}

	sb.WriteString(fmt.Sprintf("📚 %s — page (%d/%d) | %d words:\n\n", models.LanguageName(lang), page+1, totalPages, total))

	for i, word := range words {
		num := (page * wordsPerPage) + i + 1
		sb.WriteString(fmt.Sprintf("%d. **%s** → *%s*", num, escapeMarkdown(word.Target), escapeMarkdown(word.NativeMeaning)))

		if word.Mastered {
			sb.WriteString(" ✅")
		}
		if word.IsFavorite {
			sb.WriteString(" ⭐")
		}

		sb.WriteString("\n   📖 added: ")
		sb.WriteString(time.UnixMilli(word.LearnedAt).Format(time.DateOnly))

		if i < len(words)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Flashcard picks a random not-yet-mastered word for review.
func (w *WordS) Flashcard(ctx context.Context, lang string) (models.Word, error) {
	words, err := w.repo.LoadWords(ctx, lang)
	if err != nil {
		return models.Word{}, err
	}

	candidates := make([]models.Word, 0, len(words))
	for _, word := range words {
		if !word.Mastered {
			candidates = append(candidates, word)
		}
	}

	if len(candidates) == 0 {
		return models.Word{}, fmt.Errorf("no words left to review")
	}

	return candidates[rand.Intn(len(candidates))], nil
}

// FormatCardFront renders the question side of a flashcard.
func FormatCardFront(word models.Word) string {
	var sb strings.Builder

	sb.WriteString("🎴 *Word*: **")
	sb.WriteString(escapeMarkdown(word.Target))
	sb.WriteString("**\n")

	if word.PhoneticGuide != "" {
		sb.WriteString("🔤 `")
		sb.WriteString(escapeMarkdown(word.PhoneticGuide))
		sb.WriteString("`\n")
	}

	sb.WriteString("\nDo you remember what it means?")

	return sb.String()
}

// FormatCard renders the full card: meaning, pronunciation aids and example.
func FormatCard(word models.Word) string {
	var sb strings.Builder

	sb.WriteString("🎴 *Word*: **")
	sb.WriteString(escapeMarkdown(word.Target))
	sb.WriteString("**\n\n")

	sb.WriteString("💡 *Meaning*: ")
	sb.WriteString(escapeMarkdown(word.NativeMeaning))
	sb.WriteString("\n")

	if word.PhoneticGuide != "" {
		sb.WriteString("🔤 *Pronunciation*: `")
		sb.WriteString(escapeMarkdown(word.PhoneticGuide))
		sb.WriteString("`\n")
	}
	if word.NativePronunciationGuide != "" {
		sb.WriteString("🗣 *Say it like*: _")
		sb.WriteString(escapeMarkdown(word.NativePronunciationGuide))
		sb.WriteString("_\n")
	}

	if word.Example.Target != "" && word.Example.Target != word.Target {
		sb.WriteString("\n💬 _")
		sb.WriteString(escapeMarkdown(word.Example.Target))
		sb.WriteString("_\n")
		if word.Example.NativeMeaning != "" && word.Example.NativeMeaning != repair.PlaceholderMeaning {
			sb.WriteString("➡️ ")
			sb.WriteString(escapeMarkdown(word.Example.NativeMeaning))
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

func (w *WordS) UpdateWordStatus(ctx context.Context, lang, id, field string, value bool) error {
	_, err := w.repo.UpdateWordStatus(ctx, lang, id, field, value)
	return err
}

func (w *WordS) EditWord(ctx context.Context, lang string, updated models.Word) error {
	_, err := w.repo.EditWord(ctx, lang, updated)
	return err
}

// RemoveWord deletes the record and releases its cached audio.
func (w *WordS) RemoveWord(ctx context.Context, lang, id string) error {
	_, removed, err := w.repo.RemoveWord(ctx, lang, id)
	if err != nil {
		return err
	}

	if removed != nil {
		w.audio.Forget(ctx, removed.Target, removed.Example.Target)
	}

	return nil
}

func (w *WordS) ResetWords(ctx context.Context, lang string) error {
	return w.repo.ResetWords(ctx, lang)
}

func (w *WordS) WordStat(ctx context.Context, lang string) (string, error) {
	stats, err := w.repo.WordStat(ctx, lang)
	if err != nil {
		return "", err
	}

	return formatWordStats(stats, lang), nil
}

func formatWordStats(stats models.WordStats, lang string) string {
	var sb strings.Builder

	sb.WriteString("📚 *")
	sb.WriteString(models.LanguageName(lang))
	sb.WriteString(" words*: **")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("**\n\n")

	sb.WriteString("✅ *Mastered*: **")
	sb.WriteString(strconv.Itoa(stats.MasteredCount))
	sb.WriteString("**\n\n")

	sb.WriteString("⭐ *Favorites*: **")
	sb.WriteString(strconv.Itoa(stats.FavoriteCount))
	sb.WriteString("**")

	return sb.String()
}

func escapeMarkdown(text string) string {
	for _, c := range []string{"_", "*", "#", "!"} {
		text = strings.ReplaceAll(text, c, "\\"+c)
	}
	return text
}
