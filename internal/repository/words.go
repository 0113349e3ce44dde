package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/repair"
	"go.uber.org/zap"
)

// legacyEnglishKey is where releases before multi-language support stored
// their only vocabulary document. LoadWords("en") still falls back to it.
const legacyEnglishKey = "vocab_data"

type WordsR struct {
	db  QueryI
	log *zap.Logger
}

func NewWordsRepository(db QueryI, log *zap.Logger) *WordsR {
	return &WordsR{db: db, log: log}
}

// LoadWords returns the ordered vocabulary list for a language. Every record
// goes through repair on the way out; if anything needed fixing the healed
// list is persisted back immediately. A corrupt document is treated as empty
// rather than an error.
func (w *WordsR) LoadWords(ctx context.Context, lang string) ([]models.Word, error) {
	doc, found, err := w.loadDoc(ctx, lang)
	if err != nil {
		return nil, err
	}

	migrated := false
	if !found && lang == "en" {
		doc, found, err = w.loadDoc(ctx, legacyEnglishKey)
		if err != nil {
			return nil, err
		}
		migrated = found
	}
	if !found {
		return []models.Word{}, nil
	}

	var raws []map[string]any
	if err := json.Unmarshal([]byte(doc), &raws); err != nil {
		w.log.Warn("corrupt vocab document, treating as empty",
			zap.String("lang", lang), zap.Error(err))
		return []models.Word{}, nil
	}

	words, fixed := repair.Words(raws)
	if fixed || migrated {
		if err := w.SaveWords(ctx, lang, words); err != nil {
			w.log.Warn("failed to persist repaired vocab",
				zap.String("lang", lang), zap.Error(err))
		}
	}

	return words, nil
}

func (w *WordsR) SaveWords(ctx context.Context, lang string, words []models.Word) error {
	if words == nil {
		words = []models.Word{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to marshal vocab for %q: %w", lang, err)
	}

	query := w.db.Rebind(`INSERT INTO vocab_docs (lang, doc, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (lang) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`)
	if _, err := w.db.ExecContext(ctx, query, lang, string(data)); err != nil {
		return fmt.Errorf("failed to save vocab for %q: %w", lang, err)
	}

	return nil
}

// AppendWords adds records whose normalized target is not present yet;
// duplicates are dropped silently. Returns the full updated list.
func (w *WordsR) AppendWords(ctx context.Context, lang string, incoming []models.Word) ([]models.Word, error) {
	words, err := w.LoadWords(ctx, lang)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(words))
	for _, word := range words {
		seen[models.NormalizeTarget(word.Target)] = true
	}

	added := false
	for _, word := range incoming {
		key := models.NormalizeTarget(word.Target)
		if seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, word)
		added = true
	}

	if added {
		if err := w.SaveWords(ctx, lang, words); err != nil {
			return nil, err
		}
	}

	return words, nil
}

// UpdateWordStatus toggles one of the two study flags. Mastered and favorite
// are mutually exclusive, enforced here rather than left to callers: raising
// one lowers the other. An unknown id or field is a silent no-op.
func (w *WordsR) UpdateWordStatus(ctx context.Context, lang, id, field string, value bool) ([]models.Word, error) {
	words, err := w.LoadWords(ctx, lang)
	if err != nil {
		return nil, err
	}

	for i := range words {
		if words[i].ID != id {
			continue
		}
		switch field {
		case "mastered":
			words[i].Mastered = value
			if value {
				words[i].IsFavorite = false
			}
		case "favorite":
			words[i].IsFavorite = value
			if value {
				words[i].Mastered = false
			}
		default:
			return words, nil
		}
		if err := w.SaveWords(ctx, lang, words); err != nil {
			return nil, err
		}
		break
	}

	return words, nil
}

// EditWord replaces the editable fields of the record with the same id,
// keeping id and learnedAt. An unknown id is a silent no-op.
func (w *WordsR) EditWord(ctx context.Context, lang string, updated models.Word) ([]models.Word, error) {
	words, err := w.LoadWords(ctx, lang)
	if err != nil {
		return nil, err
	}

	for i := range words {
		if words[i].ID != updated.ID {
			continue
		}
		words[i].Target = updated.Target
		words[i].NativeMeaning = updated.NativeMeaning
		words[i].PhoneticGuide = updated.PhoneticGuide
		words[i].NativePronunciationGuide = updated.NativePronunciationGuide
		words[i].Example = updated.Example
		words[i].Category = updated.Category
		if err := w.SaveWords(ctx, lang, words); err != nil {
			return nil, err
		}
		break
	}

	return words, nil
}

// RemoveWord deletes by id and returns the removed record so callers can
// release associated resources (cached audio). nil when the id was unknown.
func (w *WordsR) RemoveWord(ctx context.Context, lang, id string) ([]models.Word, *models.Word, error) {
	words, err := w.LoadWords(ctx, lang)
	if err != nil {
		return nil, nil, err
	}

	for i := range words {
		if words[i].ID != id {
			continue
		}
		removed := words[i]
		words = append(words[:i], words[i+1:]...)
		if err := w.SaveWords(ctx, lang, words); err != nil {
			return nil, nil, err
		}
		return words, &removed, nil
	}

	return words, nil, nil
}

// ResetWords irreversibly clears the language partition.
func (w *WordsR) ResetWords(ctx context.Context, lang string) error {
	return w.SaveWords(ctx, lang, []models.Word{})
}

func (w *WordsR) WordStat(ctx context.Context, lang string) (models.WordStats, error) {
	words, err := w.LoadWords(ctx, lang)
	if err != nil {
		return models.WordStats{}, err
	}

	stats := models.WordStats{TotalCount: len(words)}
	for _, word := range words {
		if word.Mastered {
			stats.MasteredCount++
		}
		if word.IsFavorite {
			stats.FavoriteCount++
		}
	}

	return stats, nil
}

func (w *WordsR) loadDoc(ctx context.Context, lang string) (string, bool, error) {
	var doc string
	err := w.db.GetContext(ctx, &doc, w.db.Rebind(`SELECT doc FROM vocab_docs WHERE lang = ?`), lang)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load vocab for %q: %w", lang, err)
	}
	return doc, true, nil
}
