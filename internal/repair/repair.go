// Package repair normalizes partially-formed vocabulary records into the
// canonical Word shape. It never fails: missing or malformed fields are
// replaced with defaults so a record can always be displayed and compared.
package repair

import (
	"fmt"
	"strings"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

const (
	PlaceholderTarget  = "(unknown)"
	PlaceholderMeaning = "(no meaning yet)"
)

// Field-name fallback chains, oldest formats last.
var (
	targetKeys  = []string{"target", "word", "text"}
	meaningKeys = []string{"nativeMeaning", "meaning", "translation"}
)

// Word rebuilds one record from an arbitrary decoded JSON object. idx is only
// used to manufacture an identifier when the record has none; ids synthesized
// within one repair pass are unique because they embed the index. The second
// return reports whether anything had to be fixed, so callers can persist the
// healed form.
func Word(raw map[string]any, idx int) (models.Word, bool) {
	target, targetLegacy := fallbackField(raw, targetKeys...)
	meaning, meaningLegacy := fallbackField(raw, meaningKeys...)
	phonetic, phoneticLegacy := fallbackField(raw, "phoneticGuide", "phonetic")
	romanized, romanizedLegacy := fallbackField(raw, "nativePronunciationGuide", "romanization")

	// a legacy key hit means the stored form is stale and worth rewriting
	fixed := targetLegacy || meaningLegacy || phoneticLegacy || romanizedLegacy

	w := models.Word{
		ID:                       stringField(raw, "id"),
		Target:                   strings.TrimSpace(target),
		NativeMeaning:            strings.TrimSpace(meaning),
		PhoneticGuide:            phonetic,
		NativePronunciationGuide: romanized,
		LearnedAt:                intField(raw, "learnedAt"),
		Mastered:                 boolField(raw, "mastered"),
		IsFavorite:               boolField(raw, "isFavorite"),
		Category:                 stringField(raw, "category"),
	}

	if w.ID == "" {
		w.ID = fmt.Sprintf("%d-%d", time.Now().UnixMilli(), idx)
		fixed = true
	}
	if w.Target == "" {
		w.Target = PlaceholderTarget
		fixed = true
	}
	if w.NativeMeaning == "" {
		w.NativeMeaning = PlaceholderMeaning
		fixed = true
	}
	if w.LearnedAt == 0 {
		w.LearnedAt = time.Now().UnixMilli()
		fixed = true
	}
	if !models.ValidCategory(w.Category) {
		w.Category = models.CategoryGeneral
		fixed = true
	}

	example, exFixed := repairExample(raw["example"], w.Target)
	w.Example = example

	return w, fixed || exFixed
}

// Words repairs a whole decoded list, keeping order. The flag is true when at
// least one record needed fixing.
func Words(raws []map[string]any) ([]models.Word, bool) {
	words := make([]models.Word, 0, len(raws))
	fixed := false
	for i, raw := range raws {
		w, f := Word(raw, i)
		words = append(words, w)
		fixed = fixed || f
	}
	return words, fixed
}

func repairExample(v any, parentTarget string) (models.Example, bool) {
	raw, _ := v.(map[string]any)

	target, targetLegacy := fallbackField(raw, targetKeys...)
	meaning, meaningLegacy := fallbackField(raw, meaningKeys...)
	romanized, romanizedLegacy := fallbackField(raw, "nativePronunciationGuide", "romanization")

	fixed := raw == nil || targetLegacy || meaningLegacy || romanizedLegacy

	ex := models.Example{
		Target:                   strings.TrimSpace(target),
		NativeMeaning:            strings.TrimSpace(meaning),
		NativePronunciationGuide: romanized,
	}

	if ex.Target == "" {
		ex.Target = parentTarget
		fixed = true
	}
	if ex.NativeMeaning == "" {
		ex.NativeMeaning = PlaceholderMeaning
		fixed = true
	}

	return ex, fixed
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// fallbackField walks a fallback chain and also reports whether the value
// came from a non-canonical key, which counts as a fix.
func fallbackField(raw map[string]any, keys ...string) (string, bool) {
	for i, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s, i > 0
		}
	}
	return "", false
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func intField(raw map[string]any, key string) int64 {
	switch n := raw[key].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
