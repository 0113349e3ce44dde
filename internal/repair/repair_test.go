package repair

import (
	"encoding/json"
	"testing"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       map[string]any
		idx       int
		wantFixed bool
		check     func(*testing.T, models.Word)
	}{
		{
			name: "empty object gets full defaults",
			raw:  map[string]any{},
			idx:  3,
			check: func(t *testing.T, w models.Word) {
				assert.NotEmpty(t, w.ID)
				assert.Equal(t, PlaceholderTarget, w.Target)
				assert.Equal(t, PlaceholderMeaning, w.NativeMeaning)
				assert.Equal(t, PlaceholderTarget, w.Example.Target)
				assert.Equal(t, models.CategoryGeneral, w.Category)
				assert.NotZero(t, w.LearnedAt)
			},
			wantFixed: true,
		},
		{
			name: "legacy field names",
			raw: map[string]any{
				"id":          "w1",
				"word":        "Hund",
				"translation": "dog",
				"learnedAt":   float64(1700000000000),
			},
			check: func(t *testing.T, w models.Word) {
				assert.Equal(t, "Hund", w.Target)
				assert.Equal(t, "dog", w.NativeMeaning)
			},
			wantFixed: true,
		},
		{
			name: "missing example defaults to parent target",
			raw: map[string]any{
				"id":            "w2",
				"target":        "chat",
				"nativeMeaning": "cat",
				"learnedAt":     float64(1700000000000),
			},
			check: func(t *testing.T, w models.Word) {
				assert.Equal(t, "chat", w.Example.Target)
				assert.Equal(t, PlaceholderMeaning, w.Example.NativeMeaning)
			},
			wantFixed: true,
		},
		{
			name: "invalid category coerced to general",
			raw: map[string]any{
				"id":            "w3",
				"target":        "gehen",
				"nativeMeaning": "to go",
				"category":      "verbs-of-motion",
				"learnedAt":     float64(1700000000000),
				"example": map[string]any{
					"target":        "Ich gehe nach Hause.",
					"nativeMeaning": "I am going home.",
				},
			},
			check: func(t *testing.T, w models.Word) {
				assert.Equal(t, models.CategoryGeneral, w.Category)
			},
			wantFixed: true,
		},
		{
			name: "booleans coerced from absent",
			raw: map[string]any{
				"id":            "w4",
				"target":        "faire",
				"nativeMeaning": "to do",
				"category":      "common-verbs",
				"learnedAt":     float64(1700000000000),
				"example": map[string]any{
					"target":        "Je vais le faire.",
					"nativeMeaning": "I will do it.",
				},
			},
			check: func(t *testing.T, w models.Word) {
				assert.False(t, w.Mastered)
				assert.False(t, w.IsFavorite)
			},
			wantFixed: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, fixed := Word(tt.raw, tt.idx)
			assert.Equal(t, tt.wantFixed, fixed)
			tt.check(t, got)
		})
	}
}

func TestWord_Idempotent(t *testing.T) {
	t.Parallel()

	valid := models.Word{
		ID:            "abc",
		Target:        "chat",
		NativeMeaning: "cat",
		PhoneticGuide: "/ʃa/",
		Example: models.Example{
			Target:        "Le chat dort.",
			NativeMeaning: "The cat sleeps.",
		},
		LearnedAt:  1700000000000,
		Mastered:   true,
		IsFavorite: false,
		Category:   models.CategoryGeneral,
	}

	data, err := json.Marshal(valid)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	got, fixed := Word(raw, 0)
	assert.False(t, fixed)
	assert.Equal(t, valid, got)

	// Second pass over the already-repaired form changes nothing either.
	data, err = json.Marshal(got)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))

	again, fixed := Word(raw, 0)
	assert.False(t, fixed)
	assert.Equal(t, got, again)
}

func TestWord_LegacyKeysTriggerRewrite(t *testing.T) {
	t.Parallel()

	// Complete record, old field names only. Nothing is missing, but the
	// stale form must still report fixed so the store rewrites it.
	raw := map[string]any{
		"id":           "w9",
		"word":         "Katze",
		"translation":  "cat",
		"phonetic":     "/ˈkatsə/",
		"romanization": "katse",
		"learnedAt":    float64(1700000000000),
		"category":     "general",
		"example": map[string]any{
			"text":         "Die Katze schläft.",
			"translation":  "The cat sleeps.",
			"romanization": "dee katse shleft",
		},
	}

	got, fixed := Word(raw, 0)
	assert.True(t, fixed)
	assert.Equal(t, "Katze", got.Target)
	assert.Equal(t, "cat", got.NativeMeaning)
	assert.Equal(t, "/ˈkatsə/", got.PhoneticGuide)
	assert.Equal(t, "katse", got.NativePronunciationGuide)
	assert.Equal(t, "Die Katze schläft.", got.Example.Target)
	assert.Equal(t, "The cat sleeps.", got.Example.NativeMeaning)

	// The canonical form it produced is stable on a second pass.
	data, err := json.Marshal(got)
	require.NoError(t, err)

	var canonical map[string]any
	require.NoError(t, json.Unmarshal(data, &canonical))

	again, fixed := Word(canonical, 0)
	assert.False(t, fixed)
	assert.Equal(t, got, again)
}

func TestWords_UniqueIDsWithinBatch(t *testing.T) {
	t.Parallel()

	raws := []map[string]any{
		{"target": "eins"},
		{"target": "zwei"},
		{"target": "drei"},
	}

	words, fixed := Words(raws)
	require.True(t, fixed)
	require.Len(t, words, 3)

	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
}

func TestWords_Totality(t *testing.T) {
	t.Parallel()

	raws := []map[string]any{
		{},
		{"target": "   "},
		{"example": "not-an-object"},
		{"mastered": "yes", "learnedAt": "soon"},
	}

	words, _ := Words(raws)
	for _, w := range words {
		assert.NotEmpty(t, w.Target)
		assert.NotEmpty(t, w.NativeMeaning)
		assert.NotEmpty(t, w.Example.Target)
		assert.NotEmpty(t, w.ID)
	}
}
