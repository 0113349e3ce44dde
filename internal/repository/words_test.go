package repository

import (
	"context"
	"testing"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/repair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWord(id, target, meaning string) models.Word {
	return models.Word{
		ID:            id,
		Target:        target,
		NativeMeaning: meaning,
		Example: models.Example{
			Target:        target,
			NativeMeaning: meaning,
		},
		LearnedAt: 1700000000000,
		Category:  models.CategoryGeneral,
	}
}

func TestWordsR_LoadWords_Empty(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	words, err := repo.LoadWords(context.Background(), "fr")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordsR_AppendWords_RejectsCaseInsensitiveDuplicates(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	list, err := repo.AppendWords(ctx, "fr", []models.Word{testWord("a", "Chat", "cat")})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.AppendWords(ctx, "fr", []models.Word{
		testWord("b", "chat", "cat"),
		testWord("c", "  CHAT  ", "cat"),
		testWord("d", "chien", "dog"),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Chat", list[0].Target)
	assert.Equal(t, "chien", list[1].Target)

	// Reload sees the same two records.
	words, err := repo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestWordsR_LoadWords_SelfHealsMalformedRecords(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	// Plant a document with legacy field names and gaps, bypassing SaveWords.
	raw := `[{"word":"Hund","translation":"dog"},{"target":"Katze"}]`
	db := repo.WordsR.db
	_, err := db.ExecContext(ctx, db.Rebind(
		`INSERT INTO vocab_docs (lang, doc) VALUES (?, ?)`), "de", raw)
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "de")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "Hund", words[0].Target)
	assert.Equal(t, "dog", words[0].NativeMeaning)
	assert.Equal(t, "Katze", words[1].Target)
	assert.Equal(t, repair.PlaceholderMeaning, words[1].NativeMeaning)
	assert.NotEmpty(t, words[0].ID)
	assert.NotEmpty(t, words[1].ID)

	// The healed form was written back: the raw document is canonical now.
	var doc string
	require.NoError(t, db.GetContext(ctx, &doc, db.Rebind(
		`SELECT doc FROM vocab_docs WHERE lang = ?`), "de"))
	assert.Contains(t, doc, `"nativeMeaning":"dog"`)
	assert.NotContains(t, doc, `"word"`)
}

func TestWordsR_LoadWords_LegacyEnglishFallback(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	db := repo.WordsR.db
	_, err := db.ExecContext(ctx, db.Rebind(
		`INSERT INTO vocab_docs (lang, doc) VALUES (?, ?)`),
		legacyEnglishKey, `[{"id":"old","target":"hello","nativeMeaning":"xin chào","learnedAt":1700000000000,"category":"general","example":{"target":"hello","nativeMeaning":"xin chào"}}]`)
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "en")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "hello", words[0].Target)

	// Fallback migrates the document under the real language key.
	var doc string
	require.NoError(t, db.GetContext(ctx, &doc, db.Rebind(
		`SELECT doc FROM vocab_docs WHERE lang = ?`), "en"))
	assert.Contains(t, doc, `"hello"`)
}

func TestWordsR_LoadWords_CorruptDocTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	db := repo.WordsR.db
	_, err := db.ExecContext(ctx, db.Rebind(
		`INSERT INTO vocab_docs (lang, doc) VALUES (?, ?)`), "ja", `{not json`)
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "ja")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordsR_UpdateWordStatus(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AppendWords(ctx, "fr", []models.Word{testWord("a", "chat", "cat")})
	require.NoError(t, err)

	words, err := repo.UpdateWordStatus(ctx, "fr", "a", "favorite", true)
	require.NoError(t, err)
	assert.True(t, words[0].IsFavorite)
	assert.False(t, words[0].Mastered)

	// Raising mastered lowers favorite: the flags are mutually exclusive.
	words, err = repo.UpdateWordStatus(ctx, "fr", "a", "mastered", true)
	require.NoError(t, err)
	assert.True(t, words[0].Mastered)
	assert.False(t, words[0].IsFavorite)

	// Unknown id is a silent no-op.
	words, err = repo.UpdateWordStatus(ctx, "fr", "nope", "mastered", true)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.True(t, words[0].Mastered)
}

func TestWordsR_EditAndRemove(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AppendWords(ctx, "fr", []models.Word{
		testWord("a", "chat", "cat"),
		testWord("b", "chien", "dog"),
	})
	require.NoError(t, err)

	edited := testWord("a", "le chat", "the cat")
	edited.Category = models.CategoryCommonVerbs
	words, err := repo.EditWord(ctx, "fr", edited)
	require.NoError(t, err)
	assert.Equal(t, "le chat", words[0].Target)
	assert.Equal(t, models.CategoryCommonVerbs, words[0].Category)
	assert.Equal(t, int64(1700000000000), words[0].LearnedAt)

	words, removed, err := repo.RemoveWord(ctx, "fr", "b")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "chien", removed.Target)
	require.Len(t, words, 1)

	words, removed, err = repo.RemoveWord(ctx, "fr", "nope")
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Len(t, words, 1)
}

func TestWordsR_ResetWords(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AppendWords(ctx, "fr", []models.Word{testWord("a", "chat", "cat")})
	require.NoError(t, err)

	require.NoError(t, repo.ResetWords(ctx, "fr"))

	words, err := repo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordsR_WordStat(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	a := testWord("a", "chat", "cat")
	a.Mastered = true
	b := testWord("b", "chien", "dog")
	b.IsFavorite = true
	c := testWord("c", "poisson", "fish")

	_, err := repo.AppendWords(ctx, "fr", []models.Word{a, b, c})
	require.NoError(t, err)

	stats, err := repo.WordStat(ctx, "fr")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 1, stats.MasteredCount)
	assert.Equal(t, 1, stats.FavoriteCount)
}
