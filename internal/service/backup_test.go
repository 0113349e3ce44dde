package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/repository"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	storage "github.com/anvy2024/Duolingo-sub000/internal/storage/db"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBackupService(t *testing.T) (*BackupS, repository.Repository, *cache.Cache) {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepository(db, zap.NewNop())
	c := cache.NewCache()

	return NewBackupService(repo, c, zap.NewNop()), repo, c
}

func TestBackupS_ExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src, srcRepo, _ := newBackupService(t)

	frWords := []models.Word{word("1", "chat"), word("2", "chien")}
	_, err := srcRepo.AppendWords(ctx, "fr", frWords)
	require.NoError(t, err)

	_, err = srcRepo.AppendArticles(ctx, "fr", []models.Article{
		{ID: "n1", Title: "Il pleut", SummaryText: "La pluie tombe.", Date: "2026-08-01"},
	})
	require.NoError(t, err)

	_, err = srcRepo.UpdateSettings(ctx, map[string]any{"playbackSpeed": 0.75})
	require.NoError(t, err)

	require.NoError(t, srcRepo.PutSnippet(ctx, "chat", "data:audio/mp3;base64,AAA"))

	data, err := src.Export(ctx)
	require.NoError(t, err)

	dst, dstRepo, dstCache := newBackupService(t)

	snippets, err := dst.Import(ctx, data, "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"chat": "data:audio/mp3;base64,AAA"}, snippets)

	words, err := dstRepo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "chat", words[0].Target)

	articles, err := dstRepo.LoadArticles(ctx, "fr")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Il pleut", articles[0].Title)

	settings, err := dstRepo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.75, settings.PlaybackSpeed)

	payload, ok := dstCache.GetSnippet("chat")
	assert.True(t, ok)
	assert.Equal(t, "data:audio/mp3;base64,AAA", payload)
}

func TestBackupS_Import_MergePreservesExistingID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo, _ := newBackupService(t)

	_, err := repo.AppendWords(ctx, "fr", []models.Word{word("local-id", "chat")})
	require.NoError(t, err)

	doc := models.BackupDoc{
		Version:   models.BackupVersion,
		Type:      "global",
		Timestamp: 1700000000000,
		PerLanguageData: map[string]models.LanguageData{
			"fr": {
				Vocab: json.RawMessage(`[{"id":"remote-id","target":"Chat","nativeMeaning":"updated cat"}]`),
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = svc.Import(ctx, data, "fr")
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "local-id", words[0].ID)
	assert.Equal(t, "updated cat", words[0].NativeMeaning)
}

func TestBackupS_Import_LegacyBareArray(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo, _ := newBackupService(t)

	data := []byte(`[{"word":"hello","translation":"bonjour"}]`)

	_, err := svc.Import(ctx, data, "en")
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "en")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "hello", words[0].Target)
	assert.Equal(t, "bonjour", words[0].NativeMeaning)
}

func TestBackupS_Import_SkipsUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo, _ := newBackupService(t)

	doc := models.BackupDoc{
		Type: "global",
		PerLanguageData: map[string]models.LanguageData{
			"xx": {Vocab: json.RawMessage(`[{"target":"???"}]`)},
			"fr": {Vocab: json.RawMessage(`[{"id":"1","target":"chat","nativeMeaning":"cat"}]`)},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = svc.Import(ctx, data, "fr")
	require.NoError(t, err)

	words, err := repo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	assert.Len(t, words, 1)
}

func TestBackupS_Import_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src, srcRepo, _ := newBackupService(t)

	_, err := srcRepo.AppendWords(ctx, "fr", []models.Word{word("1", "chat"), word("2", "chien")})
	require.NoError(t, err)

	data, err := src.Export(ctx)
	require.NoError(t, err)

	dst, dstRepo, _ := newBackupService(t)

	_, err = dst.Import(ctx, data, "en")
	require.NoError(t, err)
	_, err = dst.Import(ctx, data, "en")
	require.NoError(t, err)

	words, err := dstRepo.LoadWords(ctx, "fr")
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestBackupS_Import_UnrecognizedFormat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo, _ := newBackupService(t)

	for _, data := range [][]byte{
		[]byte(`not json at all`),
		[]byte(`{"some":"object"}`),
		[]byte(`42`),
	} {
		_, err := svc.Import(ctx, data, "en")
		assert.Error(t, err)
	}

	words, err := repo.LoadWords(ctx, "en")
	require.NoError(t, err)
	assert.Empty(t, words)
}
