package service

import (
	"context"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	"go.uber.org/zap"
)

type GenAII interface {
	GenerateWords(ctx context.Context, langName, category string, count int, exclude []string) ([]map[string]any, error)
	GenerateArticles(ctx context.Context, langName string) ([]models.Article, error)
}

type TTSI interface {
	Synthesize(ctx context.Context, text, lang string, rate float64) (string, error)
}

type APII interface {
	GenAII
	TTSI
}

type WordRI interface {
	LoadWords(ctx context.Context, lang string) ([]models.Word, error)
	SaveWords(ctx context.Context, lang string, words []models.Word) error
	AppendWords(ctx context.Context, lang string, incoming []models.Word) ([]models.Word, error)
	UpdateWordStatus(ctx context.Context, lang, id, field string, value bool) ([]models.Word, error)
	EditWord(ctx context.Context, lang string, updated models.Word) ([]models.Word, error)
	RemoveWord(ctx context.Context, lang, id string) ([]models.Word, *models.Word, error)
	ResetWords(ctx context.Context, lang string) error
	WordStat(ctx context.Context, lang string) (models.WordStats, error)
}

type NewsRI interface {
	LoadArticles(ctx context.Context, lang string) ([]models.Article, error)
	SaveArticles(ctx context.Context, lang string, articles []models.Article) error
	AppendArticles(ctx context.Context, lang string, incoming []models.Article) ([]models.Article, error)
	RemoveArticle(ctx context.Context, lang, id string) ([]models.Article, error)
	ResetArticles(ctx context.Context, lang string) error
}

type SettingsRI interface {
	LoadSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, patch map[string]any) (models.Settings, error)
}

type SnippetRI interface {
	PutSnippet(ctx context.Context, key, payload string) error
	PutSnippets(ctx context.Context, entries map[string]string) error
	DeleteSnippet(ctx context.Context, key string) error
	LoadAllSnippets(ctx context.Context) (map[string]string, error)
}

type RepositoryI interface {
	WordRI
	NewsRI
	SettingsRI
	SnippetRI
}

type Service struct {
	*WordS
	*NewsS
	*AudioS
	*SettingsS
	*BackupS
}

func InitServices(api APII, repo RepositoryI, cache *cache.Cache, log *zap.Logger) *Service {
	audio := NewAudioService(api, repo, repo, cache, log)

	return &Service{
		WordS:     NewWordService(api, repo, audio, log),
		NewsS:     NewNewsService(api, repo, log),
		AudioS:    audio,
		SettingsS: NewSettingsService(repo, log),
		BackupS:   NewBackupService(repo, cache, log),
	}
}
