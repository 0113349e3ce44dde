package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/repair"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	"go.uber.org/zap"
)

type BackupS struct {
	repo  RepositoryI
	cache *cache.Cache
	log   *zap.Logger
}

func NewBackupService(repo RepositoryI, cache *cache.Cache, log *zap.Logger) *BackupS {
	return &BackupS{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Export serializes every language partition plus settings and the snippet
// map into one portable document.
func (b *BackupS) Export(ctx context.Context) ([]byte, error) {
	doc := models.BackupDoc{
		Version:         models.BackupVersion,
		Type:            "global",
		Timestamp:       time.Now().UnixMilli(),
		PerLanguageData: make(map[string]models.LanguageData, len(models.SupportedLanguages)),
	}

	settings, err := b.repo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	settingsRaw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(settingsRaw, &doc.Settings); err != nil {
		return nil, err
	}

	doc.SnippetMap, err = b.repo.LoadAllSnippets(ctx)
	if err != nil {
		return nil, err
	}

	for _, lang := range models.SupportedLanguages {
		words, err := b.repo.LoadWords(ctx, lang)
		if err != nil {
			return nil, err
		}
		articles, err := b.repo.LoadArticles(ctx, lang)
		if err != nil {
			return nil, err
		}

		vocab, err := json.Marshal(words)
		if err != nil {
			return nil, err
		}
		news, err := json.Marshal(articles)
		if err != nil {
			return nil, err
		}

		doc.PerLanguageData[lang] = models.LanguageData{Vocab: vocab, News: news}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Import detects the document shape and merges it in. A global document
// routes every language through reconciliation; a legacy bare array lands in
// fallbackLang. Unrecognized shapes write nothing. On success the returned
// map is the full merged snippet set, already swapped into the cache.
func (b *BackupS) Import(ctx context.Context, data []byte, fallbackLang string) (map[string]string, error) {
	var doc models.BackupDoc
	if err := json.Unmarshal(data, &doc); err == nil && (doc.Type == "global" || len(doc.PerLanguageData) > 0) {
		return b.importGlobal(ctx, doc)
	}

	var raws []map[string]any
	if err := json.Unmarshal(data, &raws); err == nil && raws != nil {
		if err := b.MergeWords(ctx, fallbackLang, raws); err != nil {
			return nil, err
		}
		return b.refreshSnippets(ctx), nil
	}

	return nil, fmt.Errorf("unrecognized backup format")
}

func (b *BackupS) importGlobal(ctx context.Context, doc models.BackupDoc) (map[string]string, error) {
	// Languages merge independently: one bad partition must not block the
	// rest of the restore.
	for lang, data := range doc.PerLanguageData {
		if !models.SupportedLanguage(lang) {
			b.log.Warn("skipping unsupported language in backup", zap.String("lang", lang))
			continue
		}

		if len(data.Vocab) > 0 {
			var raws []map[string]any
			if err := json.Unmarshal(data.Vocab, &raws); err != nil {
				b.log.Warn("skipping unreadable vocab in backup", zap.String("lang", lang), zap.Error(err))
			} else if err := b.MergeWords(ctx, lang, raws); err != nil {
				b.log.Warn("failed to merge vocab from backup", zap.String("lang", lang), zap.Error(err))
			}
		}

		if len(data.News) > 0 {
			var articles []models.Article
			if err := json.Unmarshal(data.News, &articles); err != nil {
				b.log.Warn("skipping unreadable news in backup", zap.String("lang", lang), zap.Error(err))
			} else if err := b.MergeArticles(ctx, lang, articles); err != nil {
				b.log.Warn("failed to merge news from backup", zap.String("lang", lang), zap.Error(err))
			}
		}
	}

	if len(doc.Settings) > 0 {
		if _, err := b.repo.UpdateSettings(ctx, doc.Settings); err != nil {
			b.log.Warn("failed to merge settings from backup", zap.Error(err))
		}
	}

	if len(doc.SnippetMap) > 0 {
		if err := b.repo.PutSnippets(ctx, doc.SnippetMap); err != nil {
			b.log.Warn("failed to store snippets from backup", zap.Error(err))
		}
	}

	return b.refreshSnippets(ctx), nil
}

// MergeWords repairs the incoming batch and reconciles it into the partition.
func (b *BackupS) MergeWords(ctx context.Context, lang string, raws []map[string]any) error {
	incoming, _ := repair.Words(raws)

	existing, err := b.repo.LoadWords(ctx, lang)
	if err != nil {
		return err
	}

	return b.repo.SaveWords(ctx, lang, reconcileWords(existing, incoming))
}

func (b *BackupS) MergeArticles(ctx context.Context, lang string, incoming []models.Article) error {
	existing, err := b.repo.LoadArticles(ctx, lang)
	if err != nil {
		return err
	}

	return b.repo.SaveArticles(ctx, lang, reconcileArticles(existing, incoming))
}

func (b *BackupS) refreshSnippets(ctx context.Context) map[string]string {
	merged, err := b.repo.LoadAllSnippets(ctx)
	if err != nil {
		b.log.Warn("failed to reload snippets after import", zap.Error(err))
		return nil
	}
	b.cache.ReplaceSnippets(merged)
	return merged
}
