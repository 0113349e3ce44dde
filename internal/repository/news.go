package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"go.uber.org/zap"
)

type NewsR struct {
	db  QueryI
	log *zap.Logger
}

func NewNewsRepository(db QueryI, log *zap.Logger) *NewsR {
	return &NewsR{db: db, log: log}
}

func (n *NewsR) LoadArticles(ctx context.Context, lang string) ([]models.Article, error) {
	var doc string
	err := n.db.GetContext(ctx, &doc, n.db.Rebind(`SELECT doc FROM news_docs WHERE lang = ?`), lang)
	if err == sql.ErrNoRows {
		return []models.Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load news for %q: %w", lang, err)
	}

	var articles []models.Article
	if err := json.Unmarshal([]byte(doc), &articles); err != nil {
		n.log.Warn("corrupt news document, treating as empty",
			zap.String("lang", lang), zap.Error(err))
		return []models.Article{}, nil
	}

	return articles, nil
}

func (n *NewsR) SaveArticles(ctx context.Context, lang string, articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to marshal news for %q: %w", lang, err)
	}

	query := n.db.Rebind(`INSERT INTO news_docs (lang, doc, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (lang) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`)
	if _, err := n.db.ExecContext(ctx, query, lang, string(data)); err != nil {
		return fmt.Errorf("failed to save news for %q: %w", lang, err)
	}

	return nil
}

// AppendArticles adds articles whose title is new; an article sharing a
// title with a stored one is dropped. Returns the full updated list.
func (n *NewsR) AppendArticles(ctx context.Context, lang string, incoming []models.Article) ([]models.Article, error) {
	articles, err := n.LoadArticles(ctx, lang)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		seen[models.NormalizeTitle(a.Title)] = true
	}

	added := false
	for _, a := range incoming {
		key := models.NormalizeTitle(a.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		articles = append(articles, a)
		added = true
	}

	if added {
		if err := n.SaveArticles(ctx, lang, articles); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

// RemoveArticle deletes by id; unknown ids are a silent no-op.
func (n *NewsR) RemoveArticle(ctx context.Context, lang, id string) ([]models.Article, error) {
	articles, err := n.LoadArticles(ctx, lang)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].ID != id {
			continue
		}
		articles = append(articles[:i], articles[i+1:]...)
		if err := n.SaveArticles(ctx, lang, articles); err != nil {
			return nil, err
		}
		break
	}

	return articles, nil
}

func (n *NewsR) ResetArticles(ctx context.Context, lang string) error {
	return n.SaveArticles(ctx, lang, []models.Article{})
}
