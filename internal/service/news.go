package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NewsS struct {
	genAI GenAII
	repo  NewsRI
	log   *zap.Logger
}

func NewNewsService(api GenAII, repo NewsRI, log *zap.Logger) *NewsS {
	return &NewsS{
		genAI: api,
		repo:  repo,
		log:   log,
	}
}

// GenerateArticles fetches a fresh batch of learner-level news and appends
// the ones whose title is new. Retries when a round brings nothing usable.
func (n *NewsS) GenerateArticles(ctx context.Context, lang string) ([]models.Article, error) {
	existing, err := n.repo.LoadArticles(ctx, lang)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	for _, a := range existing {
		known[models.NormalizeTitle(a.Title)] = true
	}

	maxAttempts := 3
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		articles, err := n.genAI.GenerateArticles(ctx, models.LanguageName(lang))
		if err != nil {
			n.log.Error("failed to generate news", zap.String("lang", lang), zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				return nil, fmt.Errorf("couldn't generate news after %d attempts: %w", maxAttempts, err)
			}
			continue
		}

		fresh := make([]models.Article, 0, len(articles))
		for _, a := range articles {
			if strings.TrimSpace(a.Title) == "" {
				continue
			}
			key := models.NormalizeTitle(a.Title)
			if known[key] {
				continue
			}
			known[key] = true

			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			if a.Date == "" {
				a.Date = time.Now().Format(time.DateOnly)
			}
			fresh = append(fresh, a)
		}

		if len(fresh) == 0 {
			n.log.Warn("news round produced nothing new", zap.String("lang", lang), zap.Int("attempt", attempt))
			continue
		}

		if _, err := n.repo.AppendArticles(ctx, lang, fresh); err != nil {
			return nil, err
		}

		return fresh, nil
	}

	return nil, fmt.Errorf("no new articles after %d attempts", maxAttempts)
}

// Articles returns one article per page, newest last, formatted for the bot.
func (n *NewsS) Articles(ctx context.Context, lang string, page int) (string, bool, error) {
	articles, err := n.repo.LoadArticles(ctx, lang)
	if err != nil {
		return "", false, err
	}
	if len(articles) == 0 {
		return "", false, fmt.Errorf("empty list")
	}
	if page < 0 || page >= len(articles) {
		return "", false, fmt.Errorf("page out of range")
	}

	return formatArticle(articles[page], page, len(articles)), page+1 < len(articles), nil
}

func formatArticle(a models.Article, page, total int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📰 (%d/%d) **%s**\n", page+1, total, escapeMarkdown(a.Title)))
	if a.Date != "" {
		sb.WriteString("🗓 ")
		sb.WriteString(a.Date)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(escapeMarkdown(a.SummaryText))

	if a.Translation != "" {
		sb.WriteString("\n\n🇬🇧 _")
		sb.WriteString(escapeMarkdown(a.Translation))
		sb.WriteString("_")
	}

	return sb.String()
}

func (n *NewsS) RemoveArticle(ctx context.Context, lang, id string) error {
	_, err := n.repo.RemoveArticle(ctx, lang, id)
	return err
}

func (n *NewsS) ResetArticles(ctx context.Context, lang string) error {
	return n.repo.ResetArticles(ctx, lang)
}
