package repository

import (
	"context"
	"testing"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle(id, title string) models.Article {
	return models.Article{
		ID:          id,
		Title:       title,
		SummaryText: "summary of " + title,
		Translation: "translation of " + title,
		Date:        "2026-08-28",
	}
}

func TestNewsR_AppendArticles_DropsDuplicateTitles(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	list, err := repo.AppendArticles(ctx, "fr", []models.Article{testArticle("n1", "Le Tour commence")})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.AppendArticles(ctx, "fr", []models.Article{
		testArticle("n2", "le tour commence"),
		testArticle("n3", "Nouvelle loi votée"),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "n3", list[1].ID)
}

func TestNewsR_RemoveAndReset(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AppendArticles(ctx, "fr", []models.Article{
		testArticle("n1", "Un"),
		testArticle("n2", "Deux"),
	})
	require.NoError(t, err)

	list, err := repo.RemoveArticle(ctx, "fr", "n1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n2", list[0].ID)

	// Unknown id is a silent no-op.
	list, err = repo.RemoveArticle(ctx, "fr", "nope")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.ResetArticles(ctx, "fr"))
	list, err = repo.LoadArticles(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewsR_LoadArticles_CorruptDocTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	db := repo.NewsR.db
	_, err := db.ExecContext(ctx, db.Rebind(
		`INSERT INTO news_docs (lang, doc) VALUES (?, ?)`), "fr", `[broken`)
	require.NoError(t, err)

	list, err := repo.LoadArticles(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, list)
}
