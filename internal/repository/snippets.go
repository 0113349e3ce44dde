package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

// SnippetsR stores synthesized audio keyed by the exact trimmed source text.
// Two records with identical text share one snippet on purpose: identical
// text sounds identical.
type SnippetsR struct {
	db QueryI
}

func NewSnippetsRepository(db QueryI) *SnippetsR {
	return &SnippetsR{db: db}
}

func (s *SnippetsR) PutSnippet(ctx context.Context, key, payload string) error {
	key = strings.TrimSpace(key)
	if key == "" || payload == "" {
		return nil
	}

	query := s.db.Rebind(`INSERT INTO audio_snippets (text_key, payload) VALUES (?, ?)
		ON CONFLICT (text_key) DO UPDATE SET payload = excluded.payload`)
	if _, err := s.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to put snippet: %w", err)
	}

	return nil
}

func (s *SnippetsR) PutSnippets(ctx context.Context, entries map[string]string) error {
	for key, payload := range entries {
		if err := s.PutSnippet(ctx, key, payload); err != nil {
			return err
		}
	}
	return nil
}

func (s *SnippetsR) DeleteSnippet(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM audio_snippets WHERE text_key = ?`), key); err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	return nil
}

// LoadAllSnippets hydrates the in-memory cache at startup and after import.
func (s *SnippetsR) LoadAllSnippets(ctx context.Context) (map[string]string, error) {
	var rows []models.SnippetRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT text_key, payload FROM audio_snippets`); err != nil {
		return nil, fmt.Errorf("failed to load snippets: %w", err)
	}

	snippets := make(map[string]string, len(rows))
	for _, row := range rows {
		snippets[row.TextKey] = row.Payload
	}

	return snippets, nil
}
