package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"go.uber.org/zap"
)

type SettingsR struct {
	db  QueryI
	log *zap.Logger
}

func NewSettingsRepository(db QueryI, log *zap.Logger) *SettingsR {
	return &SettingsR{db: db, log: log}
}

// LoadSettings merges the persisted document over hard defaults, so options
// added after the document was written still come back populated.
func (s *SettingsR) LoadSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	var doc string
	err := s.db.GetContext(ctx, &doc, s.db.Rebind(`SELECT doc FROM settings WHERE id = 1`))
	if err == sql.ErrNoRows {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := json.Unmarshal([]byte(doc), &settings); err != nil {
		s.log.Warn("corrupt settings document, using defaults", zap.Error(err))
		return models.DefaultSettings(), nil
	}

	return settings, nil
}

// UpdateSettings shallow-merges the patch over the persisted document and
// writes the whole document back. Unknown keys are kept so documents written
// by a newer version survive a round trip through an older one.
func (s *SettingsR) UpdateSettings(ctx context.Context, patch map[string]any) (models.Settings, error) {
	current := map[string]any{}

	var doc string
	err := s.db.GetContext(ctx, &doc, s.db.Rebind(`SELECT doc FROM settings WHERE id = 1`))
	if err != nil && err != sql.ErrNoRows {
		return models.DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal([]byte(doc), &current); err != nil {
			s.log.Warn("corrupt settings document, starting from defaults", zap.Error(err))
			current = map[string]any{}
		}
	}

	for k, v := range patch {
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := s.db.Rebind(`INSERT INTO settings (id, doc) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET doc = excluded.doc`)
	if _, err := s.db.ExecContext(ctx, query, string(data)); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to save settings: %w", err)
	}

	merged := models.DefaultSettings()
	if err := json.Unmarshal(data, &merged); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to unmarshal merged settings: %w", err)
	}

	return merged, nil
}
