package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*WordsR
	*NewsR
	*SettingsR
	*SnippetsR
}

func NewRepository(db QueryI, log *zap.Logger) Repository {
	return Repository{
		WordsR:    NewWordsRepository(db, log),
		NewsR:     NewNewsRepository(db, log),
		SettingsR: NewSettingsRepository(db, log),
		SnippetsR: NewSnippetsRepository(db),
	}
}
