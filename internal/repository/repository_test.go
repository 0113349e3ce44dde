package repository

import (
	"testing"

	storage "github.com/anvy2024/Duolingo-sub000/internal/storage/db"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Single connection keeps every statement on the same in-memory DB.
	db.SetMaxOpenConns(1)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), zap.NewNop())
}
