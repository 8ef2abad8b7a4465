package postgres

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitai/workout-planner/internal/domain"
)

// newTestDB opens a throwaway SQLite database in a temp directory with
// the full schema migrated. The repositories only use portable SQL, so
// the tests exercise the same code paths as Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	user := &domain.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTestCatalog(t *testing.T, db *gorm.DB) []domain.ExerciseCatalogEntry {
	t.Helper()

	require.NoError(t, SeedCatalog(db))
	entries, err := NewPostgresCatalogRepository(db).ListAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries
}

func intPtr(n int) *int { return &n }
