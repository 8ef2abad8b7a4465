package postgres

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitai/workout-planner/internal/repository"
)

func TestCatalogRepository_ListAllSortedByName(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	repo := NewPostgresCatalogRepository(db)

	entries, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
}

func TestCatalogRepository_FindIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	repo := NewPostgresCatalogRepository(db)
	ctx := context.Background()

	entry, err := repo.Find(ctx, "push up", "BODYWEIGHT")
	require.NoError(t, err)
	assert.Equal(t, "Push Up", entry.Name)
	assert.Equal(t, "Bodyweight", entry.Equipment)
	assert.NotZero(t, entry.ID)
}

func TestCatalogRepository_FindRequiresMatchingEquipment(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	repo := NewPostgresCatalogRepository(db)
	ctx := context.Background()

	// The name exists, but paired with different equipment.
	_, err := repo.Find(ctx, "Push Up", "Barbell")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Find(ctx, "Handstand Walk", "Bodyweight")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	db := newTestDB(t)
	first := seedTestCatalog(t, db)

	require.NoError(t, SeedCatalog(db))
	second, err := NewPostgresCatalogRepository(db).ListAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}
