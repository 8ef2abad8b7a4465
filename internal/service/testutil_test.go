package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"
	"fitai/workout-planner/internal/repository/postgres"
)

// testRepos wires real repositories over a throwaway SQLite database so
// the services are tested against actual transactional storage.
type testRepos struct {
	db      *gorm.DB
	users   repository.UserRepository
	plans   repository.PlanRepository
	catalog repository.CatalogRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	require.NoError(t, postgres.SeedCatalog(db))

	return &testRepos{
		db:      db,
		users:   postgres.NewPostgresUserRepository(db),
		plans:   postgres.NewPostgresPlanRepository(db),
		catalog: postgres.NewPostgresCatalogRepository(db),
	}
}

// newUserWithProfile registers a user row directly and attaches a
// complete fitness profile.
func (r *testRepos) newUserWithProfile(t *testing.T, username string) *domain.User {
	t.Helper()

	user := &domain.User{Username: username, PasswordHash: "x"}
	require.NoError(t, r.db.Create(user).Error)
	require.NoError(t, r.users.SaveProfile(context.Background(), &domain.UserProfile{
		UserID:          user.ID,
		Age:             30,
		HeightCm:        180,
		WeightKg:        80,
		ExperienceLevel: "Beginner",
		FitnessGoal:     "Muscle gain",
		Equipment:       []string{"Barbell"},
	}))
	return user
}
