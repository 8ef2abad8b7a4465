package postgres

import (
	"context"
	"errors"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"

	"gorm.io/gorm"
)

// postgresCatalogRepository implements repository.CatalogRepository.
// The catalog is read-only reference data; there are no write methods.
type postgresCatalogRepository struct {
	db *gorm.DB
}

// NewPostgresCatalogRepository creates a new catalog repository.
func NewPostgresCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &postgresCatalogRepository{db: db}
}

func (r *postgresCatalogRepository) ListAll(ctx context.Context) ([]domain.ExerciseCatalogEntry, error) {
	var entries []domain.ExerciseCatalogEntry
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Find looks up a (name, equipment) pair case-insensitively. LOWER()
// comparison works the same on Postgres and on the SQLite used in tests.
func (r *postgresCatalogRepository) Find(ctx context.Context, name, equipment string) (*domain.ExerciseCatalogEntry, error) {
	var entry domain.ExerciseCatalogEntry
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND LOWER(equipment) = LOWER(?)", name, equipment).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}
