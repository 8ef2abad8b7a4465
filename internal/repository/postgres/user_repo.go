package postgres

import (
	"context"
	"errors"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"

	"gorm.io/gorm"
)

// postgresUserRepository implements repository.UserRepository using gorm.
type postgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new user repository.
func NewPostgresUserRepository(db *gorm.DB) repository.UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *domain.User) (uint, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetByUsername matches the username case-insensitively, mirroring the
// registration check so "Alice" and "alice" are the same account.
func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresUserRepository) GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveProfile inserts the profile on first write and updates it after.
func (r *postgresUserRepository) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
