package repository

import (
	"context"

	"fitai/workout-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from everything else.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user and
// profile data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (uint, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error) // case-insensitive
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile *domain.UserProfile) error
}

// CatalogRepository provides read access to the exercise catalog. The
// catalog is reference data: seeded once, never mutated at runtime.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]domain.ExerciseCatalogEntry, error)
	// Find matches name and equipment case-insensitively and returns
	// ErrNotFound when no such pair exists.
	Find(ctx context.Context, name, equipment string) (*domain.ExerciseCatalogEntry, error)
}

// PlanRepository defines the interface for persisting and reading
// workout plans with their nested days and exercises.
type PlanRepository interface {
	// Create atomically archives the user's currently active plans and
	// inserts the given plan (with days and exercises, in input order)
	// as the new active one. Any failure rolls the whole thing back,
	// including the archival. Returns the new plan's ID.
	Create(ctx context.Context, userID uint, plan *domain.WorkoutPlan) (uint, error)
	// GetByID returns the nested plan (days ordered by day number,
	// exercises with their catalog entries preloaded).
	GetByID(ctx context.Context, planID uint) (*domain.WorkoutPlan, error)
	// GetLatestByUser returns the user's most recently created plan.
	GetLatestByUser(ctx context.Context, userID uint) (*domain.WorkoutPlan, error)
	// ListByUser returns the user's plans, optionally filtered by status.
	ListByUser(ctx context.Context, userID uint, status *domain.PlanStatus) ([]domain.WorkoutPlan, error)
	// Delete removes a plan and, via the ownership chain, its days and
	// exercises. Catalog entries are never touched.
	Delete(ctx context.Context, planID uint) error
}
