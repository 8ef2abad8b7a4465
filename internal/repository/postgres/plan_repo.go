package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"

	"gorm.io/gorm"
)

// postgresPlanRepository implements repository.PlanRepository using gorm.
type postgresPlanRepository struct {
	db *gorm.DB
}

// NewPostgresPlanRepository creates a new plan repository.
func NewPostgresPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &postgresPlanRepository{db: db}
}

// Create runs the whole archive-then-insert sequence in one
// transaction:
//
//  1. mark every active plan of the user as archived
//  2. insert the new plan row (status active, created_at now)
//  3. insert the days in input order
//  4. insert each day's exercises in input order
//
// Any failure rolls back everything, including step 1 — a partial
// failure must never leave the user with zero active plans. Two
// concurrent creates for the same user race on steps 1–2 with
// last-writer-wins semantics; that is an accepted limitation, not
// something this layer locks against.
func (r *postgresPlanRepository) Create(ctx context.Context, userID uint, plan *domain.WorkoutPlan) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := archiveActivePlans(tx, userID); err != nil {
			return fmt.Errorf("archive active plans: %w", err)
		}

		planID, err := insertPlan(tx, userID, plan)
		if err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		for i := range plan.Days {
			day := &plan.Days[i]
			dayID, err := insertDay(tx, planID, day)
			if err != nil {
				return fmt.Errorf("insert day %d: %w", day.DayNumber, err)
			}
			for j := range day.Exercises {
				if err := insertExercise(tx, dayID, &day.Exercises[j]); err != nil {
					return fmt.Errorf("insert exercise %d of day %d: %w", j+1, day.DayNumber, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return plan.ID, nil
}

// archiveActivePlans flips all of the user's active plans to archived.
func archiveActivePlans(tx *gorm.DB, userID uint) error {
	return tx.Model(&domain.WorkoutPlan{}).
		Where("user_id = ? AND status = ?", userID, domain.PlanStatusActive).
		Update("status", domain.PlanStatusArchived).Error
}

// insertPlan writes the plan row only; days are inserted separately so
// ordering stays explicit.
func insertPlan(tx *gorm.DB, userID uint, plan *domain.WorkoutPlan) (uint, error) {
	row := domain.WorkoutPlan{
		UserID:          userID,
		CreatedAt:       time.Now().UTC(),
		Status:          domain.PlanStatusActive,
		DurationWeeks:   plan.DurationWeeks,
		Goal:            plan.Goal,
		ExperienceLevel: plan.ExperienceLevel,
	}
	if err := tx.Omit("Days").Create(&row).Error; err != nil {
		return 0, err
	}
	plan.ID = row.ID
	plan.CreatedAt = row.CreatedAt
	plan.Status = row.Status
	return row.ID, nil
}

func insertDay(tx *gorm.DB, planID uint, day *domain.WorkoutDay) (uint, error) {
	row := domain.WorkoutDay{
		PlanID:    planID,
		DayNumber: day.DayNumber,
		DayName:   day.DayName,
		Focus:     day.Focus,
	}
	if err := tx.Omit("Exercises").Create(&row).Error; err != nil {
		return 0, err
	}
	day.ID = row.ID
	day.PlanID = planID
	return row.ID, nil
}

func insertExercise(tx *gorm.DB, dayID uint, exercise *domain.WorkoutExercise) error {
	if exercise.ExerciseCatalogID == 0 {
		// Reconciliation must have bound every exercise to a catalog
		// entry before persistence is attempted.
		return errors.New("exercise is not bound to a catalog entry")
	}
	row := domain.WorkoutExercise{
		DayID:             dayID,
		ExerciseCatalogID: exercise.ExerciseCatalogID,
		Sets:              exercise.Sets,
		Reps:              exercise.Reps,
		Notes:             exercise.Notes,
	}
	if err := tx.Omit("Catalog").Create(&row).Error; err != nil {
		return err
	}
	exercise.ID = row.ID
	exercise.DayID = dayID
	return nil
}

// GetByID reconstructs the nested plan: days in day-number order, each
// with its exercises in insertion order and the catalog entry joined in.
func (r *postgresPlanRepository) GetByID(ctx context.Context, planID uint) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_days.day_number ASC")
		}).
		Preload("Days.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercises.id ASC")
		}).
		Preload("Days.Exercises.Catalog").
		First(&plan, planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *postgresPlanRepository) GetLatestByUser(ctx context.Context, userID uint) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, plan.ID)
}

func (r *postgresPlanRepository) ListByUser(ctx context.Context, userID uint, status *domain.PlanStatus) ([]domain.WorkoutPlan, error) {
	query := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_days.day_number ASC")
		}).
		Preload("Days.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercises.id ASC")
		}).
		Preload("Days.Exercises.Catalog").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var plans []domain.WorkoutPlan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Delete removes the plan with its days and exercises. The deletes are
// explicit rather than relying on database-level cascade, so the
// behavior is identical on Postgres and the SQLite used in tests.
func (r *postgresPlanRepository) Delete(ctx context.Context, planID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan domain.WorkoutPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var dayIDs []uint
		if err := tx.Model(&domain.WorkoutDay{}).
			Where("plan_id = ?", planID).
			Pluck("id", &dayIDs).Error; err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			if err := tx.Where("day_id IN ?", dayIDs).
				Delete(&domain.WorkoutExercise{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("plan_id = ?", planID).
			Delete(&domain.WorkoutDay{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.WorkoutPlan{}, planID).Error
	})
}
