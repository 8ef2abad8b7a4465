package planner

import (
	"context"
	"errors"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"
)

// CatalogFinder is the slice of the catalog the reconciler needs.
type CatalogFinder interface {
	Find(ctx context.Context, name, equipment string) (*domain.ExerciseCatalogEntry, error)
}

// Reconcile matches every generated exercise against the catalog and
// converts the validated plan into domain records ready to persist,
// each exercise bound to its resolved catalog entry ID.
//
// The first (name, equipment) pair with no case-insensitive catalog
// match fails the whole plan with *CatalogMismatchError — no partial
// result, no silent drop. This runs before any write begins, so a
// persisted plan can never reference a nonexistent catalog entry.
func Reconcile(ctx context.Context, generated *GeneratedPlan, catalog CatalogFinder) (*domain.WorkoutPlan, error) {
	plan := &domain.WorkoutPlan{
		Goal:            generated.Goal,
		ExperienceLevel: generated.ExperienceLevel,
		DurationWeeks:   generated.DurationWeeks,
		Days:            make([]domain.WorkoutDay, 0, len(generated.Days)),
	}

	for _, genDay := range generated.Days {
		day := domain.WorkoutDay{
			DayNumber: genDay.DayNumber,
			DayName:   genDay.DayName,
			Focus:     genDay.Focus,
			Exercises: make([]domain.WorkoutExercise, 0, len(genDay.Exercises)),
		}

		for _, genExercise := range genDay.Exercises {
			entry, err := catalog.Find(ctx, genExercise.ExerciseName, genExercise.Equipment)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, &CatalogMismatchError{
						ExerciseName: genExercise.ExerciseName,
						Equipment:    genExercise.Equipment,
					}
				}
				return nil, err
			}

			day.Exercises = append(day.Exercises, domain.WorkoutExercise{
				ExerciseCatalogID: entry.ID,
				Sets:              genExercise.Sets,
				Reps:              genExercise.Reps,
				Notes:             genExercise.Notes,
			})
		}
		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}
