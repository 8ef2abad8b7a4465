// internal/domain/plan.go
package domain

import (
	"time"
)

// PlanStatus tracks the lifecycle of a workout plan.
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusArchived PlanStatus = "archived"
)

// WorkoutPlan is a full generated plan owned by one user. A user has at
// most one active plan at any time: creating a new plan archives every
// prior active plan in the same transaction that inserts the new one.
type WorkoutPlan struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	Status    PlanStatus `gorm:"index;not null;default:active" json:"status"`

	// Metadata echoed from the generation request.
	DurationWeeks   *int   `json:"durationWeeks,omitempty"`
	Goal            string `json:"goal,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`

	// One plan -> many days. Deleting the plan deletes its days.
	Days []WorkoutDay `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"days"`
}

// WorkoutDay is a single day inside a plan. DayNumber is the day-of-week
// slot (1..7); a day with no exercises is a rest day.
type WorkoutDay struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PlanID    uint   `gorm:"index;not null" json:"planId"`
	DayNumber int    `gorm:"not null" json:"dayNumber"`
	DayName   string `json:"dayName,omitempty"` // e.g. "Day 1", "Monday"
	Focus     string `json:"focus,omitempty"`   // e.g. "Chest + Triceps", "Rest"

	// One day -> many exercises. Deleting the day deletes its exercises.
	Exercises []WorkoutExercise `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// WorkoutExercise is one exercise slot in a day. It references exactly
// one catalog entry; the reference is non-owning. Reps is always a
// count — time-based work is expressed as reps=1 with the duration in
// Notes.
type WorkoutExercise struct {
	ID                uint `gorm:"primaryKey" json:"id"`
	DayID             uint `gorm:"index;not null" json:"dayId"`
	ExerciseCatalogID uint `gorm:"not null" json:"exerciseCatalogId"`

	Sets  *int   `json:"sets,omitempty"` // positive when present
	Reps  *int   `json:"reps,omitempty"` // positive when present, never a duration
	Notes string `json:"notes,omitempty"`

	Catalog ExerciseCatalogEntry `gorm:"foreignKey:ExerciseCatalogID" json:"-"`
}
