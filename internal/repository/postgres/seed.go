package postgres

import (
	"fitai/workout-planner/internal/domain"

	"gorm.io/gorm"
)

// catalogSeed is the static master list of exercises. Each entry must
// match the names the plan generator offers to the language model.
var catalogSeed = []domain.ExerciseCatalogEntry{
	{Name: "Barbell Bench Press", Equipment: "Barbell", PrimaryMuscle: "Chest", SecondaryMuscle: "Triceps", Difficulty: "Intermediate"},
	{Name: "Incline Dumbbell Press", Equipment: "Dumbbell", PrimaryMuscle: "Chest", SecondaryMuscle: "Shoulders", Difficulty: "Intermediate"},
	{Name: "Triceps Pushdown", Equipment: "Cable Machine", PrimaryMuscle: "Triceps", Difficulty: "Beginner"},
	{Name: "Deadlift", Equipment: "Barbell", PrimaryMuscle: "Back", SecondaryMuscle: "Hamstrings", Difficulty: "Advanced"},
	{Name: "Seated Row", Equipment: "Cable Machine", PrimaryMuscle: "Back", Difficulty: "Intermediate"},
	{Name: "Barbell Curl", Equipment: "Barbell", PrimaryMuscle: "Biceps", Difficulty: "Beginner"},
	{Name: "Dumbbell Squat", Equipment: "Dumbbell", PrimaryMuscle: "Quadriceps", SecondaryMuscle: "Glutes", Difficulty: "Beginner"},
	{Name: "Push Up", Equipment: "Bodyweight", PrimaryMuscle: "Chest", SecondaryMuscle: "Triceps", Difficulty: "Beginner"},
	{Name: "Squat", Equipment: "Bodyweight", PrimaryMuscle: "Quadriceps", SecondaryMuscle: "Glutes", Difficulty: "Beginner"},
	{Name: "Plank", Equipment: "Bodyweight", PrimaryMuscle: "Core", Difficulty: "Beginner"},
	{Name: "Overhead Press", Equipment: "Barbell", PrimaryMuscle: "Shoulders", SecondaryMuscle: "Triceps", Difficulty: "Intermediate"},
	{Name: "Lat Pulldown", Equipment: "Cable Machine", PrimaryMuscle: "Back", SecondaryMuscle: "Biceps", Difficulty: "Beginner"},
	{Name: "Lunge", Equipment: "Bodyweight", PrimaryMuscle: "Quadriceps", SecondaryMuscle: "Glutes", Difficulty: "Beginner"},
	{Name: "Dumbbell Row", Equipment: "Dumbbell", PrimaryMuscle: "Back", SecondaryMuscle: "Biceps", Difficulty: "Beginner"},
}

// SeedCatalog inserts the predefined exercises into the catalog table.
// Existing entries (matched by name + equipment) are not duplicated, so
// running it on every startup is safe.
func SeedCatalog(db *gorm.DB) error {
	for _, entry := range catalogSeed {
		var count int64
		err := db.Model(&domain.ExerciseCatalogEntry{}).
			Where("name = ? AND equipment = ?", entry.Name, entry.Equipment).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}
