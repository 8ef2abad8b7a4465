// internal/domain/catalog.go
package domain

// ExerciseCatalogEntry is the master record for an exercise the app is
// allowed to put into a plan. Seeded once at startup and read-only at
// runtime; workout exercises reference entries but never own them, so
// an entry referenced by plan history must not be deleted.
type ExerciseCatalogEntry struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"uniqueIndex;not null" json:"name"`
	Equipment       string `gorm:"not null" json:"equipment"`           // e.g. "Barbell", "Dumbbell", "Bodyweight"
	PrimaryMuscle   string `json:"primaryMuscle,omitempty"`             // e.g. "Chest"
	SecondaryMuscle string `json:"secondaryMuscle,omitempty"`           // e.g. "Triceps"
	Difficulty      string `json:"difficulty,omitempty"`                // e.g. "Beginner", "Intermediate", "Advanced"
}

// TableName keeps the table name the database service has always used.
func (ExerciseCatalogEntry) TableName() string {
	return "exercise_catalog"
}
