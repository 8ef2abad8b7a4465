package domain

import (
	"time"
)

// User represents an authenticated account. Login credentials only;
// everything used for plan personalization lives in UserProfile.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose this via JSON
	CreatedAt    time.Time `json:"createdAt"`

	// One-to-one profile. Deleting a user removes the profile.
	Profile *UserProfile `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// UserProfile holds the fitness data the prompt builder feeds to the
// language model. One row per user.
type UserProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	Age             int      `json:"age"`
	HeightCm        int      `json:"heightCm"`
	WeightKg        int      `json:"weightKg"`
	ExperienceLevel string   `json:"experienceLevel"`
	FitnessGoal     string   `json:"fitnessGoal"`
	Equipment       []string `gorm:"serializer:json" json:"equipment"` // e.g. ["Dumbbell", "Barbell"]
	HealthNotes     string   `json:"healthNotes,omitempty"`
}
