package postgres

import (
	"fmt"

	"fitai/workout-planner/internal/config"
	"fitai/workout-planner/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a gorm connection to Postgres using the configured DSN
// parts.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all tables. The cascade
// chain plan -> day -> exercise comes from the model constraints; the
// catalog reference on workout_exercises deliberately has no cascade.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.ExerciseCatalogEntry{},
		&domain.WorkoutPlan{},
		&domain.WorkoutDay{},
		&domain.WorkoutExercise{},
	)
}
