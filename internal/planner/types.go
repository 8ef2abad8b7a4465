package planner

// GeneratedPlan is the shape the language model is instructed to
// return. Field names mirror the wire contract in the system
// instruction exactly.
type GeneratedPlan struct {
	Goal            string         `json:"goal"`
	ExperienceLevel string         `json:"experience_level"`
	DurationWeeks   *int           `json:"duration_weeks"`
	CreatedAt       string         `json:"created_at"` // ISO-8601; informational only, persistence stamps its own time
	Status          string         `json:"status"`
	Days            []GeneratedDay `json:"days"`
}

// GeneratedDay is one day entry in the model's response. An empty
// exercise list marks a rest day.
type GeneratedDay struct {
	DayNumber int                 `json:"day_number"`
	DayName   string              `json:"day_name"`
	Focus     string              `json:"focus"`
	Exercises []GeneratedExercise `json:"exercises"`
}

// GeneratedExercise is one exercise slot. Reps is always a count after
// normalization; time-based work carries its duration in Notes.
type GeneratedExercise struct {
	ExerciseName string `json:"exercise_name"`
	Equipment    string `json:"equipment"`
	Sets         *int   `json:"sets"`
	Reps         *int   `json:"reps"`
	Notes        string `json:"notes"`
}
