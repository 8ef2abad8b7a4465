package planner

import (
	"fmt"
	"strings"

	"fitai/workout-planner/internal/domain"
)

// maxPromptExercises caps the allowed-exercise list to keep the prompt
// bounded. Entries past the cap are silently omitted; a known
// limitation rather than a correctness requirement.
const maxPromptExercises = 50

// systemInstruction is the fixed output-format contract the model must
// follow. It is verbatim per request; only the user instruction varies.
const systemInstruction = `You are a professional fitness AI. Your job is to generate structured, personalized workout plans.
You MUST return ONLY a valid JSON object in this format, with no surrounding prose and no markdown fencing:

{
  "goal": str,
  "experience_level": str,
  "duration_weeks": int,
  "created_at": str (ISO format),
  "status": str,
  "days": [
    {
      "day_number": int,
      "day_name": str,
      "focus": str,
      "exercises": [
        {
          "exercise_name": str,
          "equipment": str,
          "sets": int,
          "reps": int,
          "notes": str (optional)
        }
      ]
    }
  ]
}

Rules:
- The plan has exactly 7 day entries, day_number 1 through 7.
- Rest days have an empty exercises list. Training days have 2 to 4 exercises.
- reps is always an integer count. For time-based exercises use reps 1 and describe the duration in notes (e.g. "hold for 45 seconds").
- Every exercise_name and equipment pair must come from the allowed list provided by the user. Never invent exercise names.
- Do not include any extra explanation.`

// SystemInstruction returns the fixed contract message for the model.
func SystemInstruction() string {
	return systemInstruction
}

// UserInstruction formats the per-request message: the user's profile,
// a summary of the previous plan (or a first-plan note), and the
// allowed-exercise list capped at maxPromptExercises entries.
func UserInstruction(profile *domain.UserProfile, lastPlan *domain.WorkoutPlan, allowed []domain.ExerciseCatalogEntry) string {
	var b strings.Builder

	equipment := "None"
	if len(profile.Equipment) > 0 {
		equipment = strings.Join(profile.Equipment, ", ")
	}
	healthNotes := profile.HealthNotes
	if healthNotes == "" {
		healthNotes = "None"
	}

	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Height: %d cm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- Weight: %d kg\n", profile.WeightKg)
	fmt.Fprintf(&b, "- Experience level: %s\n", profile.ExperienceLevel)
	fmt.Fprintf(&b, "- Fitness goal: %s\n", profile.FitnessGoal)
	fmt.Fprintf(&b, "- Equipment: %s\n", equipment)
	fmt.Fprintf(&b, "- Health notes: %s\n\n", healthNotes)

	if lastPlan != nil {
		b.WriteString("Previous plan details:\n")
		fmt.Fprintf(&b, "- Goal: %s\n", lastPlan.Goal)
		fmt.Fprintf(&b, "- Experience level: %s\n", lastPlan.ExperienceLevel)
		if lastPlan.DurationWeeks != nil {
			fmt.Fprintf(&b, "- Duration: %d weeks\n", *lastPlan.DurationWeeks)
		}
		fmt.Fprintf(&b, "- Status: %s\n", lastPlan.Status)
		fmt.Fprintf(&b, "- Created at: %s\n\n", lastPlan.CreatedAt.Format("2006-01-02"))
		b.WriteString("Please vary or improve the new plan based on the last one.\n\n")
	} else {
		b.WriteString("This is the user's first plan.\n\n")
	}

	if len(allowed) > maxPromptExercises {
		allowed = allowed[:maxPromptExercises]
	}
	pairs := make([]string, 0, len(allowed))
	for _, entry := range allowed {
		pairs = append(pairs, fmt.Sprintf("%s (%s)", entry.Name, entry.Equipment))
	}
	b.WriteString("Only choose exercise name and equipment pairs from this list:\n")
	b.WriteString(strings.Join(pairs, ", "))
	b.WriteString("\n")

	return b.String()
}
