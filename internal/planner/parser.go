package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// repsDurationRe finds reps fields holding a time value instead of a
// count, quoted or bare: `"reps": 45 seconds`, `"reps": "30-45 secs"`.
var repsDurationRe = regexp.MustCompile(`"reps"\s*:\s*"?(\d+(?:\s*-\s*\d+)?)\s*((?i:seconds?|secs?|minutes?|mins?))"?`)

// notesRe locates a notes field inside a single exercise object.
var notesRe = regexp.MustCompile(`"notes"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// NormalizeDurations rewrites time-valued reps fields to reps=1 and
// moves the duration into the same exercise's notes field. It is a
// best-effort textual repair of a common model mistake, applied before
// any structured parse (a bare `"reps": 45 seconds` is not even valid
// JSON). Running it on already-normalized text is a no-op.
func NormalizeDurations(raw string) string {
	for {
		loc := repsDurationRe.FindStringSubmatchIndex(raw)
		if loc == nil {
			return raw
		}
		duration := strings.TrimSpace(raw[loc[2]:loc[3]]) + " " + raw[loc[4]:loc[5]]

		const repaired = `"reps": 1`
		raw = raw[:loc[0]] + repaired + raw[loc[1]:]
		repsEnd := loc[0] + len(repaired)

		objStart, objEnd := objectBounds(raw, loc[0])
		if objStart < 0 || objEnd < 0 {
			// No enclosing object to attach notes to; the structured
			// parse will reject this text anyway.
			continue
		}

		obj := raw[objStart : objEnd+1]
		if m := notesRe.FindStringSubmatchIndex(obj); m != nil {
			insertAt := objStart + m[3] // end of the existing notes value
			sep := "; "
			if m[2] == m[3] {
				sep = "" // notes was empty
			}
			raw = raw[:insertAt] + sep + duration + raw[insertAt:]
		} else {
			raw = raw[:repsEnd] + `, "notes": "` + duration + `"` + raw[repsEnd:]
		}
	}
}

// objectBounds returns the indices of the braces of the innermost JSON
// object enclosing position from. String literals are skipped so braces
// inside values do not confuse the scan, in either direction: the
// opening brace is found by replaying the text from the start with an
// open-brace stack rather than by searching backwards byte-wise, which
// would stop at a `{` inside a preceding string value.
func objectBounds(s string, from int) (int, int) {
	var open []int
	inString := false
	for i := 0; i < from && i < len(s); i++ {
		switch c := s[i]; {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			open = append(open, i)
		case c == '}':
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
	if inString || len(open) == 0 {
		return -1, -1
	}
	start := open[len(open)-1]

	depth := 0
	inString = false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, i
			}
		}
	}
	return start, -1
}

// Parse normalizes, parses and validates a raw model response.
//
// Failure modes are terminal for the request and typed:
//   - text that is not a single JSON object -> *MalformedOutputError
//   - a JSON object that does not match the plan shape -> *SchemaError
func Parse(raw string) (*GeneratedPlan, error) {
	normalized := strings.TrimSpace(NormalizeDurations(raw))

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(normalized), &plan); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			// The top-level value was an object; some nested field has
			// the wrong type. That is a schema problem, not a parse
			// problem.
			return nil, &SchemaError{
				Detail:    fmt.Sprintf("field %q: cannot decode %s as %s", typeErr.Field, typeErr.Value, typeErr.Type),
				Structure: looseStructure(normalized),
			}
		}
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	if err := validate(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// validate enforces the canonical plan shape: exactly 7 days with
// unique day numbers 1..7, required exercise fields, and positive
// sets/reps when present.
func validate(plan *GeneratedPlan) error {
	fail := func(format string, args ...any) error {
		return &SchemaError{Detail: fmt.Sprintf(format, args...), Structure: plan}
	}

	if plan.Days == nil {
		return fail("missing required field: days")
	}
	if len(plan.Days) != 7 {
		return fail("plan must contain exactly 7 days, got %d", len(plan.Days))
	}
	if plan.CreatedAt != "" && !isISOTimestamp(plan.CreatedAt) {
		return fail("created_at %q is not an ISO-8601 timestamp", plan.CreatedAt)
	}
	if plan.DurationWeeks != nil && *plan.DurationWeeks <= 0 {
		return fail("duration_weeks must be positive, got %d", *plan.DurationWeeks)
	}

	seen := make(map[int]bool, 7)
	for _, day := range plan.Days {
		if day.DayNumber < 1 || day.DayNumber > 7 {
			return fail("day_number %d is out of range 1..7", day.DayNumber)
		}
		if seen[day.DayNumber] {
			return fail("duplicate day_number %d", day.DayNumber)
		}
		seen[day.DayNumber] = true

		for i, exercise := range day.Exercises {
			if strings.TrimSpace(exercise.ExerciseName) == "" {
				return fail("day %d exercise %d: missing required field: exercise_name", day.DayNumber, i+1)
			}
			if strings.TrimSpace(exercise.Equipment) == "" {
				return fail("day %d exercise %q: missing required field: equipment", day.DayNumber, exercise.ExerciseName)
			}
			if exercise.Sets != nil && *exercise.Sets <= 0 {
				return fail("day %d exercise %q: sets must be positive, got %d", day.DayNumber, exercise.ExerciseName, *exercise.Sets)
			}
			if exercise.Reps != nil && *exercise.Reps <= 0 {
				return fail("day %d exercise %q: reps must be positive, got %d", day.DayNumber, exercise.ExerciseName, *exercise.Reps)
			}
		}
	}
	return nil
}

// isoLayouts covers RFC3339 plus the zone-less form Python's
// datetime.isoformat() produces, which the original model contract used.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

func isISOTimestamp(value string) bool {
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// looseStructure re-parses the text generically so SchemaError can
// carry the offending structure even when typed decoding failed.
func looseStructure(text string) any {
	var structure map[string]any
	if err := json.Unmarshal([]byte(text), &structure); err != nil {
		return nil
	}
	return structure
}
