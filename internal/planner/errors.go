package planner

import "fmt"

// MalformedOutputError means the model's text did not parse as a single
// JSON object even after repair. Terminal for the request; the raw text
// is kept for diagnostics.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// SchemaError means the parsed JSON does not conform to the plan shape.
// Terminal for the request; carries both the failure detail and the
// offending structure.
type SchemaError struct {
	Detail    string
	Structure any
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("plan schema mismatch: %s", e.Detail)
}

// CatalogMismatchError means a generated (name, equipment) pair does
// not exist in the exercise catalog. Terminal for the request; names
// the offending pair.
type CatalogMismatchError struct {
	ExerciseName string
	Equipment    string
}

func (e *CatalogMismatchError) Error() string {
	return fmt.Sprintf("exercise %q with equipment %q is not in the catalog", e.ExerciseName, e.Equipment)
}
