package models

import "fmt"

// ValidationError reports a field that failed validation. Values that fail
// validation never reach a store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
