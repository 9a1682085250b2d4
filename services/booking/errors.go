package booking

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError reports a single invalid draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a step transition or submission. The draft is left
// untouched so the caller can correct the offending fields and retry.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// PersistenceError wraps a storage failure during submission. The draft
// session is kept alive so the booking is not lost.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist booking: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

var (
	// ErrSessionNotFound means the draft session is missing or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrSubmitInProgress rejects a second submission while one is in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrNotAtReview rejects a submission before the review step is reached.
	ErrNotAtReview = errors.New("draft has not reached the review step")

	// ErrAlreadyAtReview rejects an advance past the final step.
	ErrAlreadyAtReview = errors.New("already at the review step")
)
