package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a trial doesn't exist or is not owned by
	// the supplied user. Ownership misses surface as not-found so callers do
	// not leak trial existence
	ErrNotFound = errors.New("store: trial not found")

	// ErrNotValidated is returned when a hierarchy that fails validation
	// reaches the orchestrator. Nothing is written
	ErrNotValidated = errors.New("store: trial hierarchy failed validation, nothing was written")
)

// PartialWriteError reports a create cascade that failed after the trial
// document was already written. The failed cascade is compensated by deleting
// everything inserted so far; if that compensation itself fails the store is
// left inconsistent and CompensationErr says why
type PartialWriteError struct {
	Err             error
	CompensationErr error
}

func (e *PartialWriteError) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("partial trial write was NOT rolled back (%v): %v", e.CompensationErr, e.Err)
	}
	return fmt.Sprintf("partial trial write rolled back: %v", e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
