/* api.go
 * This file contains the public methods for interacting with this package. For consistent results,
 * functions should only be called from this file, not the store or logic sub packages directly.
 * Validation always runs to completion before any write is attempted, so a caller either gets the
 * ordered violation list or the outcome of the persistence protocol, never a half written trial
 */

package api

import (
	"fmt"

	"trial-manager/api/logic"
	"trial-manager/api/shared"
	"trial-manager/api/store"
)

// API provides methods for interacting with the trial manager data layer
type API struct {
	Store store.Interface
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
	}, nil
}

// CreateTrial validates a trial hierarchy and persists it for the given user.
// It returns the new trial id on success, the ordered violation list when the
// hierarchy is rejected, or an error when persistence itself fails
func (a *API) CreateTrial(user shared.User, trial shared.Trial) (string, []string, error) {
	if user.UserId == "" {
		return "", nil, fmt.Errorf("user id is required")
	}

	violations := logic.ValidateTrial(trial)
	if len(violations) > 0 {
		return "", violations, nil
	}

	trialId, err := a.Store.CreateTrial(user, trial)
	if err != nil {
		return "", nil, err
	}
	return trialId, nil, nil
}

// ReplaceTrial validates a replacement hierarchy and applies it to an
// existing trial owned by the user. The whole day/class/round subtree is
// replaced; there is no partial diff update
func (a *API) ReplaceTrial(trialId string, user shared.User, trial shared.Trial) ([]string, error) {
	if trialId == "" {
		return nil, fmt.Errorf("trial id is required")
	}
	if user.UserId == "" {
		return nil, fmt.Errorf("user id is required")
	}

	violations := logic.ValidateTrial(trial)
	if len(violations) > 0 {
		return violations, nil
	}

	if err := a.Store.ReplaceTrial(trialId, user, trial); err != nil {
		return nil, err
	}
	return nil, nil
}

// DeleteTrial removes a trial and its full subtree. A trial that doesn't
// exist or isn't owned by the user comes back as store.ErrNotFound
func (a *API) DeleteTrial(trialId string, user shared.User) error {
	if trialId == "" {
		return fmt.Errorf("trial id is required")
	}
	return a.Store.DeleteTrial(trialId, user)
}

// GetTrial reconstitutes a trial hierarchy for display or for seeding an edit
// form. Passing an empty ownerId skips the ownership filter for public reads
func (a *API) GetTrial(trialId string, ownerId string) (*shared.Trial, error) {
	if trialId == "" {
		return nil, fmt.Errorf("trial id is required")
	}
	return a.Store.GetTrial(trialId, ownerId)
}

// ListTrials returns the user's trial summaries, newest created first
func (a *API) ListTrials(user shared.User) ([]store.TrialSummary, error) {
	if user.UserId == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return a.Store.ListTrials(user.UserId)
}

// SuggestJudges matches partial input against the judges already stored in
// rounds plus the default roster, best match first
func (a *API) SuggestJudges(input string) ([]string, error) {
	stored, err := a.Store.ListJudgeNames()
	if err != nil {
		return nil, err
	}
	known := logic.MergeJudgeNames(stored, shared.DefaultJudges)
	return logic.SuggestJudges(input, known), nil
}
