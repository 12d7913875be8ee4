/* replace_trial.go
 * Contains the replace protocol used for edits: update the trial scalars in place, delete the
 * existing day/class/round subtree, then rebuild it from the new hierarchy. There is no retained
 * snapshot of the old subtree, so a failure partway through the rebuild requires the caller to
 * retry the whole edit
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"trial-manager/api/logic"
	"trial-manager/api/shared"
)

// ReplaceTrial replaces an existing trial with a new validated hierarchy. The
// scalar fields are updated in place filtered by trial id AND owner; an
// update that matches nothing means not-found or not-owned and nothing else
// is touched. On success the stored subtree exactly mirrors the input, with
// no stale rows from the previous version
func (s *Store) ReplaceTrial(trialId string, user shared.User, trial shared.Trial) error {
	if user.UserId == "" {
		return fmt.Errorf("user id is required")
	}
	if violations := logic.ValidateTrial(trial); len(violations) > 0 {
		return ErrNotValidated
	}

	// Step 1: scalar fields, fee configuration, derived dates and status
	update := bson.M{"$set": bson.M{
		"club_name":         trial.ClubName,
		"secretary_name":    trial.Secretary,
		"trial_dates":       deriveTrialDates(trial.Days),
		"fee_configuration": trial.FeeConfiguration,
		"status":            trial.Status,
		"updated_at":        time.Now().UTC(),
	}}
	result, err := s.Collections.Trials.UpdateOne(context.TODO(), bson.M{"_id": trialId, "created_by": user.UserId}, update)
	if err != nil {
		return fmt.Errorf("trial update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	// Step 2: drop the old subtree. Destructive and irreversible from here on
	if err := s.deleteDaySubtree(trialId); err != nil {
		return fmt.Errorf("failed to delete existing trial days: %w", err)
	}

	// Step 3: rebuild under the same trial id. A failure here leaves the
	// trial with updated scalars and an incomplete subtree; the whole edit
	// has to be retried, there is no resume
	if err := s.insertDays(trialId, trial.Days); err != nil {
		return fmt.Errorf("trial subtree rebuild failed, retry the edit: %w", err)
	}

	return nil
}
