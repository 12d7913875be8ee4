/* create_trial.go
 * Contains the create protocol: an insert cascade over the four trial collections with a
 * compensating delete when any step fails. The writes are sequential because every child document
 * references its parent's freshly generated id
 */

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"trial-manager/api/logic"
	"trial-manager/api/shared"
)

// CreateTrial persists a full trial hierarchy and returns the new trial id.
// The hierarchy must already have passed validation; the orchestrator
// re-checks and refuses unvalidated input rather than writing garbage.
// Either the full hierarchy ends up in the db or none of it does: a failure
// after the trial document was written triggers a compensating delete of
// everything inserted so far
func (s *Store) CreateTrial(user shared.User, trial shared.Trial) (string, error) {
	if user.UserId == "" {
		return "", fmt.Errorf("user id is required")
	}
	if violations := logic.ValidateTrial(trial); len(violations) > 0 {
		return "", ErrNotValidated
	}

	now := time.Now().UTC()
	trialId := uuid.New().String()

	record := TrialRecord{
		Id:               trialId,
		ClubName:         trial.ClubName,
		SecretaryName:    trial.Secretary,
		CreatedBy:        user.UserId,
		TrialDates:       deriveTrialDates(trial.Days),
		FeeConfiguration: trial.FeeConfiguration,
		Status:           trial.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Step 1: the trial document itself. A failure here needs no compensation
	// because nothing else has been written yet
	if _, err := s.Collections.Trials.InsertOne(context.TODO(), record); err != nil {
		return "", fmt.Errorf("trial creation failed: %w", err)
	}

	// Steps 2-4: days, classes and rounds in order. Any failure rolls the
	// whole trial back
	if err := s.insertDays(trialId, trial.Days); err != nil {
		return "", &PartialWriteError{
			Err:             err,
			CompensationErr: s.deleteTrialSubtree(trialId),
		}
	}

	return trialId, nil
}

// insertDays runs the day -> class -> round insert cascade under an existing
// trial id. Day numbers, class orders and round numbers are assigned from the
// 1-based input positions, which renumbers any gaps left by the caller.
// Shared by the create and replace protocols
func (s *Store) insertDays(trialId string, days []shared.Day) error {
	for dayIndex, day := range days {
		dayRecord := DayRecord{
			Id:        uuid.New().String(),
			TrialId:   trialId,
			DayNumber: dayIndex + 1,
			TrialDate: day.Date,
		}
		if _, err := s.Collections.Days.InsertOne(context.TODO(), dayRecord); err != nil {
			return fmt.Errorf("day creation failed for Day %d: %w", dayIndex+1, err)
		}

		for classIndex, cls := range day.Classes {
			classRecord := ClassRecord{
				Id:         uuid.New().String(),
				TrialDayId: dayRecord.Id,
				ClassName:  shared.EncodeClassName(cls.ClassName, cls.Subclass),
				ClassOrder: classIndex + 1,
			}
			if _, err := s.Collections.Classes.InsertOne(context.TODO(), classRecord); err != nil {
				return fmt.Errorf("class creation failed for Day %d, Class %d: %w", dayIndex+1, classIndex+1, err)
			}

			for roundIndex, round := range cls.Rounds {
				roundRecord := RoundRecord{
					Id:           uuid.New().String(),
					TrialClassId: classRecord.Id,
					RoundNumber:  roundIndex + 1,
					JudgeName:    strings.TrimSpace(round.JudgeName),
					FEOAvailable: round.FEOAvailable,
				}
				if _, err := s.Collections.Rounds.InsertOne(context.TODO(), roundRecord); err != nil {
					return fmt.Errorf("round creation failed for Day %d, Class %d, Round %d: %w", dayIndex+1, classIndex+1, roundIndex+1, err)
				}
			}
		}
	}
	return nil
}
