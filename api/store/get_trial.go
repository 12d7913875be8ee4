/* get_trial.go
 * Contains reconstitution: rebuilding an in-memory trial hierarchy from the stored documents,
 * including decoding the subclass back out of the stored class name. Also contains the trial
 * listing used by dashboards
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trial-manager/api/shared"
)

// GetTrial fetches a trial and its full day/class/round subtree, ordered by
// day_number, class_order and round_number. Passing a non-empty ownerId
// scopes the read to trials created by that user; a miss for either reason
// surfaces uniformly as ErrNotFound
func (s *Store) GetTrial(trialId string, ownerId string) (*shared.Trial, error) {
	filter := bson.M{"_id": trialId}
	if ownerId != "" {
		filter["created_by"] = ownerId
	}

	var trialRec TrialRecord
	err := s.Collections.Trials.FindOne(context.TODO(), filter).Decode(&trialRec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching trial from db: %w", err)
	}

	dayRecs, err := s.fetchDayRecords(trialId)
	if err != nil {
		return nil, err
	}

	dayIds := make([]string, 0, len(dayRecs))
	for _, day := range dayRecs {
		dayIds = append(dayIds, day.Id)
	}
	classRecs, err := s.fetchClassRecords(dayIds)
	if err != nil {
		return nil, err
	}

	classIds := make([]string, 0, len(classRecs))
	for _, cls := range classRecs {
		classIds = append(classIds, cls.Id)
	}
	roundRecs, err := s.fetchRoundRecords(classIds)
	if err != nil {
		return nil, err
	}

	return assembleTrial(trialRec, dayRecs, classRecs, roundRecs), nil
}

// ListTrials returns summaries of every trial created by the user, newest
// created first
func (s *Store) ListTrials(ownerId string) ([]TrialSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Collections.Trials.Find(context.TODO(), bson.M{"created_by": ownerId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching trials from db: %w", err)
	}

	var records []TrialRecord
	if err = cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of trials: %w", err)
	}

	summaries := make([]TrialSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, toSummary(rec))
	}
	return summaries, nil
}

func (s *Store) fetchDayRecords(trialId string) ([]DayRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "day_number", Value: 1}})
	cursor, err := s.Collections.Days.Find(context.TODO(), bson.M{"trial_id": trialId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching trial days from db: %w", err)
	}
	var records []DayRecord
	if err = cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of days: %w", err)
	}
	return records, nil
}

func (s *Store) fetchClassRecords(dayIds []string) ([]ClassRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "class_order", Value: 1}})
	cursor, err := s.Collections.Classes.Find(context.TODO(), bson.M{"trial_day_id": bson.M{"$in": dayIds}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching trial classes from db: %w", err)
	}
	var records []ClassRecord
	if err = cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of classes: %w", err)
	}
	return records, nil
}

func (s *Store) fetchRoundRecords(classIds []string) ([]RoundRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "round_number", Value: 1}})
	cursor, err := s.Collections.Rounds.Find(context.TODO(), bson.M{"trial_class_id": bson.M{"$in": classIds}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching trial rounds from db: %w", err)
	}
	var records []RoundRecord
	if err = cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of rounds: %w", err)
	}
	return records, nil
}

// assembleTrial groups the flat record slices back into the nested hierarchy.
// The slices arrive sorted by their order fields, and grouping preserves that
// order within each parent
func assembleTrial(trialRec TrialRecord, dayRecs []DayRecord, classRecs []ClassRecord, roundRecs []RoundRecord) *shared.Trial {
	roundsByClass := make(map[string][]shared.Round)
	for _, rec := range roundRecs {
		roundsByClass[rec.TrialClassId] = append(roundsByClass[rec.TrialClassId], shared.Round{
			Id:           rec.Id,
			RoundNumber:  rec.RoundNumber,
			JudgeName:    rec.JudgeName,
			FEOAvailable: rec.FEOAvailable,
		})
	}

	classesByDay := make(map[string][]shared.Class)
	for _, rec := range classRecs {
		name, subclass := shared.DecodeClassName(rec.ClassName)
		classesByDay[rec.TrialDayId] = append(classesByDay[rec.TrialDayId], shared.Class{
			Id:         rec.Id,
			ClassName:  name,
			Subclass:   subclass,
			ClassOrder: rec.ClassOrder,
			Rounds:     roundsByClass[rec.Id],
		})
	}

	days := make([]shared.Day, 0, len(dayRecs))
	for _, rec := range dayRecs {
		days = append(days, shared.Day{
			Id:        rec.Id,
			DayNumber: rec.DayNumber,
			Date:      rec.TrialDate,
			Classes:   classesByDay[rec.Id],
		})
	}

	return &shared.Trial{
		Id:               trialRec.Id,
		ClubName:         trialRec.ClubName,
		Secretary:        trialRec.SecretaryName,
		Status:           trialRec.Status,
		FeeConfiguration: trialRec.FeeConfiguration,
		Days:             days,
		CreatedBy:        trialRec.CreatedBy,
		CreatedAt:        trialRec.CreatedAt,
		UpdatedAt:        trialRec.UpdatedAt,
	}
}
