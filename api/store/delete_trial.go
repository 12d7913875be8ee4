/* delete_trial.go
 * Contains trial deletion and the explicit cascading subtree delete. MongoDB has no foreign key
 * cascade, so the orchestrator removes rounds, classes and days itself, bottom up
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trial-manager/api/shared"
)

// DeleteTrial removes a trial and its full subtree. The trial document delete
// is filtered by both trial id and owner, so a trial the user doesn't own
// comes back as not found
func (s *Store) DeleteTrial(trialId string, user shared.User) error {
	result, err := s.Collections.Trials.DeleteOne(context.TODO(), bson.M{"_id": trialId, "created_by": user.UserId})
	if err != nil {
		return fmt.Errorf("failed to delete trial: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	if err := s.deleteDaySubtree(trialId); err != nil {
		// The trial document is already gone so its children are unreachable
		// through normal queries, but they are still taking up space
		return fmt.Errorf("trial deleted but subtree cleanup failed: %w", err)
	}
	return nil
}

// deleteDaySubtree removes every day owned by the trial together with the
// classes and rounds underneath, leaving the trial document alone. Used by the
// replace protocol before rebuilding and by DeleteTrial for cleanup
func (s *Store) deleteDaySubtree(trialId string) error {
	dayIds, err := s.collectIds(s.Collections.Days, bson.M{"trial_id": trialId})
	if err != nil {
		return fmt.Errorf("failed to look up trial days: %w", err)
	}

	classIds, err := s.collectIds(s.Collections.Classes, bson.M{"trial_day_id": bson.M{"$in": dayIds}})
	if err != nil {
		return fmt.Errorf("failed to look up trial classes: %w", err)
	}

	// Bottom up so an interrupted delete never leaves a child without its parent
	if _, err := s.Collections.Rounds.DeleteMany(context.TODO(), bson.M{"trial_class_id": bson.M{"$in": classIds}}); err != nil {
		return fmt.Errorf("failed to delete trial rounds: %w", err)
	}
	if _, err := s.Collections.Classes.DeleteMany(context.TODO(), bson.M{"_id": bson.M{"$in": classIds}}); err != nil {
		return fmt.Errorf("failed to delete trial classes: %w", err)
	}
	if _, err := s.Collections.Days.DeleteMany(context.TODO(), bson.M{"_id": bson.M{"$in": dayIds}}); err != nil {
		return fmt.Errorf("failed to delete trial days: %w", err)
	}
	return nil
}

// deleteTrialSubtree removes the day subtree and then the trial document.
// This is the compensating action for a failed create cascade
func (s *Store) deleteTrialSubtree(trialId string) error {
	if err := s.deleteDaySubtree(trialId); err != nil {
		return err
	}
	if _, err := s.Collections.Trials.DeleteOne(context.TODO(), bson.M{"_id": trialId}); err != nil {
		return fmt.Errorf("failed to delete trial: %w", err)
	}
	return nil
}

// collectIds returns the _id of every document matching the filter
func (s *Store) collectIds(coll *mongo.Collection, filter bson.M) ([]string, error) {
	cursor, err := coll.Find(context.TODO(), filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}

	var docs []struct {
		Id string `bson:"_id"`
	}
	if err = cursor.All(context.TODO(), &docs); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into id slice: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Id)
	}
	return ids, nil
}
