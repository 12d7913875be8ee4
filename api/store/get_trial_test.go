/* get_trial_test.go
 * Contains unit tests for reconstitution and trial listing
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"trial-manager/api/shared"
)

func trialDoc(trialId string) bson.D {
	return bson.D{
		{Key: "_id", Value: trialId},
		{Key: "club_name", Value: "Riverside K9"},
		{Key: "secretary_name", Value: "A. Lee"},
		{Key: "created_by", Value: "user-1"},
		{Key: "trial_dates", Value: bson.A{
			bson.D{{Key: "dayNumber", Value: 1}, {Key: "date", Value: "2025-06-01"}},
		}},
		{Key: "fee_configuration", Value: bson.D{
			{Key: "regular", Value: 25.0},
			{Key: "feo", Value: 15.0},
			{Key: "juniorHandler", Value: 12.0},
			{Key: "juniorHandlerFeo", Value: 8.0},
		}},
		{Key: "status", Value: "draft"},
	}
}

func TestGetTrial_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reconstitutes the hierarchy and decodes class names", func(mt *mtest.T) {
		s := newMtestStore(mt)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test_trial_manager.trials", mtest.FirstBatch, trialDoc("trial-1")),
			mtest.CreateCursorResponse(0, "test_trial_manager.trial_days", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "day-1"}, {Key: "trial_id", Value: "trial-1"}, {Key: "day_number", Value: 1}, {Key: "trial_date", Value: "2025-06-01"}},
			),
			mtest.CreateCursorResponse(0, "test_trial_manager.trial_classes", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "class-1"}, {Key: "trial_day_id", Value: "day-1"}, {Key: "class_name", Value: "Games 1 (GB)"}, {Key: "class_order", Value: 1}},
				bson.D{{Key: "_id", Value: "class-2"}, {Key: "trial_day_id", Value: "day-1"}, {Key: "class_name", Value: "Rally Starter"}, {Key: "class_order", Value: 2}},
			),
			mtest.CreateCursorResponse(0, "test_trial_manager.trial_rounds", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "round-1"}, {Key: "trial_class_id", Value: "class-1"}, {Key: "round_number", Value: 1}, {Key: "judge_name", Value: "J. Doe"}, {Key: "feo_available", Value: true}},
			),
		)

		trial, err := s.GetTrial("trial-1", "user-1")
		require.NoError(mt.T, err)
		require.NotNil(mt.T, trial)

		assert.Equal(mt.T, "Riverside K9", trial.ClubName)
		assert.Equal(mt.T, "A. Lee", trial.Secretary)
		assert.Equal(mt.T, shared.StatusDraft, trial.Status)
		assert.Equal(mt.T, 25.0, trial.FeeConfiguration.Regular)

		require.Len(mt.T, trial.Days, 1)
		require.Len(mt.T, trial.Days[0].Classes, 2)

		games := trial.Days[0].Classes[0]
		assert.Equal(mt.T, "Games 1", games.ClassName)
		assert.Equal(mt.T, "GB", games.Subclass)
		require.Len(mt.T, games.Rounds, 1)
		assert.Equal(mt.T, "J. Doe", games.Rounds[0].JudgeName)
		assert.True(mt.T, games.Rounds[0].FEOAvailable)

		rally := trial.Days[0].Classes[1]
		assert.Equal(mt.T, "Rally Starter", rally.ClassName)
		assert.Empty(mt.T, rally.Subclass)
	})
}

func TestGetTrial_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing trial surfaces as ErrNotFound", func(mt *mtest.T) {
		s := newMtestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test_trial_manager.trials", mtest.FirstBatch))

		_, err := s.GetTrial("missing", "")
		assert.ErrorIs(mt.T, err, ErrNotFound)
	})
}

func TestListTrials(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns summaries for the owner", func(mt *mtest.T) {
		s := newMtestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test_trial_manager.trials", mtest.FirstBatch,
			trialDoc("trial-2"),
			trialDoc("trial-1"),
		))

		summaries, err := s.ListTrials("user-1")
		require.NoError(mt.T, err)
		require.Len(mt.T, summaries, 2)
		assert.Equal(mt.T, "trial-2", summaries[0].Id)
		assert.Equal(mt.T, "Riverside K9", summaries[0].ClubName)
		require.Len(mt.T, summaries[0].TrialDates, 1)
		assert.Equal(mt.T, 1, summaries[0].TrialDates[0].DayNumber)
	})
}

// assembleTrial is pure, so ordering guarantees can be checked without mocks
func TestAssembleTrial_PreservesOrdering(t *testing.T) {
	trialRec := TrialRecord{Id: "trial-1", ClubName: "Riverside K9", SecretaryName: "A. Lee", Status: "draft"}
	dayRecs := []DayRecord{
		{Id: "day-1", TrialId: "trial-1", DayNumber: 1, TrialDate: "2025-06-01"},
		{Id: "day-2", TrialId: "trial-1", DayNumber: 2, TrialDate: "2025-06-02"},
	}
	classRecs := []ClassRecord{
		{Id: "class-a", TrialDayId: "day-1", ClassName: "Games 1 (GB)", ClassOrder: 1},
		{Id: "class-b", TrialDayId: "day-2", ClassName: "Obedience 1", ClassOrder: 1},
		{Id: "class-c", TrialDayId: "day-1", ClassName: "Rally Starter", ClassOrder: 2},
	}
	roundRecs := []RoundRecord{
		{Id: "round-a", TrialClassId: "class-a", RoundNumber: 1, JudgeName: "J. Doe", FEOAvailable: true},
		{Id: "round-b", TrialClassId: "class-c", RoundNumber: 1, JudgeName: "Patty Brown"},
		{Id: "round-c", TrialClassId: "class-c", RoundNumber: 2, JudgeName: "Sandy Martinez"},
	}

	trial := assembleTrial(trialRec, dayRecs, classRecs, roundRecs)

	require.Len(t, trial.Days, 2)
	require.Len(t, trial.Days[0].Classes, 2)
	assert.Equal(t, "Games 1", trial.Days[0].Classes[0].ClassName)
	assert.Equal(t, "GB", trial.Days[0].Classes[0].Subclass)
	assert.Equal(t, "Rally Starter", trial.Days[0].Classes[1].ClassName)
	require.Len(t, trial.Days[0].Classes[1].Rounds, 2)
	assert.Equal(t, "Patty Brown", trial.Days[0].Classes[1].Rounds[0].JudgeName)
	assert.Equal(t, "Sandy Martinez", trial.Days[0].Classes[1].Rounds[1].JudgeName)

	require.Len(t, trial.Days[1].Classes, 1)
	assert.Equal(t, "Obedience 1", trial.Days[1].Classes[0].ClassName)
	assert.Empty(t, trial.Days[1].Classes[0].Rounds)
}
