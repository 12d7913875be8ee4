/* validate_test.go
 * Contains unit tests for the validation engine
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-manager/api/shared"
)

// validTrial is the hierarchy from the Riverside K9 scenario: one day, one
// Games class with a subclass, one judged round
func validTrial() shared.Trial {
	return shared.Trial{
		ClubName:  "Riverside K9",
		Secretary: "A. Lee",
		Status:    shared.StatusDraft,
		Days: []shared.Day{
			{
				DayNumber: 1,
				Date:      "2025-06-01",
				Classes: []shared.Class{
					{
						ClassName: "Games 1",
						Subclass:  "GB",
						Rounds:    []shared.Round{{JudgeName: "J. Doe", FEOAvailable: true}},
					},
				},
			},
		},
	}
}

func TestValidateTrial_ValidHierarchy(t *testing.T) {
	violations := ValidateTrial(validTrial())
	assert.Empty(t, violations)
}

func TestValidateTrial_Deterministic(t *testing.T) {
	trial := validTrial()
	trial.ClubName = " "
	trial.Days[0].Classes[0].Subclass = ""
	trial.Days[0].Classes[0].Rounds[0].JudgeName = "  "

	first := ValidateTrial(trial)
	second := ValidateTrial(trial)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestValidateTrial_TrialScalars(t *testing.T) {
	trial := validTrial()
	trial.ClubName = ""
	trial.Secretary = "   "
	trial.Status = "archived"
	trial.FeeConfiguration.FEO = -1

	violations := ValidateTrial(trial)
	require.Len(t, violations, 4)
	assert.Equal(t, "Club name is required", violations[0])
	assert.Equal(t, "Trial secretary name is required", violations[1])
	assert.Contains(t, violations[2], "Status must be")
	assert.Equal(t, "Fee configuration amounts cannot be negative", violations[3])
}

func TestValidateTrial_NoDays(t *testing.T) {
	trial := validTrial()
	trial.Days = nil

	violations := ValidateTrial(trial)
	require.Len(t, violations, 1)
	assert.Equal(t, "At least one trial day is required", violations[0])
}

func TestValidateTrial_DayChecks(t *testing.T) {
	trial := validTrial()
	trial.Days = append(trial.Days, shared.Day{DayNumber: 2})

	violations := ValidateTrial(trial)
	require.Len(t, violations, 2)
	assert.Equal(t, "Date is required for Day 2", violations[0])
	assert.Equal(t, "At least one class is required for Day 2", violations[1])
}

// a Games class with the subclass omitted yields exactly one violation
// naming day 1, class 1
func TestValidateTrial_GamesSubclassMissing(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes[0].Subclass = ""

	violations := ValidateTrial(trial)
	require.Len(t, violations, 1)
	assert.Equal(t, "Games subclass is required for Day 1, Class 1 (Games 1)", violations[0])
}

func TestValidateTrial_GamesSubclassUnknown(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes[0].Subclass = "ZZ"

	violations := ValidateTrial(trial)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Unknown Games subclass 'ZZ'")
	assert.Contains(t, violations[0], "Day 1, Class 1")
}

func TestValidateTrial_SubclassOnNonGamesClass(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes[0] = shared.Class{
		ClassName: "Rally Starter",
		Subclass:  "GB",
		Rounds:    []shared.Round{{JudgeName: "J. Doe"}},
	}

	violations := ValidateTrial(trial)
	require.Len(t, violations, 1)
	assert.Equal(t, "Subclass is not allowed for Day 1, Class 1 (Rally Starter)", violations[0])
}

func TestValidateTrial_SubclassOnUnnamedClass(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes[0] = shared.Class{
		Subclass: "GB",
		Rounds:   []shared.Round{{JudgeName: "J. Doe"}},
	}

	violations := ValidateTrial(trial)
	require.Len(t, violations, 2)
	assert.Equal(t, "Class name is required for Day 1, Class 1", violations[0])
	// the message falls back to the class position instead of rendering "()"
	assert.Equal(t, "Subclass is not allowed for Day 1, Class 1 (Class 1)", violations[1])
}

func TestValidateTrial_ClassAndRoundChecks(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes = append(trial.Days[0].Classes,
		shared.Class{ClassName: ""},
		shared.Class{ClassName: "Obedience 1", Rounds: []shared.Round{{JudgeName: " "}}},
	)

	violations := ValidateTrial(trial)
	require.Len(t, violations, 3)
	assert.Equal(t, "Class name is required for Day 1, Class 2", violations[0])
	assert.Equal(t, "At least one round is required for Day 1, Class 2 (Class 2)", violations[1])
	assert.Equal(t, "Judge name is required for Day 1, Class 3 (Obedience 1), Round 1", violations[2])
}

func TestValidateTrial_DoesNotMutateInput(t *testing.T) {
	trial := validTrial()
	trial.Days[0].Classes[0].Rounds[0].JudgeName = "  J. Doe  "

	ValidateTrial(trial)
	assert.Equal(t, "  J. Doe  ", trial.Days[0].Classes[0].Rounds[0].JudgeName)
}
