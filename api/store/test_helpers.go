/* test_helpers.go
 * Contains test helper functions for store package tests and for other packages that need a
 * realistic trial hierarchy
 */

package store

import (
	"context"

	"trial-manager/api/shared"
)

// NewTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func NewTestStore(mongoURI string) (*Store, func(), error) {
	s, err := NewStore("test_trial_manager", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s.Client != nil {
			s.Database.Drop(context.TODO())
			s.Client.Disconnect(context.TODO())
		}
	}

	return s, cleanup, nil
}

// CreateSampleTrial creates a valid two day trial hierarchy for testing
func CreateSampleTrial() shared.Trial {
	return shared.Trial{
		ClubName:  "Riverside K9",
		Secretary: "A. Lee",
		Status:    shared.StatusDraft,
		FeeConfiguration: shared.FeeConfiguration{
			Regular:          25,
			FEO:              15,
			JuniorHandler:    12,
			JuniorHandlerFEO: 8,
		},
		Days: []shared.Day{
			{
				DayNumber: 1,
				Date:      "2025-06-01",
				Classes: []shared.Class{
					{
						ClassName: "Games 1",
						Subclass:  "GB",
						Rounds: []shared.Round{
							{JudgeName: "J. Doe", FEOAvailable: true},
						},
					},
					{
						ClassName: "Rally Starter",
						Rounds: []shared.Round{
							{JudgeName: "Patty Brown", FEOAvailable: false},
							{JudgeName: "Sandy Martinez", FEOAvailable: true},
						},
					},
				},
			},
			{
				DayNumber: 2,
				Date:      "2025-06-02",
				Classes: []shared.Class{
					{
						ClassName: "Obedience 1",
						Rounds: []shared.Round{
							{JudgeName: "Burt Smith", FEOAvailable: false},
						},
					},
				},
			},
		},
	}
}
