/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"
	"fmt"

	"trial-manager/api/shared"
	"trial-manager/api/store"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Trials     map[string]shared.Trial
	Owners     map[string]string
	JudgeNames []string
	NextId     int

	// Error injection for testing error paths
	CreateTrialError    error
	ReplaceTrialError   error
	DeleteTrialError    error
	GetTrialError       error
	ListTrialsError     error
	ListJudgeNamesError error

	DatabaseName string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Trials:       make(map[string]shared.Trial),
		Owners:       make(map[string]string),
		JudgeNames:   []string{},
		NextId:       1,
		DatabaseName: "test_db",
	}
}

// CreateTrial mock implementation
func (m *MockStore) CreateTrial(user shared.User, trial shared.Trial) (string, error) {
	if m.CreateTrialError != nil {
		return "", m.CreateTrialError
	}
	trialId := m.nextTrialId()
	trial.Id = trialId
	trial.CreatedBy = user.UserId
	m.Trials[trialId] = trial
	m.Owners[trialId] = user.UserId
	return trialId, nil
}

// ReplaceTrial mock implementation
func (m *MockStore) ReplaceTrial(trialId string, user shared.User, trial shared.Trial) error {
	if m.ReplaceTrialError != nil {
		return m.ReplaceTrialError
	}
	if owner, ok := m.Owners[trialId]; !ok || owner != user.UserId {
		return store.ErrNotFound
	}
	trial.Id = trialId
	trial.CreatedBy = user.UserId
	m.Trials[trialId] = trial
	return nil
}

// DeleteTrial mock implementation
func (m *MockStore) DeleteTrial(trialId string, user shared.User) error {
	if m.DeleteTrialError != nil {
		return m.DeleteTrialError
	}
	if owner, ok := m.Owners[trialId]; !ok || owner != user.UserId {
		return store.ErrNotFound
	}
	delete(m.Trials, trialId)
	delete(m.Owners, trialId)
	return nil
}

// GetTrial mock implementation
func (m *MockStore) GetTrial(trialId string, ownerId string) (*shared.Trial, error) {
	if m.GetTrialError != nil {
		return nil, m.GetTrialError
	}
	trial, ok := m.Trials[trialId]
	if !ok {
		return nil, store.ErrNotFound
	}
	if ownerId != "" && m.Owners[trialId] != ownerId {
		return nil, store.ErrNotFound
	}
	return &trial, nil
}

// ListTrials mock implementation
func (m *MockStore) ListTrials(ownerId string) ([]store.TrialSummary, error) {
	if m.ListTrialsError != nil {
		return nil, m.ListTrialsError
	}
	var summaries []store.TrialSummary
	for trialId, trial := range m.Trials {
		if m.Owners[trialId] != ownerId {
			continue
		}
		summaries = append(summaries, store.TrialSummary{
			Id:            trialId,
			ClubName:      trial.ClubName,
			SecretaryName: trial.Secretary,
			Status:        trial.Status,
		})
	}
	return summaries, nil
}

// ListJudgeNames mock implementation
func (m *MockStore) ListJudgeNames() ([]string, error) {
	if m.ListJudgeNamesError != nil {
		return nil, m.ListJudgeNamesError
	}
	return m.JudgeNames, nil
}

// Implement getter methods for the store Interface

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

func (m *MockStore) nextTrialId() string {
	trialId := fmt.Sprintf("trial-%d", m.NextId)
	m.NextId++
	return trialId
}
