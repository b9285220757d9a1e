package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
)

// mockStore implements a test double for the data directory store
type mockStore struct {
	roster            model.Roster
	holidays          scheduler.DateSet
	patching          scheduler.DateSet
	unavailability    scheduler.UnavailabilityIndex
	rosterErr         error
	holidaysErr       error
	patchingErr       error
	unavailabilityErr error
}

func (m *mockStore) LoadRoster() (model.Roster, error) {
	if m.rosterErr != nil {
		return nil, m.rosterErr
	}
	return m.roster, nil
}

func (m *mockStore) LoadHolidays() (scheduler.DateSet, error) {
	if m.holidaysErr != nil {
		return nil, m.holidaysErr
	}
	if m.holidays == nil {
		return scheduler.NewDateSet(), nil
	}
	return m.holidays, nil
}

func (m *mockStore) LoadPatchingDates() (scheduler.DateSet, error) {
	if m.patchingErr != nil {
		return nil, m.patchingErr
	}
	if m.patching == nil {
		return scheduler.NewDateSet(), nil
	}
	return m.patching, nil
}

func (m *mockStore) LoadUnavailability() (scheduler.UnavailabilityIndex, error) {
	if m.unavailabilityErr != nil {
		return nil, m.unavailabilityErr
	}
	if m.unavailability == nil {
		return make(scheduler.UnavailabilityIndex), nil
	}
	return m.unavailability, nil
}

// identityShuffle keeps the roster in file order for deterministic tests
func identityShuffle(seed string, roster model.Roster) {}

func TestGenerateSchedule_RoundRobin(t *testing.T) {
	mock := &mockStore{roster: model.Roster{"Alice", "Bob", "Carol"}}
	cfg := &config.Config{Weeks: 12}
	logger := zap.NewNop()

	result, err := GenerateSchedule(mock, cfg, logger, GenerateOptions{
		StartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     3,
		Seed:      "test-seed",
		Shuffle:   identityShuffle,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ScheduleID)
	assert.Equal(t, "test-seed", result.Seed)
	assert.Equal(t, model.Roster{"Alice", "Bob", "Carol"}, result.Roster)
	assert.Equal(t, 3, result.Weeks)
	require.Len(t, result.Schedule, 3)
	assert.Equal(t, model.Member("Alice"), result.Schedule[0].AssignedTo)
	assert.Equal(t, model.Member("Bob"), result.Schedule[1].AssignedTo)
	assert.Equal(t, model.Member("Carol"), result.Schedule[2].AssignedTo)
	assert.Empty(t, result.Violations)
}

func TestGenerateSchedule_DefaultsFromConfig(t *testing.T) {
	mock := &mockStore{roster: model.Roster{"Alice"}}
	cfg := &config.Config{Weeks: 5, StartDate: "2026-03-04"}

	result, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{Shuffle: identityShuffle})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Weeks)
	assert.Len(t, result.Schedule, 5)
	// The Wednesday start date normalizes to its week's Monday
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), result.StartDate)
}

func TestGenerateSchedule_SeedReproducesRun(t *testing.T) {
	roster := model.Roster{"Alice", "Bob", "Carol", "Dave", "Erin"}
	cfg := &config.Config{Weeks: 12}
	opts := GenerateOptions{
		StartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     8,
		Seed:      "rerun",
	}

	first, err := GenerateSchedule(&mockStore{roster: roster}, cfg, zap.NewNop(), opts)
	require.NoError(t, err)
	second, err := GenerateSchedule(&mockStore{roster: roster}, cfg, zap.NewNop(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Roster, second.Roster)
	assert.Equal(t, first.Schedule, second.Schedule)
}

func TestGenerateSchedule_DoesNotReorderStoreRoster(t *testing.T) {
	roster := model.Roster{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	mock := &mockStore{roster: roster}
	cfg := &config.Config{Weeks: 12}

	_, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{Weeks: 2, Seed: "reorder"})

	require.NoError(t, err)
	assert.Equal(t, model.Roster{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}, mock.roster)
}

func TestGenerateSchedule_ExpandsHolidayRules(t *testing.T) {
	mock := &mockStore{roster: model.Roster{"Alice", "Bob", "Carol"}}
	cfg := &config.Config{
		Weeks: 12,
		HolidayRules: []config.RecurrenceRule{
			{RRule: "FREQ=WEEKLY;BYDAY=FR", Label: "weekly friday"},
		},
	}

	result, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{
		StartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     4,
		Seed:      "rules",
		Shuffle:   identityShuffle,
	})

	require.NoError(t, err)
	require.Len(t, result.Schedule, 4)
	for _, week := range result.Schedule {
		assert.True(t, week.HasHoliday)
	}
	// Three members each burn their holiday cap, leaving week 4 unowned
	assert.Equal(t, model.Member("Alice"), result.Schedule[0].AssignedTo)
	assert.Equal(t, model.Member("Bob"), result.Schedule[1].AssignedTo)
	assert.Equal(t, model.Member("Carol"), result.Schedule[2].AssignedTo)
	assert.Equal(t, model.Unassigned, result.Schedule[3].AssignedTo)
}

func TestGenerateSchedule_ExpandsPatchingRules(t *testing.T) {
	mock := &mockStore{roster: model.Roster{"Alice", "Bob"}}
	cfg := &config.Config{
		Weeks: 12,
		PatchingRules: []config.RecurrenceRule{
			{RRule: "FREQ=WEEKLY;BYDAY=TU"},
		},
	}

	result, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{
		StartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     2,
		Seed:      "patching",
		Shuffle:   identityShuffle,
	})

	require.NoError(t, err)
	for _, week := range result.Schedule {
		assert.True(t, week.HasPatching)
	}
}

func TestGenerateSchedule_NonPositiveWeeksFails(t *testing.T) {
	mock := &mockStore{roster: model.Roster{"Alice"}}
	cfg := &config.Config{Weeks: -2}

	result, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestGenerateSchedule_StoreFailures(t *testing.T) {
	cfg := &config.Config{Weeks: 4}

	tests := []struct {
		name    string
		store   *mockStore
		message string
	}{
		{
			name:    "roster load fails",
			store:   &mockStore{rosterErr: assert.AnError},
			message: "failed to load roster",
		},
		{
			name:    "holidays load fails",
			store:   &mockStore{roster: model.Roster{"Alice"}, holidaysErr: assert.AnError},
			message: "failed to load holidays",
		},
		{
			name:    "patching load fails",
			store:   &mockStore{roster: model.Roster{"Alice"}, patchingErr: assert.AnError},
			message: "failed to load patching dates",
		},
		{
			name:    "unavailability load fails",
			store:   &mockStore{roster: model.Roster{"Alice"}, unavailabilityErr: assert.AnError},
			message: "failed to load unavailability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateSchedule(tt.store, cfg, zap.NewNop(), GenerateOptions{Seed: "x"})
			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGenerateSchedule_AppliesUnavailability(t *testing.T) {
	unavailability := make(scheduler.UnavailabilityIndex)
	unavailability.Add("Alice", time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC))

	mock := &mockStore{
		roster:         model.Roster{"Alice", "Bob"},
		unavailability: unavailability,
	}
	cfg := &config.Config{Weeks: 12}

	result, err := GenerateSchedule(mock, cfg, zap.NewNop(), GenerateOptions{
		StartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     2,
		Seed:      "unavail",
		Shuffle:   identityShuffle,
	})

	require.NoError(t, err)
	assert.Equal(t, model.Member("Bob"), result.Schedule[0].AssignedTo)
	assert.Equal(t, model.Member("Alice"), result.Schedule[1].AssignedTo)
	assert.Empty(t, result.Violations)
}
