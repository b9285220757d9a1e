package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

func TestNewFairnessTracker_ZeroEntryForEveryMember(t *testing.T) {
	roster := model.Roster{"Alice", "Bob", "Carol"}

	tracker := NewFairnessTracker(roster)

	for _, m := range roster {
		assert.Equal(t, 0, tracker.HolidayCount(m))
		assert.Equal(t, 0, tracker.PatchingCount(m))
	}
	assert.Equal(t, 0, tracker.MinPatchingCount())
}

func TestFairnessTracker_RecordAssignment(t *testing.T) {
	tracker := NewFairnessTracker(model.Roster{"Alice", "Bob"})

	tracker.RecordAssignment("Alice", true, false)
	tracker.RecordAssignment("Alice", false, true)
	tracker.RecordAssignment("Alice", true, true)

	assert.Equal(t, 2, tracker.HolidayCount("Alice"))
	assert.Equal(t, 2, tracker.PatchingCount("Alice"))
	assert.Equal(t, 0, tracker.HolidayCount("Bob"))
	assert.Equal(t, 0, tracker.PatchingCount("Bob"))
}

func TestFairnessTracker_RecordAssignment_PlainWeekLeavesCountsAlone(t *testing.T) {
	tracker := NewFairnessTracker(model.Roster{"Alice"})

	tracker.RecordAssignment("Alice", false, false)

	assert.Equal(t, 0, tracker.HolidayCount("Alice"))
	assert.Equal(t, 0, tracker.PatchingCount("Alice"))
}

func TestFairnessTracker_MinPatchingCount_SpansWholeRoster(t *testing.T) {
	tracker := NewFairnessTracker(model.Roster{"Alice", "Bob", "Carol"})

	tracker.RecordAssignment("Alice", false, true)
	tracker.RecordAssignment("Bob", false, true)

	// Carol has never been assigned, so the floor stays at zero
	assert.Equal(t, 0, tracker.MinPatchingCount())

	tracker.RecordAssignment("Carol", false, true)

	assert.Equal(t, 1, tracker.MinPatchingCount())
}

func TestFairnessTracker_DuplicateSlotsShareCounters(t *testing.T) {
	// The same name in two roster slots is one identity for fairness
	tracker := NewFairnessTracker(model.Roster{"Alice", "Bob", "Alice"})

	tracker.RecordAssignment("Alice", false, true)

	assert.Equal(t, 1, tracker.PatchingCount("Alice"))
	assert.Equal(t, 0, tracker.MinPatchingCount())
}
