package scheduler

import "github.com/mcarr10/oncall-scheduler/pkg/core/model"

// FairnessTracker counts, per member, how many assigned weeks contained a
// holiday and how many contained a patching day. Counts only change when a
// week is actually assigned. A name occupying several roster slots shares a
// single pair of counters.
type FairnessTracker struct {
	holidayCounts  map[model.Member]int
	patchingCounts map[model.Member]int
}

// NewFairnessTracker returns a tracker with a zero entry for every roster
// member, so that minimum queries see the full roster from week one.
func NewFairnessTracker(roster model.Roster) *FairnessTracker {
	t := &FairnessTracker{
		holidayCounts:  make(map[model.Member]int, len(roster)),
		patchingCounts: make(map[model.Member]int, len(roster)),
	}
	for _, m := range roster {
		t.holidayCounts[m] = 0
		t.patchingCounts[m] = 0
	}
	return t
}

// HolidayCount returns how many holiday weeks the member has been assigned.
func (t *FairnessTracker) HolidayCount(m model.Member) int {
	return t.holidayCounts[m]
}

// PatchingCount returns how many patching weeks the member has been assigned.
func (t *FairnessTracker) PatchingCount(m model.Member) int {
	return t.patchingCounts[m]
}

// RecordAssignment updates the member's counters for an assigned week.
func (t *FairnessTracker) RecordAssignment(m model.Member, hasHoliday, hasPatching bool) {
	if hasHoliday {
		t.holidayCounts[m]++
	}
	if hasPatching {
		t.patchingCounts[m]++
	}
}

// MinPatchingCount returns the smallest patching count across every tracked
// member, ignoring availability. Returns 0 for an empty tracker.
func (t *FairnessTracker) MinPatchingCount() int {
	first := true
	min := 0
	for _, count := range t.patchingCounts {
		if first || count < min {
			min = count
			first = false
		}
	}
	return min
}
