package scheduler

import "github.com/mcarr10/oncall-scheduler/pkg/core/model"

// WeekAssigner picks an owner for one week at a time, consuming the rotation
// cursor and updating the fairness tracker as it goes.
type WeekAssigner struct {
	calendar CalendarSet
	tracker  *FairnessTracker
	cursor   *RotationCursor
}

// NewWeekAssigner wires an assigner over shared rotation state. The tracker
// and cursor persist across calls so fairness and rotation order accumulate
// over the whole horizon.
func NewWeekAssigner(calendar CalendarSet, tracker *FairnessTracker, cursor *RotationCursor) *WeekAssigner {
	return &WeekAssigner{
		calendar: calendar,
		tracker:  tracker,
		cursor:   cursor,
	}
}

// Assign selects the owner for the given week window. Each candidate attempt
// advances the cursor exactly once, whether the candidate is taken or passed
// over, so a successful pick leaves the cursor on the next slot. When a full
// roster pass yields nobody, the week is left unassigned and fairness counts
// stay untouched.
func (a *WeekAssigner) Assign(weekNum int, window WeekWindow) model.WeekAssignment {
	hasHoliday := a.calendar.WeekHasHoliday(window)
	hasPatching := a.calendar.WeekHasPatching(window)

	assignment := model.WeekAssignment{
		Week:        weekNum,
		Start:       window.Start,
		End:         window.End(),
		AssignedTo:  model.Unassigned,
		HasHoliday:  hasHoliday,
		HasPatching: hasPatching,
	}

	// Fairness floor is fixed before the search so every candidate this
	// week is judged against the same baseline.
	minPatching := a.tracker.MinPatchingCount()

	rosterSize := a.cursor.RosterSize()
	for attempt := 0; attempt < rosterSize; attempt++ {
		candidate := a.cursor.Peek()

		if !a.calendar.MemberAvailable(candidate, window) {
			a.cursor.Advance()
			continue
		}

		if hasHoliday && a.tracker.HolidayCount(candidate) >= 1 {
			a.cursor.Advance()
			continue
		}

		if hasPatching && a.tracker.PatchingCount(candidate) > minPatching {
			if a.fairerCandidateExists(window, hasHoliday, minPatching) {
				a.cursor.Advance()
				continue
			}
			// Nobody at the floor can take the week, so the candidate
			// keeps it despite the higher count.
		}

		a.tracker.RecordAssignment(candidate, hasHoliday, hasPatching)
		a.cursor.Advance()
		assignment.AssignedTo = candidate
		return assignment
	}

	return assignment
}

// fairerCandidateExists scans the full roster from the current cursor
// position, read-only, for a member at the patching floor who could actually
// take the week.
func (a *WeekAssigner) fairerCandidateExists(window WeekWindow, hasHoliday bool, minPatching int) bool {
	for offset := 0; offset < a.cursor.RosterSize(); offset++ {
		m := a.cursor.PeekAt(offset)
		if a.tracker.PatchingCount(m) != minPatching {
			continue
		}
		if !a.calendar.MemberAvailable(m, window) {
			continue
		}
		if hasHoliday && a.tracker.HolidayCount(m) >= 1 {
			continue
		}
		return true
	}
	return false
}
