package scheduler

import (
	"fmt"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// AssignmentViolation describes a single rule breach found in a finished
// schedule.
type AssignmentViolation struct {
	Week        int
	WeekStart   string
	Rule        string
	Description string
}

// VerifySchedule re-checks a finished schedule against the hard assignment
// rules. An empty slice means the schedule is consistent. Unassigned weeks
// are skipped; they break no rule by themselves.
func VerifySchedule(schedule model.Schedule, roster model.Roster, calendar CalendarSet) []AssignmentViolation {
	var violations []AssignmentViolation
	violations = append(violations, checkRosterMembership(schedule, roster)...)
	violations = append(violations, checkAvailability(schedule, calendar)...)
	violations = append(violations, checkHolidayCap(schedule)...)
	return violations
}

// checkRosterMembership flags weeks owned by a name outside the roster.
func checkRosterMembership(schedule model.Schedule, roster model.Roster) []AssignmentViolation {
	var violations []AssignmentViolation
	for _, week := range schedule {
		if !week.Assigned() {
			continue
		}
		if !roster.Contains(week.AssignedTo) {
			violations = append(violations, AssignmentViolation{
				Week:        week.Week,
				WeekStart:   week.Start.Format("2006-01-02"),
				Rule:        "roster membership",
				Description: fmt.Sprintf("Week is assigned to %q, who is not on the roster", week.AssignedTo),
			})
		}
	}
	return violations
}

// checkAvailability flags weeks whose owner has an unavailable day inside
// the window.
func checkAvailability(schedule model.Schedule, calendar CalendarSet) []AssignmentViolation {
	var violations []AssignmentViolation
	for _, week := range schedule {
		if !week.Assigned() {
			continue
		}
		window := WeekWindow{Start: week.Start}
		if !calendar.MemberAvailable(week.AssignedTo, window) {
			violations = append(violations, AssignmentViolation{
				Week:        week.Week,
				WeekStart:   week.Start.Format("2006-01-02"),
				Rule:        "availability",
				Description: fmt.Sprintf("%s is unavailable during their assigned week", week.AssignedTo),
			})
		}
	}
	return violations
}

// checkHolidayCap flags members who own more than one holiday week.
func checkHolidayCap(schedule model.Schedule) []AssignmentViolation {
	holidayWeeks := make(map[model.Member]int)
	var violations []AssignmentViolation
	for _, week := range schedule {
		if !week.Assigned() || !week.HasHoliday {
			continue
		}
		holidayWeeks[week.AssignedTo]++
		if holidayWeeks[week.AssignedTo] > 1 {
			violations = append(violations, AssignmentViolation{
				Week:        week.Week,
				WeekStart:   week.Start.Format("2006-01-02"),
				Rule:        "holiday cap",
				Description: fmt.Sprintf("%s already owns a holiday week", week.AssignedTo),
			})
		}
	}
	return violations
}
