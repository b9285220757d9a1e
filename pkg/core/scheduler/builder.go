package scheduler

import (
	"errors"
	"time"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// ErrEmptyRoster is returned when a schedule is requested over a roster with
// no members.
var ErrEmptyRoster = errors.New("roster has no members")

// ErrNegativeWeeks is returned when a schedule is requested for a negative
// number of weeks.
var ErrNegativeWeeks = errors.New("number of weeks is negative")

// ScheduleBuilder produces a full schedule by assigning consecutive weeks
// against shared rotation state.
type ScheduleBuilder struct {
	roster   model.Roster
	assigner *WeekAssigner
}

// NewScheduleBuilder wires a builder over a roster and calendar with fresh
// fairness and rotation state.
func NewScheduleBuilder(roster model.Roster, calendar CalendarSet) *ScheduleBuilder {
	tracker := NewFairnessTracker(roster)
	cursor := NewRotationCursor(roster)
	return &ScheduleBuilder{
		roster:   roster,
		assigner: NewWeekAssigner(calendar, tracker, cursor),
	}
}

// Build assigns numWeeks consecutive weeks starting from the week containing
// startDate. A zero-week horizon yields an empty schedule.
func (b *ScheduleBuilder) Build(startDate time.Time, numWeeks int) (model.Schedule, error) {
	if len(b.roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if numWeeks < 0 {
		return nil, ErrNegativeWeeks
	}

	schedule := make(model.Schedule, 0, numWeeks)
	window := WeekOf(startDate)
	for week := 1; week <= numWeeks; week++ {
		schedule = append(schedule, b.assigner.Assign(week, window))
		window = window.Next()
	}
	return schedule, nil
}

// BuildSchedule is the one-shot entry point: it runs a fresh rotation over
// the roster and calendar for the given horizon.
func BuildSchedule(roster model.Roster, startDate time.Time, numWeeks int, calendar CalendarSet) (model.Schedule, error) {
	return NewScheduleBuilder(roster, calendar).Build(startDate, numWeeks)
}
