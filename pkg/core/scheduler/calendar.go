package scheduler

import (
	"time"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// DateSet is a set of calendar days. Membership is keyed on the day alone,
// so inputs are normalized to midnight UTC before lookup or insert.
type DateSet map[time.Time]struct{}

// NewDateSet builds a set from the given dates.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add inserts a date into the set.
func (s DateSet) Add(date time.Time) {
	s[midnightUTC(date)] = struct{}{}
}

// Contains reports whether the set holds the given date.
func (s DateSet) Contains(date time.Time) bool {
	_, ok := s[midnightUTC(date)]
	return ok
}

// UnavailabilityIndex maps each member to the days they cannot take on-call
// duty. Members with no entries are available on every day.
type UnavailabilityIndex map[model.Member]DateSet

// Add records a single day of unavailability for a member.
func (u UnavailabilityIndex) Add(m model.Member, date time.Time) {
	set, ok := u[m]
	if !ok {
		set = make(DateSet)
		u[m] = set
	}
	set.Add(date)
}

// CalendarSet holds the date collections that drive assignment decisions for
// a scheduling run.
type CalendarSet struct {
	// Holidays are company-recognized holiday days
	Holidays DateSet
	// PatchingDates are days on which the owner performs patching duty
	PatchingDates DateSet
	// Unavailability records per-member days that block assignment
	Unavailability UnavailabilityIndex
}

// NewCalendarSet returns an empty calendar set ready for population.
func NewCalendarSet() CalendarSet {
	return CalendarSet{
		Holidays:       make(DateSet),
		PatchingDates:  make(DateSet),
		Unavailability: make(UnavailabilityIndex),
	}
}

// WeekHasHoliday reports whether any day of the window is a holiday.
func (c CalendarSet) WeekHasHoliday(w WeekWindow) bool {
	for _, day := range w.Days() {
		if c.Holidays.Contains(day) {
			return true
		}
	}
	return false
}

// WeekHasPatching reports whether any day of the window is a patching day.
func (c CalendarSet) WeekHasPatching(w WeekWindow) bool {
	for _, day := range w.Days() {
		if c.PatchingDates.Contains(day) {
			return true
		}
	}
	return false
}

// MemberAvailable reports whether the member has no unavailable day inside
// the window. A member absent from the index is available everywhere.
func (c CalendarSet) MemberAvailable(m model.Member, w WeekWindow) bool {
	set, ok := c.Unavailability[m]
	if !ok {
		return true
	}
	for _, day := range w.Days() {
		if set.Contains(day) {
			return false
		}
	}
	return true
}
