package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

func TestDateSet_ContainsNormalizesTimeOfDay(t *testing.T) {
	set := NewDateSet(day(2026, time.March, 4))

	afternoon := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)

	assert.True(t, set.Contains(afternoon))
	assert.False(t, set.Contains(day(2026, time.March, 5)))
}

func TestDateSet_AddNormalizesTimeOfDay(t *testing.T) {
	set := NewDateSet()
	set.Add(time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC))

	assert.True(t, set.Contains(day(2026, time.March, 4)))
	assert.Len(t, set, 1)
}

func TestCalendarSet_WeekHasHoliday(t *testing.T) {
	calendar := NewCalendarSet()
	calendar.Holidays.Add(day(2026, time.March, 6))

	window := WeekOf(day(2026, time.March, 2))

	assert.True(t, calendar.WeekHasHoliday(window))
	// The next window does not inherit the previous week's holiday
	assert.False(t, calendar.WeekHasHoliday(window.Next()))
}

func TestCalendarSet_WeekHasHoliday_BoundaryDays(t *testing.T) {
	calendar := NewCalendarSet()
	// Monday of the following week, one day past the window's Sunday
	calendar.Holidays.Add(day(2026, time.March, 9))

	window := WeekOf(day(2026, time.March, 2))

	assert.False(t, calendar.WeekHasHoliday(window))
	assert.True(t, calendar.WeekHasHoliday(window.Next()))
}

func TestCalendarSet_WeekHasPatching(t *testing.T) {
	calendar := NewCalendarSet()
	calendar.PatchingDates.Add(day(2026, time.March, 3))

	window := WeekOf(day(2026, time.March, 2))

	assert.True(t, calendar.WeekHasPatching(window))
	assert.False(t, calendar.WeekHasPatching(window.Next()))
}

func TestCalendarSet_MemberAvailable_NoEntryMeansFullyAvailable(t *testing.T) {
	calendar := NewCalendarSet()

	window := WeekOf(day(2026, time.March, 2))

	assert.True(t, calendar.MemberAvailable(model.Member("Alice"), window))
}

func TestCalendarSet_MemberAvailable_BlockedBySingleDay(t *testing.T) {
	calendar := NewCalendarSet()
	calendar.Unavailability.Add(model.Member("Alice"), day(2026, time.March, 7))

	window := WeekOf(day(2026, time.March, 2))

	assert.False(t, calendar.MemberAvailable(model.Member("Alice"), window))
	// Other members are unaffected
	assert.True(t, calendar.MemberAvailable(model.Member("Bob"), window))
}

func TestCalendarSet_MemberAvailable_DayOutsideWindow(t *testing.T) {
	calendar := NewCalendarSet()
	calendar.Unavailability.Add(model.Member("Alice"), day(2026, time.March, 9))

	window := WeekOf(day(2026, time.March, 2))

	assert.True(t, calendar.MemberAvailable(model.Member("Alice"), window))
	assert.False(t, calendar.MemberAvailable(model.Member("Alice"), window.Next()))
}

func TestUnavailabilityIndex_AddAccumulatesDays(t *testing.T) {
	index := make(UnavailabilityIndex)
	index.Add(model.Member("Alice"), day(2026, time.March, 3))
	index.Add(model.Member("Alice"), day(2026, time.March, 4))

	assert.Len(t, index[model.Member("Alice")], 2)
}
