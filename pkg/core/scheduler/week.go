package scheduler

import "time"

// WeekWindow is a contiguous Monday-through-Sunday span identified by its
// Monday date.
type WeekWindow struct {
	// Start is the window's Monday at midnight UTC
	Start time.Time
}

// WeekOf returns the window containing the given date. Windows are anchored
// on Monday: weekStart = date - (isoWeekday - 1) days, where Go's Sunday (0)
// counts as ISO weekday 7.
func WeekOf(date time.Time) WeekWindow {
	d := midnightUTC(date)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return WeekWindow{Start: d.AddDate(0, 0, -(weekday - 1))}
}

// End returns the window's Sunday.
func (w WeekWindow) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// Days returns the seven days of the window in order, Monday first.
func (w WeekWindow) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Next returns the window of the following week.
func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, 7)}
}

// midnightUTC discards the time-of-day and timezone of a date, keeping only
// the calendar day.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
