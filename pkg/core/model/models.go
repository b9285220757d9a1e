package model

import "time"

// Member identifies a single on-call-eligible person by display name.
type Member string

// Unassigned is the sentinel owner for weeks where no roster member was
// eligible within a full rotation pass.
const Unassigned Member = "UNASSIGNED"

// Roster is the ordered list of members eligible for on-call duty. The order
// is fixed for a run once the initial permutation is applied; duplicate names
// act as extra rotation slots for the same identity.
type Roster []Member

// Contains reports whether m occupies at least one rotation slot.
func (r Roster) Contains(m Member) bool {
	for _, member := range r {
		if member == m {
			return true
		}
	}
	return false
}

// WeekAssignment records the outcome for a single scheduling week
type WeekAssignment struct {
	// Week is the 1-based position within the planning horizon
	Week int

	// Start is the window's Monday, End its Sunday (midnight UTC)
	Start time.Time
	End   time.Time

	// AssignedTo is the chosen member, or Unassigned when the week could
	// not be covered
	AssignedTo Member

	// HasHoliday is true when any day of the window is a holiday
	HasHoliday bool

	// HasPatching is true when any day of the window is a patching day
	HasPatching bool
}

// Assigned reports whether the week found an owner.
func (a WeekAssignment) Assigned() bool {
	return a.AssignedTo != Unassigned
}

// Schedule is the ordered sequence of week assignments produced by a run,
// one entry per week of the horizon.
type Schedule []WeekAssignment
