package scheduler

import "github.com/mcarr10/oncall-scheduler/pkg/core/model"

// RotationCursor walks the roster in fixed order. The index only ever grows;
// it is reduced modulo the roster length at read time, so the cursor carries
// the full history of attempts across weeks.
type RotationCursor struct {
	roster model.Roster
	index  int
}

// NewRotationCursor returns a cursor positioned at the first roster slot.
func NewRotationCursor(roster model.Roster) *RotationCursor {
	return &RotationCursor{roster: roster}
}

// Peek returns the member at the current position without moving.
func (c *RotationCursor) Peek() model.Member {
	return c.roster[c.index%len(c.roster)]
}

// PeekAt returns the member offset slots ahead of the current position
// without moving. PeekAt(0) equals Peek.
func (c *RotationCursor) PeekAt(offset int) model.Member {
	return c.roster[(c.index+offset)%len(c.roster)]
}

// Advance moves the cursor one slot forward.
func (c *RotationCursor) Advance() {
	c.index++
}

// Index returns the raw, unreduced position.
func (c *RotationCursor) Index() int {
	return c.index
}

// RosterSize returns the number of rotation slots.
func (c *RotationCursor) RosterSize() int {
	return len(c.roster)
}
