package timesheet

import (
	"crewtime/models"
)

// RosterSize is the fixed number of worker slots on an entry form.
const RosterSize = 7

// WorkerSlot is one row of the worker roster: an identity plus that worker's
// clock times and per-category hour figures. Workers are keyed by numeric
// user id; a zero EmployeeID means the slot has no identity assigned.
type WorkerSlot struct {
	EmployeeID    uint
	Name          string
	Start         string
	End           string
	Miscellaneous float64
	SmallPower    float64
	Machine       float64
	Lunch         float64
}

func (s WorkerSlot) HasIdentity() bool {
	return s.EmployeeID != 0
}

// CategoryHoursFor returns the slot's figure for the named category; unknown
// categories read as zero.
func (s WorkerSlot) CategoryHoursFor(category string) float64 {
	switch category {
	case models.CategoryMiscellaneous:
		return s.Miscellaneous
	case models.CategorySmallPower:
		return s.SmallPower
	case models.CategoryMachine:
		return s.Machine
	case models.CategoryLunch:
		return s.Lunch
	}
	return 0
}

// SetCategoryHours stores a figure for the named category; unknown categories
// are dropped.
func (s *WorkerSlot) SetCategoryHours(category string, hours float64) {
	switch category {
	case models.CategoryMiscellaneous:
		s.Miscellaneous = hours
	case models.CategorySmallPower:
		s.SmallPower = hours
	case models.CategoryMachine:
		s.Machine = hours
	case models.CategoryLunch:
		s.Lunch = hours
	}
}

// Roster is the fixed-size ordered worker list of an entry form. Slot 0
// always mirrors the selected foreman's identity; slots 1 through 6 are
// independent assignments, not required to be unique or fully populated.
type Roster struct {
	Slots [RosterSize]WorkerSlot
}

func NewRoster() *Roster {
	return &Roster{}
}

// SetForeman overwrites slot 0's identity to match the selected foreman.
// The slot's clock times and hour figures are left at their prior values.
func (r *Roster) SetForeman(id uint, name string) {
	r.Slots[0].EmployeeID = id
	r.Slots[0].Name = name
}

// ClearForeman clears slot 0's identity fields only. Any hour or time
// figures already captured stay behind, attributable to no one; the write
// path skips identity-less slots rather than erroring on them.
func (r *Roster) ClearForeman() {
	r.Slots[0].EmployeeID = 0
	r.Slots[0].Name = ""
}

// Assign replaces the identity of one of the independent slots (1..6),
// keeping the slot's other fields. Slot 0 is reserved for the foreman and
// out-of-range indexes are ignored.
func (r *Roster) Assign(i int, id uint, name string) {
	if i < 1 || i >= RosterSize {
		return
	}
	r.Slots[i].EmployeeID = id
	r.Slots[i].Name = name
}

// Workers returns the roster as a slice, preserving slot order.
func (r *Roster) Workers() []WorkerSlot {
	return r.Slots[:]
}
