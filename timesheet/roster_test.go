package timesheet

import (
	"testing"
)

func TestSetForemanMirrorsSlotZero(t *testing.T) {
	r := NewRoster()
	r.SetForeman(3, "Mike Johnson")

	if r.Slots[0].EmployeeID != 3 || r.Slots[0].Name != "Mike Johnson" {
		t.Fatalf("slot 0 = %+v, want foreman identity", r.Slots[0])
	}

	// Reselecting overwrites the identity but keeps captured figures.
	r.Slots[0].Start = "08:00"
	r.Slots[0].Lunch = 0.5
	r.SetForeman(5, "Chris Lee")

	if r.Slots[0].EmployeeID != 5 || r.Slots[0].Name != "Chris Lee" {
		t.Fatalf("slot 0 identity not overwritten: %+v", r.Slots[0])
	}
	if r.Slots[0].Start != "08:00" || r.Slots[0].Lunch != 0.5 {
		t.Fatalf("slot 0 figures lost on foreman change: %+v", r.Slots[0])
	}
}

func TestClearForemanLeavesFigures(t *testing.T) {
	r := NewRoster()
	r.SetForeman(3, "Mike Johnson")
	r.Slots[0].Start = "08:00"
	r.Slots[0].End = "16:00"
	r.Slots[0].Machine = 1.25

	r.ClearForeman()

	if r.Slots[0].HasIdentity() || r.Slots[0].Name != "" {
		t.Fatalf("slot 0 identity not cleared: %+v", r.Slots[0])
	}
	// Orphaned figures stay; the write path skips identity-less slots.
	if r.Slots[0].Start != "08:00" || r.Slots[0].End != "16:00" || r.Slots[0].Machine != 1.25 {
		t.Fatalf("slot 0 figures should survive a cleared foreman: %+v", r.Slots[0])
	}
}

func TestAssignShallowMerge(t *testing.T) {
	r := NewRoster()
	r.Slots[2].Start = "09:00"
	r.Slots[2].Miscellaneous = 0.75

	r.Assign(2, 7, "David Brown")

	if r.Slots[2].EmployeeID != 7 || r.Slots[2].Name != "David Brown" {
		t.Fatalf("slot 2 identity not set: %+v", r.Slots[2])
	}
	if r.Slots[2].Start != "09:00" || r.Slots[2].Miscellaneous != 0.75 {
		t.Fatalf("slot 2 figures clobbered by reassignment: %+v", r.Slots[2])
	}
}

func TestAssignIgnoresReservedAndOutOfRange(t *testing.T) {
	r := NewRoster()
	r.SetForeman(1, "John Doe")

	r.Assign(0, 9, "Tom Clark")
	if r.Slots[0].EmployeeID != 1 {
		t.Fatalf("slot 0 is reserved for the foreman, got %+v", r.Slots[0])
	}

	r.Assign(-1, 9, "Tom Clark")
	r.Assign(RosterSize, 9, "Tom Clark")
	for i, s := range r.Slots {
		if i > 0 && s.HasIdentity() {
			t.Fatalf("out-of-range assign leaked into slot %d: %+v", i, s)
		}
	}
}

func TestCategoryHoursRoundTrip(t *testing.T) {
	var s WorkerSlot
	cases := map[string]float64{
		"miscellaneous": 0.25,
		"smallPower":    1.5,
		"machine":       4,
		"lunch":         0.5,
	}
	for category, v := range cases {
		s.SetCategoryHours(category, v)
	}
	for category, want := range cases {
		if got := s.CategoryHoursFor(category); got != want {
			t.Fatalf("CategoryHoursFor(%q) = %v, want %v", category, got, want)
		}
	}

	s.SetCategoryHours("unknown", 9)
	if got := s.CategoryHoursFor("unknown"); got != 0 {
		t.Fatalf("unknown category should read as zero, got %v", got)
	}
}
