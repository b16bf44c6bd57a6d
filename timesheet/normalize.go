package timesheet

import (
	"crewtime/models"
)

// Timesheet is the nested in-memory entry shape the client works with:
// header fields plus the worker roster.
type Timesheet struct {
	Date         string
	TimeIn       string
	TimeOut      string
	TotalHours   string
	Comment      string
	ForemanID    uint
	PropertyName string
	Workers      []WorkerSlot
}

// Normalize flattens a nested timesheet into the three relational row sets.
// Each worker slot with an identity emits one employee-time row and one
// hours row per category, zeros included; identity-less slots contribute
// nothing. Header fields map 1:1 onto the entry row. EntryID on the child
// rows is left for the store to fill once the entry id is known.
func Normalize(ts Timesheet) (models.Entry, []models.EntryEmployeeTime, []models.EntryEmployeeHours) {
	entry := models.Entry{
		Date:         ts.Date,
		TimeIn:       ts.TimeIn,
		TimeOut:      ts.TimeOut,
		TotalHours:   ts.TotalHours,
		Comment:      ts.Comment,
		ForemanID:    ts.ForemanID,
		PropertyName: ts.PropertyName,
	}

	var times []models.EntryEmployeeTime
	var hours []models.EntryEmployeeHours
	for _, w := range ts.Workers {
		if !w.HasIdentity() {
			continue
		}
		times = append(times, models.EntryEmployeeTime{
			EmployeeID: w.EmployeeID,
			TimeIn:     w.Start,
			TimeOut:    w.End,
		})
		for _, category := range models.Categories {
			hours = append(hours, models.EntryEmployeeHours{
				EmployeeID: w.EmployeeID,
				Category:   category,
				Hours:      w.CategoryHoursFor(category),
			})
		}
	}
	return entry, times, hours
}

// Denormalize reconstructs the nested timesheet from an entry row and its
// child rows. Rows are grouped by employee id; each distinct identity in
// either set yields one worker slot carrying whatever data exists for it,
// with missing categories at zero and missing times empty. The worker list
// is padded with empty slots up to the roster size but never truncated when
// more identities are present.
func Denormalize(entry models.Entry, times []models.EntryEmployeeTime, hours []models.EntryEmployeeHours) Timesheet {
	ts := Timesheet{
		Date:         entry.Date,
		TimeIn:       entry.TimeIn,
		TimeOut:      entry.TimeOut,
		TotalHours:   entry.TotalHours,
		Comment:      entry.Comment,
		ForemanID:    entry.ForemanID,
		PropertyName: entry.PropertyName,
	}

	slots := make(map[uint]*WorkerSlot)
	var order []uint
	slot := func(id uint) *WorkerSlot {
		if s, ok := slots[id]; ok {
			return s
		}
		s := &WorkerSlot{EmployeeID: id}
		slots[id] = s
		order = append(order, id)
		return s
	}

	for _, t := range times {
		s := slot(t.EmployeeID)
		s.Start = t.TimeIn
		s.End = t.TimeOut
	}
	for _, h := range hours {
		slot(h.EmployeeID).SetCategoryHours(h.Category, h.Hours)
	}

	// The foreman's slot leads when present, matching the roster's slot-0
	// convention; everyone else keeps first-seen order.
	if entry.ForemanID != 0 {
		for i, id := range order {
			if id == entry.ForemanID && i != 0 {
				copy(order[1:i+1], order[:i])
				order[0] = id
				break
			}
		}
	}

	for _, id := range order {
		ts.Workers = append(ts.Workers, *slots[id])
	}
	for len(ts.Workers) < RosterSize {
		ts.Workers = append(ts.Workers, WorkerSlot{})
	}
	return ts
}
