package timesheet

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrBadIdentity reports an employeeTimes/hoursData map key that is not a
// numeric user id.
var ErrBadIdentity = errors.New("invalid employee identity key")

// TimePair is a worker's clock-in/clock-out pair as it appears on the wire.
type TimePair struct {
	TimeIn  string `json:"timeIn" validate:"omitempty,datetime=15:04"`
	TimeOut string `json:"timeOut" validate:"omitempty,datetime=15:04"`
}

// CategoryHours is a worker's per-category figures as they appear on the
// wire.
type CategoryHours struct {
	Miscellaneous float64 `json:"miscellaneous" validate:"min=0,max=4"`
	SmallPower    float64 `json:"smallPower" validate:"min=0,max=4"`
	Machine       float64 `json:"machine" validate:"min=0,max=4"`
	Lunch         float64 `json:"lunch" validate:"min=0,max=4"`
}

// WorkersFromWire rebuilds the worker roster from the request's
// employeeTimes and hoursData maps, both keyed by the decimal string form of
// the worker's user id. The foreman occupies slot 0; remaining identities
// fill slots 1..6 in ascending id order, and identities beyond the roster
// size are appended rather than dropped. A foremanID of zero leaves slot 0
// without an identity.
func WorkersFromWire(foremanID uint, times map[string]TimePair, hours map[string]CategoryHours) ([]WorkerSlot, error) {
	ids, err := identityKeys(times, hours)
	if err != nil {
		return nil, err
	}

	r := NewRoster()
	// Preallocated so slot pointers taken below stay valid across appends.
	overflow := make([]WorkerSlot, 0, len(ids))
	next := 1
	byID := make(map[uint]*WorkerSlot, len(ids))
	if foremanID != 0 {
		r.SetForeman(foremanID, "")
		byID[foremanID] = &r.Slots[0]
	}
	for _, id := range ids {
		if id == foremanID {
			continue
		}
		if next < RosterSize {
			r.Assign(next, id, "")
			byID[id] = &r.Slots[next]
			next++
			continue
		}
		overflow = append(overflow, WorkerSlot{EmployeeID: id})
		byID[id] = &overflow[len(overflow)-1]
	}

	for key, pair := range times {
		id, _ := strconv.ParseUint(key, 10, 32)
		if s := byID[uint(id)]; s != nil {
			s.Start = pair.TimeIn
			s.End = pair.TimeOut
		}
	}
	for key, ch := range hours {
		id, _ := strconv.ParseUint(key, 10, 32)
		if s := byID[uint(id)]; s != nil {
			s.Miscellaneous = ch.Miscellaneous
			s.SmallPower = ch.SmallPower
			s.Machine = ch.Machine
			s.Lunch = ch.Lunch
		}
	}

	return append(r.Workers(), overflow...), nil
}

// EmployeeTimes projects the populated worker slots into the wire map keyed
// by user id.
func (ts Timesheet) EmployeeTimes() map[string]TimePair {
	out := make(map[string]TimePair)
	for _, w := range ts.Workers {
		if !w.HasIdentity() {
			continue
		}
		out[strconv.FormatUint(uint64(w.EmployeeID), 10)] = TimePair{
			TimeIn:  w.Start,
			TimeOut: w.End,
		}
	}
	return out
}

// HoursData projects the populated worker slots into the wire map keyed by
// user id.
func (ts Timesheet) HoursData() map[string]CategoryHours {
	out := make(map[string]CategoryHours)
	for _, w := range ts.Workers {
		if !w.HasIdentity() {
			continue
		}
		out[strconv.FormatUint(uint64(w.EmployeeID), 10)] = CategoryHours{
			Miscellaneous: w.Miscellaneous,
			SmallPower:    w.SmallPower,
			Machine:       w.Machine,
			Lunch:         w.Lunch,
		}
	}
	return out
}

// identityKeys collects the distinct user ids present in either wire map,
// ascending.
func identityKeys(times map[string]TimePair, hours map[string]CategoryHours) ([]uint, error) {
	seen := make(map[uint]bool)
	var ids []uint
	add := func(key string) error {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil || id == 0 {
			return fmt.Errorf("%w: %q", ErrBadIdentity, key)
		}
		if !seen[uint(id)] {
			seen[uint(id)] = true
			ids = append(ids, uint(id))
		}
		return nil
	}
	for key := range times {
		if err := add(key); err != nil {
			return nil, err
		}
	}
	for key := range hours {
		if err := add(key); err != nil {
			return nil, err
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
