package models

import (
	"time"
)

// Hour categories recorded per worker on every entry. The set is fixed and
// complete: a populated worker slot always persists one row per category,
// zeros included.
const (
	CategoryMiscellaneous = "miscellaneous"
	CategorySmallPower    = "smallPower"
	CategoryMachine       = "machine"
	CategoryLunch         = "lunch"
)

// Categories lists the hour categories in their canonical order.
var Categories = []string{
	CategoryMiscellaneous,
	CategorySmallPower,
	CategoryMachine,
	CategoryLunch,
}

// Entry is one timesheet record for a single date/shift. Date and clock
// fields are stored as the "2006-01-02" and "15:04" strings the client
// submits; TotalHours is client-derived and never recomputed by the server.
type Entry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Date         string    `gorm:"not null;size:10;index" json:"date"`
	TimeIn       string    `gorm:"size:5" json:"timeIn"`
	TimeOut      string    `gorm:"size:5" json:"timeOut"`
	TotalHours   string    `gorm:"size:10" json:"totalHours"`
	Comment      string    `gorm:"size:500" json:"comment"`
	ForemanID    uint      `gorm:"index" json:"foremanId"`
	PropertyName string    `gorm:"size:200;index" json:"propertyName"`
}

// EntryEmployeeTime is one worker's clock-in/clock-out pair on an entry.
// Child rows live and die with their entry: every update deletes and
// reinserts the full set.
type EntryEmployeeTime struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EntryID    uint   `gorm:"not null;index" json:"entryId"`
	EmployeeID uint   `gorm:"not null;index" json:"employeeId"`
	TimeIn     string `gorm:"size:5" json:"timeIn"`
	TimeOut    string `gorm:"size:5" json:"timeOut"`
}

func (EntryEmployeeTime) TableName() string {
	return "entry_employee_times"
}

// EntryEmployeeHours is one worker's figure for a single hour category on an
// entry. Up to four rows per worker, one per category.
type EntryEmployeeHours struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	EntryID    uint    `gorm:"not null;index" json:"entryId"`
	EmployeeID uint    `gorm:"not null;index" json:"employeeId"`
	Category   string  `gorm:"not null;size:20" json:"category"`
	Hours      float64 `gorm:"not null" json:"hours"`
}

func (EntryEmployeeHours) TableName() string {
	return "entry_employee_hours"
}

type EntryFilter struct {
	ForemanID    uint
	PropertyName string
	WeekStart    string
}
