package timesheet

import (
	"testing"
)

func TestElapsedHours(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    string
	}{
		{"full day", "08:00", "16:30", "8.50"},
		{"whole hours", "08:00", "16:00", "8.00"},
		{"quarter hour", "09:00", "09:15", "0.25"},
		{"one minute", "12:00", "12:01", "0.02"},
		{"out before in", "16:00", "08:00", "0.00"},
		{"equal times", "08:00", "08:00", "0.00"},
		{"empty in", "", "16:00", "0.00"},
		{"empty out", "08:00", "", "0.00"},
		{"both empty", "", "", "0.00"},
		{"garbage in", "ab:cd", "16:00", "0.00"},
		{"missing colon", "0800", "1600", "0.00"},
		{"hour out of range", "24:00", "16:00", "0.00"},
		{"minute out of range", "08:61", "16:00", "0.00"},
		{"midnight start", "00:00", "23:59", "23.98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedHours(tt.timeIn, tt.timeOut); got != tt.want {
				t.Fatalf("ElapsedHours(%q, %q) = %q, want %q", tt.timeIn, tt.timeOut, got, tt.want)
			}
		})
	}
}

func TestElapsedHoursNoWraparound(t *testing.T) {
	// A night shift crossing midnight is invalid input, not a 24h offset.
	if got := ElapsedHours("22:00", "06:00"); got != "0.00" {
		t.Fatalf("expected overnight shift to be rejected, got %q", got)
	}
}
