package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// ElapsedHours converts two "HH:MM" 24-hour clock strings into a decimal hour
// count formatted with exactly two fractional digits. An absent or malformed
// input, or a shift that ends at or before it starts, yields "0.00". There is
// no overnight wraparound: a shift crossing midnight is invalid, not a
// 24-hour offset.
func ElapsedHours(timeIn, timeOut string) string {
	start, okIn := clockMinutes(timeIn)
	end, okOut := clockMinutes(timeOut)
	if !okIn || !okOut || end <= start {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(end-start)/60)
}

// clockMinutes parses an "HH:MM" string into minutes since midnight.
func clockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
