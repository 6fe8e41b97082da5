package utils

import "time"

// DayKeyFormat is the calendar-day identifier layout used across the ledger
const DayKeyFormat = "2006-01-02"

// ClockFormat is the display layout for intake timestamps
const ClockFormat = "15:04"

// DayKey returns the calendar-day identifier for t in local time
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// FormatClock returns the wall-clock display string for t
func FormatClock(t time.Time) string {
	return t.Format(ClockFormat)
}
