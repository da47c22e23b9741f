// Package dateutils provides the calendar operations used throughout the
// application. All "current date" and "current month" computations run in
// Korea Standard Time, a fixed UTC+9 offset with no daylight saving.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO   = "2006-01-02"
	MonthLayoutISO  = "2006-01"
	secondsPerHour  = 3600
	hoursAheadOfUTC = 9
)

// KST is the fixed Korea Standard Time location.
var KST = time.FixedZone("KST", hoursAheadOfUTC*secondsPerHour)

// NowKST returns the current time in KST.
func NowKST() time.Time {
	return time.Now().In(KST)
}

// ParseISO parses an ISO YYYY-MM-DD date string into a KST-anchored time.
func ParseISO(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayoutISO, strings.TrimSpace(dateStr), KST)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM month key of a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayoutISO)
}

// PrevMonthKey returns the YYYY-MM key of the month before the given date.
// It walks back from the first of the month, so end-of-month dates cannot
// skip a short month the way AddDate(0, -1, 0) does.
func PrevMonthKey(date time.Time) string {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return MonthKey(firstOfMonth.AddDate(0, 0, -1))
}

// InMonth reports whether an ISO date string falls inside the YYYY-MM month.
func InMonth(dateStr, monthKey string) bool {
	return strings.HasPrefix(dateStr, monthKey+"-")
}

// DaysInMonth returns the number of days in the month containing the date.
func DaysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, KST).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// ClampDay builds a date in the given year/month on the requested day of
// month, clamping to the last valid day when the month is shorter
// (Jan 31 carried into February yields Feb 28 or 29).
func ClampDay(year int, month time.Month, day int) time.Time {
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, KST)
}

// DaysBetween returns the whole number of days from an earlier date to a
// later one, ignoring the time-of-day component.
func DaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, KST)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, KST)
	return int(to.Sub(from).Hours() / 24)
}
