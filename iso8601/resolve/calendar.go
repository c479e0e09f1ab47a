package resolve

import (
	"time"

	"github.com/theory/isodate/iso8601/types"
)

// maxYear bounds the magnitude of resolvable years so that every start date
// fits time.Time and every century fits time.Duration.
const maxYear = 999_999_999

// isLeapYear reports whether year has a February 29 in the proleptic
// Gregorian calendar.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInYear returns 366 for leap years and 365 otherwise.
func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// daysInMonth returns the number of days in month of year.
func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// isoWeeksInYear returns 52 or 53, the number of ISO weeks in year. December
// 28 always falls in the last week.
func isoWeeksInYear(year int) int {
	_, week := date(year, 12, 28).ISOWeek()
	return week
}

// isoWeekday converts a time.Weekday to ISO numbering, Monday 1 to Sunday 7.
func isoWeekday(wd time.Weekday) int {
	return (int(wd)+6)%7 + 1
}

// isoWeekStart returns the Monday of week 1 of year: the week containing
// January 4, and so the year's first Thursday.
func isoWeekStart(year int) time.Time {
	jan4 := date(year, 1, 4)
	return jan4.AddDate(0, 0, 1-isoWeekday(jan4.Weekday()))
}

// date returns midnight on the day in the floating location.
func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, types.Timezone{}.Location(false))
}

// days returns n days as a duration.
func days(n int) time.Duration {
	return time.Duration(n) * types.Day
}
