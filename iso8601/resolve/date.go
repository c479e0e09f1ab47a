// Package resolve maps classified ISO 8601 dates and times to the periods,
// clock times, and instants they denote. It implements the calendar
// arithmetic (month lengths, leap years, ISO week numbering), the
// normalization of fractional and overflowing clock values, the leap-second
// policies, and the combination of a date with a time of day.
package resolve

import (
	"fmt"
	"time"

	"github.com/theory/isodate/iso8601/types"
)

// Date resolves v to the first day of the period it denotes and the length
// of that period. It returns an error wrapping types.ErrInvalidDate when a
// month, day, week, or weekday does not exist in the calendar, such as
// day-of-year 366 in a common year or week 53 of a 52-week year.
func Date(v types.DateVariant) (types.ResolvedPeriod, error) {
	p, err := resolveDate(v)
	if err != nil {
		return types.ResolvedPeriod{}, fmt.Errorf("%w: %v: %w", types.ErrInvalidDate, v, err)
	}
	return p, nil
}

func resolveDate(v types.DateVariant) (types.ResolvedPeriod, error) {
	switch v := v.(type) {
	case types.CalendarDay:
		if err := checkYear(v.Year); err != nil {
			return types.ResolvedPeriod{}, err
		}
		if err := checkMonth(v.Month); err != nil {
			return types.ResolvedPeriod{}, err
		}
		if n := daysInMonth(v.Year, v.Month); v.Day < 1 || v.Day > n {
			return types.ResolvedPeriod{}, fmt.Errorf("day %d out of range 1-%d", v.Day, n)
		}
		return period(date(v.Year, v.Month, v.Day), 1), nil

	case types.OrdinalDay:
		if err := checkYear(v.Year); err != nil {
			return types.ResolvedPeriod{}, err
		}
		if n := daysInYear(v.Year); v.Day < 1 || v.Day > n {
			return types.ResolvedPeriod{}, fmt.Errorf("day of year %d out of range 1-%d", v.Day, n)
		}
		return period(date(v.Year, 1, v.Day), 1), nil

	case types.WeekDay:
		start, err := weekStart(v.Year, v.Week)
		if err != nil {
			return types.ResolvedPeriod{}, err
		}
		if v.Weekday < 1 || v.Weekday > 7 {
			return types.ResolvedPeriod{}, fmt.Errorf("weekday %d out of range 1-7", v.Weekday)
		}
		return period(start.AddDate(0, 0, v.Weekday-1), 1), nil

	case types.Week:
		start, err := weekStart(v.Year, v.Week)
		if err != nil {
			return types.ResolvedPeriod{}, err
		}
		return period(start, 7), nil

	case types.Month:
		if err := checkYear(v.Year); err != nil {
			return types.ResolvedPeriod{}, err
		}
		if err := checkMonth(v.Month); err != nil {
			return types.ResolvedPeriod{}, err
		}
		return period(date(v.Year, v.Month, 1), daysInMonth(v.Year, v.Month)), nil

	case types.Year:
		if err := checkYear(v.Year); err != nil {
			return types.ResolvedPeriod{}, err
		}
		return period(date(v.Year, 1, 1), daysInYear(v.Year)), nil

	case types.Century:
		if v.Century < -maxYear/100 || v.Century > maxYear/100 {
			return types.ResolvedPeriod{}, fmt.Errorf("century %d out of range", v.Century)
		}
		first := v.Century * 100
		start, end := date(first, 1, 1), date(first+100, 1, 1)
		return types.ResolvedPeriod{Start: start, Precision: end.Sub(start)}, nil

	default:
		panic(fmt.Sprintf("resolve: unknown date variant %T", v))
	}
}

// weekStart returns the Monday of week of year.
func weekStart(year, week int) (time.Time, error) {
	if err := checkYear(year); err != nil {
		return time.Time{}, err
	}
	if n := isoWeeksInYear(year); week < 1 || week > n {
		return time.Time{}, fmt.Errorf("week %d out of range 1-%d", week, n)
	}
	return isoWeekStart(year).AddDate(0, 0, (week-1)*7), nil
}

// period returns the period of n days starting at start.
func period(start time.Time, n int) types.ResolvedPeriod {
	return types.ResolvedPeriod{Start: start, Precision: days(n)}
}

func checkYear(year int) error {
	if year < -maxYear || year > maxYear {
		return fmt.Errorf("year %d out of range", year)
	}
	return nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range 1-12", month)
	}
	return nil
}
