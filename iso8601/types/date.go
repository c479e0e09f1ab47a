package types

import (
	"fmt"
	"time"

	"github.com/rickb777/period"
)

// DateVariant is one of the seven ISO 8601 calendar date representations:
// CalendarDay, OrdinalDay, WeekDay, Week, Month, Year, or Century. The set is
// closed; consumers switch over the concrete types.
type DateVariant interface {
	fmt.Stringer
	dateVariant()
}

// CalendarDay is a complete calendar date, "2019-12-12" or "20191212".
type CalendarDay struct {
	Year  int
	Month int
	Day   int
}

// OrdinalDay is a year and day of the year, "2019-346" or "2019346".
type OrdinalDay struct {
	Year int
	Day  int
}

// WeekDay is an ISO week date, "2019-W50-4" or "2019W504". Weekday runs from
// 1 (Monday) to 7 (Sunday).
type WeekDay struct {
	Year    int
	Week    int
	Weekday int
}

// Week is an ISO week, "2019-W50" or "2019W50".
type Week struct {
	Year int
	Week int
}

// Month is a year and month, "2019-12".
type Month struct {
	Year  int
	Month int
}

// Year is a year alone, "2019".
type Year struct {
	Year int
}

// Century is the leading digits of a year, "20" for the hundred years from
// 2000 through 2099.
type Century struct {
	Century int
}

func (CalendarDay) dateVariant() {}
func (OrdinalDay) dateVariant()  {}
func (WeekDay) dateVariant()     {}
func (Week) dateVariant()        {}
func (Month) dateVariant()       {}
func (Year) dateVariant()        {}
func (Century) dateVariant()     {}

// String returns the extended representation, "2019-12-12".
func (d CalendarDay) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), d.Month, d.Day)
}

// String returns the extended representation, "2019-346".
func (d OrdinalDay) String() string {
	return fmt.Sprintf("%s-%03d", formatYear(d.Year), d.Day)
}

// String returns the extended representation, "2019-W50-4".
func (d WeekDay) String() string {
	return fmt.Sprintf("%s-W%02d-%d", formatYear(d.Year), d.Week, d.Weekday)
}

// String returns the extended representation, "2019-W50".
func (d Week) String() string {
	return fmt.Sprintf("%s-W%02d", formatYear(d.Year), d.Week)
}

// String returns the extended representation, "2019-12".
func (d Month) String() string {
	return fmt.Sprintf("%s-%02d", formatYear(d.Year), d.Month)
}

// String returns the year, "2019".
func (d Year) String() string {
	return formatYear(d.Year)
}

// String returns the century digits, "20".
func (d Century) String() string {
	if d.Century >= 0 && d.Century <= 99 {
		return fmt.Sprintf("%02d", d.Century)
	}
	return fmt.Sprintf("%+03d", d.Century)
}

// formatYear formats years 0 through 9999 with four digits and all others
// with a sign and at least four digits.
func formatYear(year int) string {
	if year >= 0 && year <= 9999 {
		return fmt.Sprintf("%04d", year)
	}
	return fmt.Sprintf("%+05d", year)
}

// ResolvedPeriod is the half-open range of days a date string denotes: it
// starts at midnight on Start and lasts Precision, so Start.Add(Precision) is
// the first instant after it.
type ResolvedPeriod struct {
	// Start is midnight at the start of the first day, in an unnamed
	// zero-offset location.
	Start time.Time

	// Precision is the length of the period, a whole number of days.
	Precision time.Duration
}

// End returns the first instant after p.
func (p ResolvedPeriod) End() time.Time {
	return p.Start.Add(p.Precision)
}

// Contains returns true if t falls within p. Only the wall clock of t is
// compared; its location is ignored.
func (p ResolvedPeriod) Contains(t time.Time) bool {
	t = time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		p.Start.Location(),
	)
	return !t.Before(p.Start) && t.Before(p.End())
}

// Days returns the number of days in p.
func (p ResolvedPeriod) Days() int {
	return int(p.Precision / Day)
}

// Period returns Precision as an ISO 8601 duration, such as "P31D".
func (p ResolvedPeriod) Period() period.Period {
	return durationPeriod(p.Precision)
}

// dateLayout is the layout of the month and day that follow the year in
// canonical dates.
const dateLayout = "-01-02"

// formatDate formats t as an extended calendar date, with years outside
// 0 through 9999 signed so that the result parses again.
func formatDate(t time.Time, layout string) string {
	return formatYear(t.Year()) + t.Format(layout)
}

// String returns the start date and the precision, "2019-12-01/P31D".
func (p ResolvedPeriod) String() string {
	return formatDate(p.Start, dateLayout) + "/" + p.Period().String()
}

// MarshalJSON implements the json.Marshaler interface. The period is an
// object with the start date and the ISO 8601 precision.
func (p ResolvedPeriod) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(
		nil, `{"start":%q,"precision":%q}`,
		formatDate(p.Start, dateLayout), p.Period().String(),
	), nil
}

// durationPeriod converts d to days when it is a whole number of days.
// Otherwise whole seconds ripple up into minutes and hours, so an hour is
// "PT1H" rather than "PT3600S".
func durationPeriod(d time.Duration) period.Period {
	if d != 0 && d%Day == 0 {
		return period.NewYMD(0, 0, int(d/Day))
	}
	return period.NewOf(d).Normalise(true)
}
