package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/period"
)

// TimeVariant is one of the three ISO 8601 time-of-day representations:
// Hour, Minute, or Second, each with an optional decimal fraction of its
// last component and an optional time zone designator. The set is closed;
// consumers switch over the concrete types.
type TimeVariant interface {
	fmt.Stringer
	// Zone returns the time zone designator.
	Zone() Timezone
	timeVariant()
}

// Hour is an hour with an optional fraction, "12" or "12.5".
type Hour struct {
	Hour     int
	Fraction Fraction
	TZ       Timezone
}

// Minute is an hour and minute with an optional fraction of the minute,
// "12:34" or "1234,5".
type Minute struct {
	Hour     int
	Minute   int
	Fraction Fraction
	TZ       Timezone
}

// Second is an hour, minute, and second with an optional fraction of the
// second, "12:34:56.789" or "123456".
type Second struct {
	Hour     int
	Minute   int
	Second   int
	Fraction Fraction
	TZ       Timezone
}

func (Hour) timeVariant()   {}
func (Minute) timeVariant() {}
func (Second) timeVariant() {}

// Zone returns the time zone designator.
func (t Hour) Zone() Timezone { return t.TZ }

// Zone returns the time zone designator.
func (t Minute) Zone() Timezone { return t.TZ }

// Zone returns the time zone designator.
func (t Second) Zone() Timezone { return t.TZ }

// String returns the extended representation, "12.5Z".
func (t Hour) String() string {
	return fmt.Sprintf("%02d%s%s", t.Hour, fractionSuffix(t.Fraction), t.TZ)
}

// String returns the extended representation, "12:34.5+09:00".
func (t Minute) String() string {
	return fmt.Sprintf(
		"%02d:%02d%s%s", t.Hour, t.Minute, fractionSuffix(t.Fraction), t.TZ,
	)
}

// String returns the extended representation, "12:34:56.789".
func (t Second) String() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d%s%s",
		t.Hour, t.Minute, t.Second, fractionSuffix(t.Fraction), t.TZ,
	)
}

// fractionSuffix returns ".ddd" for f with its original digit count, or ""
// when f has no digits.
func fractionSuffix(f Fraction) string {
	if f.Digits() == 0 {
		return ""
	}
	num := f.Numerator()
	return "." + strings.Repeat("0", f.Digits()-len(num)) + num
}

// ResolvedTime is a time of day normalized onto a clock without leap seconds
// or 24:00.
type ResolvedTime struct {
	// TimeOfDay holds the clock time on January 1 of year 0 in the location
	// of Zone. Every field is in range.
	TimeOfDay time.Time

	// Zone is the time zone designator of the input.
	Zone Timezone

	// Overflow is the time pushed past the end of the day: one second for
	// "24:00:00", or for a leap second at the end of the day under the
	// HoldAtZero and RepeatNext policies.
	Overflow time.Duration

	// Leap is the leap-second adjustment, set only when HasLeap is true.
	Leap time.Duration

	// HasLeap is true when the input named a 60th second.
	HasLeap bool

	// Precision is the width of the last written digit.
	Precision time.Duration
}

// Clock returns the hour, minute, and second of the time of day.
func (t ResolvedTime) Clock() (int, int, int) {
	return t.TimeOfDay.Clock()
}

// Microsecond returns the microsecond within the second.
func (t ResolvedTime) Microsecond() int {
	return t.TimeOfDay.Nanosecond() / int(time.Microsecond)
}

// Period returns Precision as an ISO 8601 duration, such as "PT1S".
func (t ResolvedTime) Period() period.Period {
	return durationPeriod(t.Precision)
}

// timeFormat is the canonical string format for times of day.
const timeFormat = "15:04:05.999999"

// String returns the time of day with its designator, overflow, and leap
// adjustment, "23:59:59Z+1s leap=0s".
func (t ResolvedTime) String() string {
	s := t.TimeOfDay.Format(timeFormat) + t.Zone.String()
	if t.Overflow != 0 {
		s += "+" + t.Overflow.String()
	}
	if t.HasLeap {
		s += " leap=" + t.Leap.String()
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface. The time is an object
// with the clock time, the name of its location when it has one, the
// overflow and leap adjustment as ISO 8601 durations when present, and the
// precision.
func (t ResolvedTime) MarshalJSON() ([]byte, error) {
	b := fmt.Appendf(nil, `{"time":%q`, t.TimeOfDay.Format(timeFormat))
	if name := t.TimeOfDay.Location().String(); name != "" {
		b = fmt.Appendf(b, `,"zone":%q`, name)
	}
	if t.Overflow != 0 {
		b = fmt.Appendf(b, `,"overflow":%q`, durationPeriod(t.Overflow).String())
	}
	if t.HasLeap {
		b = fmt.Appendf(b, `,"leap":%q`, durationPeriod(t.Leap).String())
	}
	return fmt.Appendf(b, `,"precision":%q}`, t.Period().String()), nil
}

// DatedInstant is the result of parsing a date with an optional time of day.
type DatedInstant struct {
	// Moment is the start of the date or the date and time, in the location
	// of Zone, with any overflow already added.
	Moment time.Time

	// Zone is the time zone designator. It is unspecified for dates.
	Zone Timezone

	// HasTime is true when a time of day was parsed.
	HasTime bool

	// Precision is the width of the date or the last written time digit.
	Precision time.Duration

	// Leap is the leap-second adjustment, set only when HasLeap is true.
	Leap time.Duration

	// HasLeap is true when the time named a 60th second.
	HasLeap bool
}

// End returns the first instant after the span denoted by d.
func (d DatedInstant) End() time.Time {
	return d.Moment.Add(d.Precision)
}

// Period returns Precision as an ISO 8601 duration.
func (d DatedInstant) Period() period.Period {
	return durationPeriod(d.Precision)
}

// instantLayout is the layout of the month, day, and time that follow the
// year in canonical date times.
const instantLayout = "-01-02T15:04:05.999999"

// Format returns the moment as ISO 8601: "2006-01-02" for dates, and
// "2006-01-02T15:04:05.999999" followed by the designator for date times.
// Years outside 0 through 9999 carry a sign, "+12345-01-01".
func (d DatedInstant) Format() string {
	if !d.HasTime {
		return formatDate(d.Moment, dateLayout)
	}
	return formatDate(d.Moment, instantLayout) + d.Zone.String()
}

// String returns the moment and precision, "2019-12-13T00:00:00Z/PT1S".
func (d DatedInstant) String() string {
	return d.Format() + "/" + d.Period().String()
}

// MarshalJSON implements the json.Marshaler interface. The instant is an
// object with the ISO 8601 moment, the ISO 8601 precision, and the leap
// adjustment as an ISO 8601 duration when present.
func (d DatedInstant) MarshalJSON() ([]byte, error) {
	b := fmt.Appendf(
		nil, `{"moment":%q,"precision":%q`,
		d.Format(), d.Period().String(),
	)
	if d.HasLeap {
		b = fmt.Appendf(b, `,"leap":%q`, durationPeriod(d.Leap).String())
	}
	return append(b, '}'), nil
}
