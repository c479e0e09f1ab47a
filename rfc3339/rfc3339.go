// Package rfc3339 parses the date and date-time strings of RFC 3339, the
// compact profile of ISO 8601 used by most Internet protocols:
//
//	2019-12-12
//	2019-12-12T20:50:53Z
//	2019-12-12T20:50:53.123456789+09:30
//
// Years are always four digits and the date is always a complete calendar
// date in extended notation; ordinal dates, week dates, truncated dates,
// extended years, fractional hours and minutes, and "24:00:00" are
// rejected by the grammar. Fractions of a second may have any number of
// digits and are truncated to microseconds. A 60th second is resolved with
// the leap-second policies of the iso8601 package.
package rfc3339

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
	"github.com/theory/isodate/iso8601"
	"github.com/theory/isodate/iso8601/grammar"
	"github.com/theory/isodate/iso8601/resolve"
	"github.com/theory/isodate/iso8601/types"
)

const pattern = `\A(?<Y>[0-9]{4})-(?<M>[0-9]{2})-(?<D>[0-9]{2})` +
	`(?:[Tt](?<h>[0-9]{2}):(?<m>[0-9]{2}):(?<s>[0-9]{2})(?<f>\.[0-9]+)?` +
	`(?<tz>[Zz]|[-+][0-9]{2}:[0-9]{2})?)?\z`

//nolint:gochecknoglobals
var dateTimeGrammar = regexp2.MustCompile(pattern, regexp2.None)

// Parse parses src as an RFC 3339 date or date-time. A date alone yields a
// one-day instant without a time. A date-time yields an instant whose
// precision is the width of the last written digit of the seconds.
//
// Only the iso8601.WithLeapPolicy and iso8601.WithSignedZeroOffset options
// apply. A time without a zone designator is accepted and treated as
// floating, as ISO 8601 allows.
func Parse(src string, opt ...iso8601.Option) (types.DatedInstant, error) {
	cfg := iso8601.NewConfig(opt...)

	m, err := dateTimeGrammar.FindStringMatch(src)
	if err != nil {
		return types.DatedInstant{}, fmt.Errorf("%w: %w", types.ErrInvalidDate, err)
	}
	if m == nil {
		return types.DatedInstant{}, fmt.Errorf(
			"%w: %q is not an RFC 3339 date-time", types.ErrInvalidDate, src,
		)
	}
	text := func(name string) string { return m.GroupByName(name).String() }
	field := func(name string) int {
		// The grammar captured two or four ASCII digits.
		n, _ := strconv.Atoi(text(name))
		return n
	}

	day, err := resolve.Date(types.CalendarDay{
		Year: field("Y"), Month: field("M"), Day: field("D"),
	})
	if err != nil {
		return types.DatedInstant{}, err //nolint:wrapcheck
	}
	if len(m.GroupByName("h").Captures) == 0 {
		return resolve.DateOnly(day), nil
	}

	if hour := field("h"); hour > 23 {
		return types.DatedInstant{}, fmt.Errorf(
			"%w: hour %d out of range in %q", types.ErrInvalidTime, hour, src,
		)
	}
	tz, err := grammar.ParseTimezone(text("tz"))
	if err != nil {
		return types.DatedInstant{}, err //nolint:wrapcheck
	}
	frac, err := types.ParseFraction(text("f"))
	if err != nil {
		return types.DatedInstant{}, err //nolint:wrapcheck
	}

	t, err := resolve.Time(types.Second{
		Hour:     field("h"),
		Minute:   field("m"),
		Second:   field("s"),
		Fraction: frac,
		TZ:       tz,
	}, cfg.LeapPolicy, cfg.SignedZeroOffset)
	if err != nil {
		return types.DatedInstant{}, err //nolint:wrapcheck
	}

	//nolint:wrapcheck // Okay to return unwrapped error
	return resolve.Combine(day, t)
}
