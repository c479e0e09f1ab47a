// Package iso8601 parses dates, times, and date times in the notations of
// ISO 8601:2019, including the rarely used ones: truncated years and
// centuries, ordinal dates, week dates, fractional hours and minutes, leap
// seconds, and signed extended years of any width.
//
// Each parse returns where the denoted span starts and how wide it is.
// "2019-12" starts on December 1 and lasts 31 days; "12.5" starts at 12:30
// and lasts 6 minutes, the width of its last digit.
//
// Parsing is pure: no state is shared between calls except compiled
// grammars, and all functions are safe for concurrent use.
package iso8601

import (
	"fmt"

	"github.com/theory/isodate/iso8601/grammar"
	"github.com/theory/isodate/iso8601/resolve"
	"github.com/theory/isodate/iso8601/types"
)

var (
	// ErrInvalidDate wraps errors for dates that do not parse or do not
	// exist.
	ErrInvalidDate = types.ErrInvalidDate

	// ErrInvalidTime wraps errors for times that do not parse or are out of
	// range.
	ErrInvalidTime = types.ErrInvalidTime

	// ErrInvalidFraction wraps errors for malformed decimal fractions.
	ErrInvalidFraction = types.ErrInvalidFraction

	// ErrAmbiguousCombination wraps errors for a time attached to a date
	// wider than a day.
	ErrAmbiguousCombination = types.ErrAmbiguousCombination

	// ErrTimeOverflow wraps errors for times past the end of the day when
	// overflow is not allowed.
	ErrTimeOverflow = types.ErrTimeOverflow

	// ErrLeapSecond wraps errors for leap seconds under types.Raise.
	ErrLeapSecond = types.ErrLeapSecond
)

// ClassifyDate returns the representation src uses without resolving it to
// a calendar date. Only WithYearDigits applies.
func ClassifyDate(src string, opt ...Option) (types.DateVariant, error) {
	cfg := NewConfig(opt...)
	v, _, err := grammar.ClassifyDate(src, cfg.YearDigits)
	//nolint:wrapcheck // Okay to return unwrapped error
	return v, err
}

// ClassifyTime returns the representation src uses without resolving it to a
// time of day.
func ClassifyTime(src string) (types.TimeVariant, error) {
	v, _, err := grammar.ClassifyTime(src)
	//nolint:wrapcheck // Okay to return unwrapped error
	return v, err
}

// ParseDate parses an ISO 8601 date in any of its representations and
// returns the period it denotes:
//
//	2019-12-12, 20191212    the day, 1 day
//	2019-346, 2019346       the 346th day of 2019, 1 day
//	2019-W50-4, 2019W504    Thursday of ISO week 50, 1 day
//	2019-W50, 2019W50       Monday of ISO week 50, 7 days
//	2019-12                 December 1, 31 days
//	2019                    January 1, 365 days
//	20                      January 1, 2000, 36525 days
//
// Years may carry a sign and more than four digits, "+02019-12-12"; use
// WithYearDigits to set the width.
func ParseDate(src string, opt ...Option) (types.ResolvedPeriod, error) {
	cfg := NewConfig(opt...)
	p, _, err := parseDate(src, cfg)
	return p, err
}

func parseDate(src string, cfg Config) (types.ResolvedPeriod, types.Notation, error) {
	v, notation, err := grammar.ClassifyDate(src, cfg.YearDigits)
	if err != nil {
		return types.ResolvedPeriod{}, notation, err //nolint:wrapcheck
	}
	p, err := resolve.Date(v)
	if err != nil {
		return types.ResolvedPeriod{}, notation, err //nolint:wrapcheck
	}
	return p, notation, nil
}

// ParseTime parses an ISO 8601 time of day: "12", "12:34", or "12:34:56",
// with or without colons, with an optional fraction of the last component
// ("12.5", "12:34,5", "12:34:56.789"), and an optional time zone designator
// ("Z", "+09", "+0930", "-09:30").
//
// "24:00:00" and leap seconds that end past midnight fail with an error
// wrapping ErrTimeOverflow unless WithOverflow is passed. WithLeapPolicy
// chooses how a 60th second resolves.
func ParseTime(src string, opt ...Option) (types.ResolvedTime, error) {
	cfg := NewConfig(opt...)
	t, _, err := parseTime(src, cfg)
	if err != nil {
		return types.ResolvedTime{}, err
	}
	if t.Overflow != 0 && !cfg.AllowOverflow {
		return types.ResolvedTime{}, fmt.Errorf(
			"%w: %q ends %v past the end of the day", ErrTimeOverflow, src, t.Overflow,
		)
	}
	return t, nil
}

func parseTime(src string, cfg Config) (types.ResolvedTime, types.Notation, error) {
	v, notation, err := grammar.ClassifyTime(src)
	if err != nil {
		return types.ResolvedTime{}, notation, err //nolint:wrapcheck
	}
	t, err := resolve.Time(v, cfg.LeapPolicy, cfg.SignedZeroOffset)
	if err != nil {
		return types.ResolvedTime{}, notation, err //nolint:wrapcheck
	}
	return t, notation, nil
}

// ParseDateTime parses an ISO 8601 date optionally followed by "T" and a
// time of day. Without a time it returns the start and width of the date.
// With one, the date must be a single day (a calendar, ordinal, or week
// date) or the error wraps ErrAmbiguousCombination; the result is the
// combined moment in the time's zone, with any overflow added, the time's
// precision, and its leap-second information.
func ParseDateTime(src string, opt ...Option) (types.DatedInstant, error) {
	cfg := NewConfig(opt...)
	datePart, timePart, hasTime := resolve.Split(src)

	p, dateNotation, err := parseDate(datePart, cfg)
	if err != nil {
		return types.DatedInstant{}, err
	}
	if !hasTime {
		return resolve.DateOnly(p), nil
	}
	if err := resolve.SingleDay(p); err != nil {
		return types.DatedInstant{}, err //nolint:wrapcheck
	}

	t, timeNotation, err := parseTime(timePart, cfg)
	if err != nil {
		return types.DatedInstant{}, err
	}

	if cfg.StrictNotation && !dateNotation.Compatible(timeNotation) {
		return types.DatedInstant{}, fmt.Errorf(
			"%w: %q mixes %v date and %v time notation",
			ErrInvalidTime, src, dateNotation, timeNotation,
		)
	}

	//nolint:wrapcheck // Okay to return unwrapped error
	return resolve.Combine(p, t)
}

// MustParseDateTime is like ParseDateTime but panics on parse failure.
func MustParseDateTime(src string, opt ...Option) types.DatedInstant {
	d, err := ParseDateTime(src, opt...)
	if err != nil {
		panic(err)
	}
	return d
}
