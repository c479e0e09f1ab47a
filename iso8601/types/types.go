// Package types provides the value types produced by ISO 8601 parsing: the
// closed sets of date and time representations recognized by the grammar,
// the fractions and time zone designators they carry, and the resolved
// periods, times, and instants they map to.
//
// All values are immutable and safe to share between goroutines.
package types

import (
	"errors"
	"time"
)

var (
	// ErrInvalidDate wraps errors for date strings that do not match the
	// grammar or name a day, week, or month the calendar does not have.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime wraps errors for time strings that do not match the
	// grammar or carry an out-of-range clock field.
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidFraction wraps errors for malformed decimal fractions.
	ErrInvalidFraction = errors.New("invalid fraction")

	// ErrAmbiguousCombination wraps errors for a time of day attached to a
	// date wider than one day.
	ErrAmbiguousCombination = errors.New("ambiguous combination")

	// ErrTimeOverflow wraps errors for times that overflow the day (24:00:00
	// or a leap second) when overflow is not allowed.
	ErrTimeOverflow = errors.New("time overflow")

	// ErrLeapSecond wraps errors for a 60th second parsed under the Raise
	// leap policy.
	ErrLeapSecond = errors.New("leap second")
)

const (
	// Day is the length of a calendar day, ignoring leap seconds.
	Day = 24 * time.Hour

	// WeekLength is the length of an ISO week.
	WeekLength = 7 * Day

	// Tick is the finest precision a resolved time carries. Fractions finer
	// than a microsecond are truncated, and precisions below it are raised
	// to it.
	Tick = time.Microsecond
)

//nolint:gochecknoglobals
var (
	// floatingZone is the location of values parsed without a time zone
	// designator.
	floatingZone = time.FixedZone("", 0)
)

// Notation records whether a string used the basic (no separators) or
// extended (with separators) ISO 8601 format. Strings with a single
// component, such as "2019" or "12", are neutral.
type Notation uint8

const (
	// NotationNeutral means the string had nothing to separate.
	NotationNeutral Notation = iota

	// NotationBasic means components were written without separators.
	NotationBasic

	// NotationExtended means components were separated by "-" or ":".
	NotationExtended
)

// String returns "neutral", "basic", or "extended".
func (n Notation) String() string {
	switch n {
	case NotationBasic:
		return "basic"
	case NotationExtended:
		return "extended"
	default:
		return "neutral"
	}
}

// Compatible returns true unless n and m are one basic and one extended.
func (n Notation) Compatible(m Notation) bool {
	return n == NotationNeutral || m == NotationNeutral || n == m
}
