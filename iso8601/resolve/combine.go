package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/theory/isodate/iso8601/types"
)

// Split splits src at its first "T" or "t" into the date and time parts.
// hasTime is false when there is no separator, in which case the whole of
// src is the date.
func Split(src string) (datePart, timePart string, hasTime bool) {
	i := strings.IndexAny(src, "Tt")
	if i < 0 {
		return src, "", false
	}
	return src[:i], src[i+1:], true
}

// DateOnly returns the instant for a date without a time of day: the start
// of the period, with the period's precision and no leap information.
func DateOnly(p types.ResolvedPeriod) types.DatedInstant {
	return types.DatedInstant{Moment: p.Start, Precision: p.Precision}
}

// SingleDay returns an error wrapping types.ErrAmbiguousCombination unless p
// is exactly one day long.
func SingleDay(p types.ResolvedPeriod) error {
	if p.Precision != types.Day {
		return fmt.Errorf(
			"%w: a time of day requires a single day, not a period of %v",
			types.ErrAmbiguousCombination, p.Period(),
		)
	}
	return nil
}

// Combine attaches the time of day t to the single day p. It returns an
// error wrapping types.ErrAmbiguousCombination when p is wider than one day,
// because a time of day within a month or a week names no single instant.
//
// The overflow of t is added to the combined moment, so "23:59:60" under
// HoldAtZero moves to midnight of the next day. The precision of the result
// is that of t, and its leap information is copied from t.
func Combine(p types.ResolvedPeriod, t types.ResolvedTime) (types.DatedInstant, error) {
	if err := SingleDay(p); err != nil {
		return types.DatedInstant{}, err
	}

	year, month, day := p.Start.Date()
	hour, minute, second := t.Clock()
	moment := time.Date(
		year, month, day,
		hour, minute, second, t.TimeOfDay.Nanosecond(),
		t.TimeOfDay.Location(),
	).Add(t.Overflow)

	return types.DatedInstant{
		Moment:    moment,
		Zone:      t.Zone,
		HasTime:   true,
		Precision: t.Precision,
		Leap:      t.Leap,
		HasLeap:   t.HasLeap,
	}, nil
}
