package resolve

import (
	"fmt"
	"time"

	"github.com/theory/isodate/iso8601/types"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Time resolves v to a clock time within the day. A fraction is applied to
// the last written component, truncated to whole microseconds, and carried
// into the higher fields.
//
// Two inputs name times past the end of the day. "24:00:00" (or "24:00" or
// "24", with no fraction) resolves to 23:59:59 with one second of overflow.
// A 60th second is handled by policy; when it lands after 23:59:59 the
// excess is returned as overflow as well, and the time of day stays at
// 23:59:59. Overflow is never an error here; callers decide.
//
// HasLeap is set whenever the input names a 60th second. Leap is then one
// second for RepeatPrevious, the discarded fraction for HoldAtZero, and zero
// for RepeatNext. The Raise policy returns an error wrapping
// types.ErrLeapSecond.
//
// The location of the time of day is built from the zone designator. When
// signedZero is true, a "-00:00" zone keeps its sign in the location name.
func Time(v types.TimeVariant, policy types.LeapPolicy, signedZero bool) (types.ResolvedTime, error) {
	var (
		hour, minute, second int
		frac                 types.Fraction
		unit                 time.Duration
	)
	switch v := v.(type) {
	case types.Hour:
		hour, frac, unit = v.Hour, v.Fraction, time.Hour
	case types.Minute:
		hour, minute, frac, unit = v.Hour, v.Minute, v.Fraction, time.Minute
	case types.Second:
		hour, minute, second, frac, unit = v.Hour, v.Minute, v.Second, v.Fraction, time.Second
	default:
		panic(fmt.Sprintf("resolve: unknown time variant %T", v))
	}

	res := types.ResolvedTime{
		Zone:      v.Zone(),
		Precision: frac.Precision(unit),
	}
	loc := res.Zone.Location(signedZero)

	if hour == 24 && minute == 0 && second == 0 && frac.IsZero() {
		res.TimeOfDay = time.Date(0, 1, 1, 23, 59, 59, 0, loc)
		res.Overflow = time.Second
		return res, nil
	}

	if hour > 23 || minute > 59 || second > 60 {
		return types.ResolvedTime{}, fmt.Errorf(
			"%w: %v: field out of range", types.ErrInvalidTime, v,
		)
	}

	sub := frac.Of(unit)
	if second == 60 {
		res.HasLeap = true
		switch policy {
		case types.RepeatPrevious:
			second = 59
			res.Leap = time.Second
		case types.HoldAtZero:
			res.Leap = sub
			sub = 0
		case types.RepeatNext:
		case types.Raise:
			return types.ResolvedTime{}, fmt.Errorf(
				"%w: %v names a 60th second", types.ErrLeapSecond, v,
			)
		default:
			panic(fmt.Sprintf("resolve: unknown leap policy %v", policy))
		}
	}

	secs := hour*secondsPerHour + minute*secondsPerMinute + second + int(sub/time.Second)
	sub %= time.Second
	if secs >= secondsPerDay {
		res.Overflow = time.Duration(secs-secondsPerDay+1) * time.Second
		secs = secondsPerDay - 1
	}

	res.TimeOfDay = time.Date(
		0, 1, 1,
		secs/secondsPerHour, secs%secondsPerHour/secondsPerMinute, secs%secondsPerMinute,
		int(sub), loc,
	)
	return res, nil
}
