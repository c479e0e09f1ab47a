package types

import (
	"fmt"
	"time"
)

// ZoneKind identifies the three forms of time zone designator.
type ZoneKind uint8

const (
	// ZoneUnspecified means no designator: a floating, local time.
	ZoneUnspecified ZoneKind = iota

	// ZoneUTC means "Z" or "z".
	ZoneUTC

	// ZoneOffset means a "+HH[:MM]" or "-HH[:MM]" offset.
	ZoneOffset
)

// Timezone is a parsed time zone designator. The zero value is unspecified.
// Offsets keep the hours and minutes as written for String.
type Timezone struct {
	kind     ZoneKind
	offset   time.Duration
	negative bool
	hours    int
	minutes  int
}

// UTC is the Timezone for "Z".
//
//nolint:gochecknoglobals
var UTC = Timezone{kind: ZoneUTC}

// NewOffset returns a fixed-offset Timezone for hours and minutes east of UTC,
// or west of UTC when negative is true. Offsets are not range-checked: any
// two-digit hour and minute is accepted.
func NewOffset(negative bool, hours, minutes int) Timezone {
	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if negative {
		offset = -offset
	}
	return Timezone{
		kind:     ZoneOffset,
		offset:   offset,
		negative: negative,
		hours:    hours,
		minutes:  minutes,
	}
}

// Kind returns the form of the designator.
func (tz Timezone) Kind() ZoneKind { return tz.kind }

// IsSpecified returns false for values parsed without a designator.
func (tz Timezone) IsSpecified() bool { return tz.kind != ZoneUnspecified }

// Offset returns the signed offset from UTC. It is zero for UTC and
// unspecified zones.
func (tz Timezone) Offset() time.Duration { return tz.offset }

// IsNegativeZero returns true for the "-00:00" designator, which ISO 8601
// uses to mean UTC with the local offset unknown.
func (tz Timezone) IsNegativeZero() bool {
	return tz.kind == ZoneOffset && tz.negative && tz.offset == 0
}

// Name returns the display name of tz: "" when unspecified, "UTC" for "Z",
// and "UTC+HH:MM" or "UTC-HH:MM" for offsets. The name is computed from the
// offset, so "-00:00" is named "UTC+00:00" and "+99:99" "UTC+100:39".
func (tz Timezone) Name() string {
	switch tz.kind {
	case ZoneUTC:
		return "UTC"
	case ZoneOffset:
		return offsetName(tz.offset < 0, tz.offset)
	default:
		return ""
	}
}

// SignedName is like Name but keeps the sign as written, so "-00:00" is
// named "UTC-00:00".
func (tz Timezone) SignedName() string {
	if tz.IsNegativeZero() {
		return offsetName(true, 0)
	}
	return tz.Name()
}

// String returns the ISO 8601 designator for tz: "", "Z", or "±HH:MM" with
// the sign, hours, and minutes as written.
func (tz Timezone) String() string {
	switch tz.kind {
	case ZoneUTC:
		return "Z"
	case ZoneOffset:
		sign := '+'
		if tz.negative {
			sign = '-'
		}
		return fmt.Sprintf("%c%02d:%02d", sign, tz.hours, tz.minutes)
	default:
		return ""
	}
}

// Location returns a time.Location for tz. Unspecified zones map to an
// unnamed zero-offset location, "Z" to time.UTC, and offsets to a fixed zone
// named by Name, or by SignedName when signedZero is true.
func (tz Timezone) Location(signedZero bool) *time.Location {
	switch tz.kind {
	case ZoneUTC:
		return time.UTC
	case ZoneOffset:
		name := tz.Name()
		if signedZero {
			name = tz.SignedName()
		}
		return time.FixedZone(name, int(tz.offset/time.Second))
	default:
		return floatingZone
	}
}

// offsetName formats an offset as "UTC±HH:MM" from its magnitude.
func offsetName(negative bool, offset time.Duration) string {
	sign := '+'
	if negative {
		sign = '-'
	}
	if offset < 0 {
		offset = -offset
	}
	minutes := int(offset / time.Minute)
	return fmt.Sprintf("UTC%c%02d:%02d", sign, minutes/60, minutes%60)
}
