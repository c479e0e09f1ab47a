package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimezone(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		tz        Timezone
		kind      ZoneKind
		offset    time.Duration
		zoneName  string
		signed    string
		str       string
		negZero   bool
		specified bool
	}{
		{
			name:     "unspecified",
			tz:       Timezone{},
			kind:     ZoneUnspecified,
			zoneName: "",
			signed:   "",
			str:      "",
		},
		{
			name:      "utc",
			tz:        UTC,
			kind:      ZoneUTC,
			zoneName:  "UTC",
			signed:    "UTC",
			str:       "Z",
			specified: true,
		},
		{
			name:      "east",
			tz:        NewOffset(false, 9, 0),
			kind:      ZoneOffset,
			offset:    9 * time.Hour,
			zoneName:  "UTC+09:00",
			signed:    "UTC+09:00",
			str:       "+09:00",
			specified: true,
		},
		{
			name:      "west_minutes",
			tz:        NewOffset(true, 9, 30),
			kind:      ZoneOffset,
			offset:    -9*time.Hour - 30*time.Minute,
			zoneName:  "UTC-09:30",
			signed:    "UTC-09:30",
			str:       "-09:30",
			specified: true,
		},
		{
			name:      "positive_zero",
			tz:        NewOffset(false, 0, 0),
			kind:      ZoneOffset,
			zoneName:  "UTC+00:00",
			signed:    "UTC+00:00",
			str:       "+00:00",
			specified: true,
		},
		{
			name:      "out_of_range",
			tz:        NewOffset(false, 99, 99),
			kind:      ZoneOffset,
			offset:    100*time.Hour + 39*time.Minute,
			zoneName:  "UTC+100:39",
			signed:    "UTC+100:39",
			str:       "+99:99",
			specified: true,
		},
		{
			name:      "west_out_of_range",
			tz:        NewOffset(true, 0, 75),
			kind:      ZoneOffset,
			offset:    -75 * time.Minute,
			zoneName:  "UTC-01:15",
			signed:    "UTC-01:15",
			str:       "-00:75",
			specified: true,
		},
		{
			name:      "negative_zero",
			tz:        NewOffset(true, 0, 0),
			kind:      ZoneOffset,
			zoneName:  "UTC+00:00",
			signed:    "UTC-00:00",
			str:       "-00:00",
			negZero:   true,
			specified: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Equal(tc.kind, tc.tz.Kind())
			a.Equal(tc.offset, tc.tz.Offset())
			a.Equal(tc.zoneName, tc.tz.Name())
			a.Equal(tc.signed, tc.tz.SignedName())
			a.Equal(tc.str, tc.tz.String())
			a.Equal(tc.negZero, tc.tz.IsNegativeZero())
			a.Equal(tc.specified, tc.tz.IsSpecified())

			// Location names follow Name unless signedZero is set.
			a.Equal(tc.zoneName, tc.tz.Location(false).String())
			a.Equal(tc.signed, tc.tz.Location(true).String())

			_, off := time.Date(2019, 12, 12, 0, 0, 0, 0, tc.tz.Location(false)).Zone()
			a.Equal(int(tc.offset/time.Second), off)
		})
	}
}

func TestTimezoneLocationUTC(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Same(time.UTC, UTC.Location(false))
	a.Same(time.UTC, UTC.Location(true))
	a.Same(floatingZone, Timezone{}.Location(false))
}
