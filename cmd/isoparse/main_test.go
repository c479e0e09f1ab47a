package main

import (
	"bytes"
	"flag"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/isodate/iso8601"
	"github.com/theory/isodate/iso8601/types"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		opts *options
		rest []string
	}{
		{
			name: "defaults",
			args: []string{"2019-12-12"},
			opts: &options{mode: modeDateTime, yearDigits: 4},
			rest: []string{"2019-12-12"},
		},
		{
			name: "all",
			args: []string{
				"-mode", "time", "-year-digits", "6", "-leap", "previous",
				"-overflow", "-signed-zero", "-strict", "24:00", "12:00",
			},
			opts: &options{
				mode:       modeTime,
				yearDigits: 6,
				leap:       types.RepeatPrevious,
				overflow:   true,
				signedZero: true,
				strict:     true,
			},
			rest: []string{"24:00", "12:00"},
		},
		{
			name: "numeric_leap",
			args: []string{"-mode", "rfc3339", "-leap", "+1", "2019-12-12"},
			opts: &options{mode: modeRFC3339, yearDigits: 4, leap: types.RepeatNext},
			rest: []string{"2019-12-12"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			var buf bytes.Buffer
			opts, rest, err := parseFlags(tc.args, &buf)
			require.NoError(t, err)
			a.Equal(tc.opts, opts)
			a.Equal(tc.rest, rest)
			a.Empty(buf.String())
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		args  []string
		err   string
		usage bool
	}{
		{
			name: "mode",
			args: []string{"-mode", "week", "2019"},
			err:  `unknown mode "week"`,
		},
		{
			name: "leap",
			args: []string{"-leap", "smear", "2019"},
			err:  `unknown leap second policy "smear": expected one of hold, next, previous, raise`,
		},
		{
			name:  "no_args",
			args:  []string{"-mode", "date"},
			err:   "no strings to parse",
			usage: true,
		},
		{
			name:  "unknown_flag",
			args:  []string{"-nope", "2019"},
			err:   "flag provided but not defined: -nope",
			usage: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			var buf bytes.Buffer
			opts, rest, err := parseFlags(tc.args, &buf)
			require.EqualError(t, err, tc.err)
			a.Nil(opts)
			a.Nil(rest)
			if tc.usage {
				a.Contains(buf.String(), "Usage: isoparse [flags] string...")
			}
		})
	}

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, _, err := parseFlags([]string{"-h"}, &buf)
		require.ErrorIs(t, err, flag.ErrHelp)
		assert.Contains(t, buf.String(), "-year-digits")
		assert.Contains(t, buf.String(), "hold, next, previous, raise")
	})
}

func TestIsoOptions(t *testing.T) {
	t.Parallel()

	opts := &options{yearDigits: 5, leap: types.Raise, overflow: true, strict: true}
	assert.Equal(t, iso8601.Config{
		YearDigits:     5,
		LeapPolicy:     types.Raise,
		AllowOverflow:  true,
		StrictNotation: true,
	}, iso8601.NewConfig(opts.isoOptions()...))
}

func TestRun(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		opts   *options
		args   []string
		out    string
		log    string
		failed int
	}{
		{
			name:   "date",
			opts:   &options{mode: modeDate, yearDigits: 4},
			args:   []string{"2019-12", "2019-13"},
			out:    `{"input":"2019-12","value":{"start":"2019-12-01","precision":"P31D"}}` + "\n",
			log:    "isoparse: invalid date: 2019-13: month 13 out of range 1-12\n",
			failed: 1,
		},
		{
			name: "date_year_digits",
			opts: &options{mode: modeDate, yearDigits: 5},
			args: []string{"+0002"},
			out:  `{"input":"+0002","value":{"start":"0200-01-01","precision":"P36524D"}}` + "\n",
		},
		{
			name:   "time_overflow_rejected",
			opts:   &options{mode: modeTime, yearDigits: 4},
			args:   []string{"24:00:00"},
			log:    `isoparse: time overflow: "24:00:00" ends 1s past the end of the day` + "\n",
			failed: 1,
		},
		{
			name: "time_overflow",
			opts: &options{mode: modeTime, yearDigits: 4, overflow: true},
			args: []string{"24:00:00"},
			out: `{"input":"24:00:00","value":` +
				`{"time":"23:59:59","overflow":"PT1S","precision":"PT1S"}}` + "\n",
		},
		{
			name: "time_leap_signed_zero",
			opts: &options{mode: modeTime, yearDigits: 4, leap: types.RepeatPrevious, signedZero: true},
			args: []string{"23:59:60-00:00"},
			out: `{"input":"23:59:60-00:00","value":` +
				`{"time":"23:59:59","zone":"UTC-00:00","leap":"PT1S","precision":"PT1S"}}` + "\n",
		},
		{
			name: "datetime",
			opts: &options{mode: modeDateTime, yearDigits: 4, leap: types.RepeatPrevious},
			args: []string{"2019-12-12T23:59:60Z", "2019-12T10:00"},
			out: `{"input":"2019-12-12T23:59:60Z","value":` +
				`{"moment":"2019-12-12T23:59:59Z","precision":"PT1S","leap":"PT1S"}}` + "\n",
			log:    "isoparse: ambiguous combination: a time of day requires a single day, not a period of P31D\n",
			failed: 1,
		},
		{
			name:   "datetime_strict",
			opts:   &options{mode: modeDateTime, yearDigits: 4, strict: true},
			args:   []string{"2019-12-12T123456Z"},
			log:    `isoparse: invalid time: "2019-12-12T123456Z" mixes extended date and basic time notation` + "\n",
			failed: 1,
		},
		{
			name: "rfc3339",
			opts: &options{mode: modeRFC3339, yearDigits: 4},
			args: []string{"2019-12-12T20:50:53.5+09:00", "2019-346"},
			out: `{"input":"2019-12-12T20:50:53.5+09:00","value":` +
				`{"moment":"2019-12-12T20:50:53.5+09:00","precision":"PT0.1S"}}` + "\n",
			log:    `isoparse: invalid date: "2019-346" is not an RFC 3339 date-time` + "\n",
			failed: 1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			var out, errs bytes.Buffer
			logger := log.New(&errs, "isoparse: ", 0)
			failed := run(&out, logger, tc.opts, tc.args)
			a.Equal(tc.failed, failed)
			a.Equal(tc.out, out.String())
			a.Equal(tc.log, errs.String())
		})
	}
}
