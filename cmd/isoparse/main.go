// Command isoparse parses ISO 8601 dates, times, and date times given as
// arguments and prints each result as a line of JSON.
//
// Usage:
//
//	isoparse [flags] string...
//
// Each input that fails to parse is reported on standard error and the
// command exits with status 1.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/theory/isodate/iso8601"
	"github.com/theory/isodate/iso8601/types"
	"github.com/theory/isodate/rfc3339"
)

const (
	modeDate     = "date"
	modeTime     = "time"
	modeDateTime = "datetime"
	modeRFC3339  = "rfc3339"
)

// options are the parsed command-line flags.
type options struct {
	mode       string
	yearDigits int
	leap       types.LeapPolicy
	overflow   bool
	signedZero bool
	strict     bool
}

func main() {
	logger := log.New(os.Stderr, "isoparse: ", 0)
	opts, args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Print(err)
		os.Exit(2)
	}
	if failed := run(os.Stdout, logger, opts, args); failed > 0 {
		os.Exit(1)
	}
}

// parseFlags parses args into options and the strings to parse.
func parseFlags(args []string, output io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := flag.NewFlagSet("isoparse", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.mode, "mode", modeDateTime, "what to parse: date, time, datetime, or rfc3339")
	fs.IntVar(&opts.yearDigits, "year-digits", 4, "minimum digits of signed extended years")
	leap := fs.String("leap", "hold", "leap second policy: "+strings.Join(types.LeapPolicyNames(), ", "))
	fs.BoolVar(&opts.overflow, "overflow", false, "allow times past the end of the day in time mode")
	fs.BoolVar(&opts.signedZero, "signed-zero", false, `name a "-00:00" offset UTC-00:00`)
	fs.BoolVar(&opts.strict, "strict", false, "reject date times mixing basic and extended notation")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: isoparse [flags] string...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	policy, err := types.ParseLeapPolicy(*leap)
	if err != nil {
		return nil, nil, err
	}
	opts.leap = policy

	switch opts.mode {
	case modeDate, modeTime, modeDateTime, modeRFC3339:
	default:
		return nil, nil, fmt.Errorf("unknown mode %q", opts.mode)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, errors.New("no strings to parse")
	}
	return opts, fs.Args(), nil
}

// isoOptions converts opts to parse options.
func (opts *options) isoOptions() []iso8601.Option {
	o := []iso8601.Option{
		iso8601.WithYearDigits(opts.yearDigits),
		iso8601.WithLeapPolicy(opts.leap),
	}
	if opts.overflow {
		o = append(o, iso8601.WithOverflow())
	}
	if opts.signedZero {
		o = append(o, iso8601.WithSignedZeroOffset())
	}
	if opts.strict {
		o = append(o, iso8601.WithStrictNotation())
	}
	return o
}

// run parses each of args, writes the results to out as JSON lines, and
// logs failures. It returns the number of failures.
func run(out io.Writer, logger *log.Logger, opts *options, args []string) int {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	iso := opts.isoOptions()

	failed := 0
	for _, arg := range args {
		res, err := parse(opts.mode, arg, iso)
		if err == nil {
			err = enc.Encode(result{Input: arg, Value: res})
		}
		if err != nil {
			logger.Print(err)
			failed++
		}
	}
	return failed
}

// result is a line of output.
type result struct {
	Input string `json:"input"`
	Value any    `json:"value"`
}

// parse parses src according to mode.
func parse(mode, src string, opt []iso8601.Option) (any, error) {
	switch mode {
	case modeDate:
		return iso8601.ParseDate(src, opt...)
	case modeTime:
		return iso8601.ParseTime(src, opt...)
	case modeRFC3339:
		return rfc3339.Parse(src, opt...)
	default:
		return iso8601.ParseDateTime(src, opt...)
	}
}
