package iso8601

import (
	"github.com/theory/isodate/iso8601/grammar"
	"github.com/theory/isodate/iso8601/types"
)

// Config holds the settings of a parse. Build it with NewConfig; the zero
// value differs from the defaults only in YearDigits, which is then treated
// as four.
type Config struct {
	// YearDigits is the minimum number of digits in a signed extended year.
	YearDigits int

	// LeapPolicy determines how a 60th second is resolved.
	LeapPolicy types.LeapPolicy

	// AllowOverflow makes ParseTime return overflowing times instead of
	// ErrTimeOverflow.
	AllowOverflow bool

	// SignedZeroOffset names the location of a "-00:00" offset "UTC-00:00"
	// rather than "UTC+00:00".
	SignedZeroOffset bool

	// StrictNotation rejects date times that mix basic and extended
	// notation between the date and the time.
	StrictNotation bool
}

// Option specifies a parse setting.
type Option func(*Config)

// NewConfig returns the default Config with opt applied.
func NewConfig(opt ...Option) Config {
	cfg := Config{YearDigits: grammar.DefaultYearDigits}
	for _, o := range opt {
		o(&cfg)
	}
	return cfg
}

// WithYearDigits sets the minimum number of digits of years written with a
// leading sign, such as "+02019". The default is four. The same string can
// resolve differently under different widths: "+0002" is the year 2 with
// four digits but the years 200-299 with five. Choose the width the source
// of the data uses; ISO 8601 leaves it to agreement between the parties.
func WithYearDigits(n int) Option { return func(c *Config) { c.YearDigits = n } }

// WithLeapPolicy sets the policy applied to a 60th second. The default is
// types.HoldAtZero.
func WithLeapPolicy(p types.LeapPolicy) Option { return func(c *Config) { c.LeapPolicy = p } }

// WithOverflow allows ParseTime to return times that overflow the day, with
// the excess in ResolvedTime.Overflow. Without it, "24:00:00" and leap
// seconds that move past midnight fail with ErrTimeOverflow. ParseDateTime
// always allows overflow and adds it to the date.
func WithOverflow() Option { return func(c *Config) { c.AllowOverflow = true } }

// WithSignedZeroOffset keeps the minus sign in the location name of a
// "-00:00" offset, "UTC-00:00" instead of "UTC+00:00". See also
// types.Timezone.SignedName.
func WithSignedZeroOffset() Option { return func(c *Config) { c.SignedZeroOffset = true } }

// WithStrictNotation rejects date times that write the date in basic
// notation and the time in extended notation or vice versa, such as
// "2019-12-12T123456Z". By default the two parts are checked independently.
func WithStrictNotation() Option { return func(c *Config) { c.StrictNotation = true } }
