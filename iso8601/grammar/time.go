package grammar

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/theory/isodate/iso8601/types"
)

// The time grammar. EXT holds ":" or "" and must repeat between minute and
// second. Only the last component may carry a fraction.
const timePattern = `\A(?<H>[0-9]{2})` +
	`(?:(?<HF>[,.][0-9]+)` +
	`|(?<EXT>:?)(?<M>[0-9]{2})` +
	`(?:(?<MF>[,.][0-9]+)` +
	`|\k<EXT>(?<S>[0-9]{2})(?<SF>[,.][0-9]+)?)?)?` +
	`(?<TZ>[Zz]|[-+][0-9]{2}(?::?[0-9]{2})?)?\z`

// The time zone designator grammar, also used on its own by the RFC 3339
// front-end.
const zonePattern = `\A(?:(?<Z>[Zz])` +
	`|(?<SIGN>[-+])(?<TZH>[0-9]{2})(?::?(?<TZM>[0-9]{2}))?)?\z`

//nolint:gochecknoglobals
var (
	timeGrammar = regexp2.MustCompile(timePattern, regexp2.None)
	zoneGrammar = regexp2.MustCompile(zonePattern, regexp2.None)
)

// ClassifyTime matches src against the ISO 8601 time-of-day grammar and
// returns the representation it uses and its notation. The fraction and time
// zone designator are parsed but not range-checked.
func ClassifyTime(src string) (types.TimeVariant, types.Notation, error) {
	m, err := match(timeGrammar, src)
	if err != nil {
		return nil, types.NotationNeutral, fmt.Errorf("%w: %w", types.ErrInvalidTime, err)
	}
	if m == nil {
		return nil, types.NotationNeutral, fmt.Errorf(
			"%w: %q is not an ISO 8601 time", types.ErrInvalidTime, src,
		)
	}

	tzs, _ := group(m, "TZ")
	tz, err := ParseTimezone(tzs)
	if err != nil {
		return nil, types.NotationNeutral, err
	}

	notation := types.NotationNeutral
	if ext, ok := group(m, "EXT"); ok {
		notation = types.NotationBasic
		if ext == ":" {
			notation = types.NotationExtended
		}
	}

	// Every clock group is two ASCII digits, so number cannot fail.
	field := func(name string) int {
		n, _ := number(m, name)
		return n
	}
	fraction := func(name string) (types.Fraction, error) {
		s, _ := group(m, name)
		return types.ParseFraction(s)
	}

	var v types.TimeVariant
	if _, ok := group(m, "S"); ok {
		f, err := fraction("SF")
		if err != nil {
			return nil, notation, err
		}
		v = types.Second{Hour: field("H"), Minute: field("M"), Second: field("S"), Fraction: f, TZ: tz}
	} else if _, ok := group(m, "M"); ok {
		f, err := fraction("MF")
		if err != nil {
			return nil, notation, err
		}
		v = types.Minute{Hour: field("H"), Minute: field("M"), Fraction: f, TZ: tz}
	} else {
		f, err := fraction("HF")
		if err != nil {
			return nil, notation, err
		}
		v = types.Hour{Hour: field("H"), Fraction: f, TZ: tz}
	}
	return v, notation, nil
}

// ParseTimezone parses a time zone designator: "" (unspecified), "Z" or "z"
// (UTC), or a sign followed by two hour digits and optionally two minute
// digits, with an optional colon between them. Offsets are not range-checked,
// so "+99:99" is accepted.
func ParseTimezone(src string) (types.Timezone, error) {
	m, err := match(zoneGrammar, src)
	if err != nil {
		return types.Timezone{}, fmt.Errorf("%w: %w", types.ErrInvalidTime, err)
	}
	if m == nil {
		return types.Timezone{}, fmt.Errorf(
			"%w: %q is not a time zone designator", types.ErrInvalidTime, src,
		)
	}

	if _, ok := group(m, "Z"); ok {
		return types.UTC, nil
	}
	sign, ok := group(m, "SIGN")
	if !ok {
		return types.Timezone{}, nil
	}

	hours, _ := number(m, "TZH")
	minutes := 0
	if _, ok := group(m, "TZM"); ok {
		minutes, _ = number(m, "TZM")
	}
	return types.NewOffset(sign == "-", hours, minutes), nil
}
