package grammar

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
	"github.com/theory/isodate/iso8601/types"
)

// DefaultYearDigits is the minimum width of signed extended years unless
// configured otherwise.
const DefaultYearDigits = 4

// MaxYearDigits is the widest minimum width of signed extended years
// ClassifyDate accepts.
const MaxYearDigits = 32

// The date grammar. C holds the century digits, with the sign and the extra
// digits of an extended year; CY holds the two digits of the year within the
// century. EXT holds "-" or "" and must repeat between month and day and
// between week and weekday.
const (
	centuryPattern = `(?<C>(?:[+-][0-9]{%d,}?)?[0-9]{2})`
	yearPattern    = `(?<CY>[0-9]{2})`
	dayPattern     = `(?:(?<EXT>-?)` +
		`(?:(?<M>[01][0-9])\k<EXT>(?<D>[0-3][0-9])` +
		`|(?<YD>[0-3][0-9]{2})` +
		`|[Ww](?<W>[0-5][0-9])(?:\k<EXT>(?<WD>[1-7]))?)` +
		`|-(?<MO>[01][0-9]))`
)

//nolint:gochecknoglobals
var dateGrammars = &cache{compile: compileDate}

// compileDate compiles the date grammar requiring at least extra digits
// beyond four in signed years.
func compileDate(extra int) *regexp2.Regexp {
	return regexp2.MustCompile(
		`\A`+fmt.Sprintf(centuryPattern, extra)+
			`(?:`+yearPattern+dayPattern+`?)?\z`,
		regexp2.None,
	)
}

// dateGrammar returns the compiled date grammar for matching src with signed
// years of at least yearDigits digits. A signed year wider than src cannot
// match, so the extra digit count is capped at the length of src.
func dateGrammar(yearDigits int, src string) *regexp2.Regexp {
	return dateGrammars.get(min(max(yearDigits-DefaultYearDigits, 0), len(src)))
}

// ClassifyDate matches src against the ISO 8601 date grammar and returns the
// representation it uses and its notation. yearDigits is the minimum number
// of digits in a year written with a leading sign; values below four are
// treated as four, and values above MaxYearDigits are an error.
//
// The width resolves strings that the standard leaves ambiguous: with four
// digits "+0002" is the year 2, while with five it is the century 2 (the
// years 200 through 299). The year takes as few digits as it can while the
// rest of the string still matches.
func ClassifyDate(src string, yearDigits int) (types.DateVariant, types.Notation, error) {
	if yearDigits > MaxYearDigits {
		return nil, types.NotationNeutral, fmt.Errorf(
			"%w: year digits %d exceed %d", types.ErrInvalidDate, yearDigits, MaxYearDigits,
		)
	}

	m, err := match(dateGrammar(yearDigits, src), src)
	if err != nil {
		return nil, types.NotationNeutral, fmt.Errorf("%w: %w", types.ErrInvalidDate, err)
	}
	if m == nil {
		return nil, types.NotationNeutral, fmt.Errorf(
			"%w: %q is not an ISO 8601 date", types.ErrInvalidDate, src,
		)
	}

	v, n, err := dateVariant(m)
	if err != nil {
		return nil, types.NotationNeutral, fmt.Errorf(
			"%w: %q: %w", types.ErrInvalidDate, src, err,
		)
	}
	return v, n, nil
}

// dateVariant builds the variant for a successful date match.
func dateVariant(m *regexp2.Match) (types.DateVariant, types.Notation, error) {
	century, _ := group(m, "C")
	cy, ok := group(m, "CY")
	if !ok {
		c, err := number(m, "C")
		return types.Century{Century: c}, types.NotationNeutral, err
	}

	year, err := strconv.Atoi(century + cy)
	if err != nil {
		return nil, types.NotationNeutral, fmt.Errorf("year %s%s out of range", century, cy)
	}

	notation := types.NotationNeutral
	if ext, ok := group(m, "EXT"); ok {
		notation = types.NotationBasic
		if ext == "-" {
			notation = types.NotationExtended
		}
	}

	// Every group below is two or three ASCII digits, so number cannot fail.
	field := func(name string) int {
		n, _ := number(m, name)
		return n
	}
	has := func(name string) bool {
		_, ok := group(m, name)
		return ok
	}

	switch {
	case has("D"):
		return types.CalendarDay{Year: year, Month: field("M"), Day: field("D")}, notation, nil
	case has("YD"):
		return types.OrdinalDay{Year: year, Day: field("YD")}, notation, nil
	case has("WD"):
		return types.WeekDay{Year: year, Week: field("W"), Weekday: field("WD")}, notation, nil
	case has("W"):
		return types.Week{Year: year, Week: field("W")}, notation, nil
	case has("MO"):
		return types.Month{Year: year, Month: field("MO")}, types.NotationExtended, nil
	default:
		return types.Year{Year: year}, types.NotationNeutral, nil
	}
}
