// Package grammar classifies ISO 8601 date, time, and time zone strings into
// the variants defined by the types package. Classification is purely
// syntactic: it checks digit counts and separators, never calendar or clock
// ranges.
//
// The grammars need backreferences, so that a separator used once must be
// used throughout a string, and lazy repetition, so that the configured
// extended-year width decides how many digits belong to the year. Both are
// provided by regexp2 but not by the standard regexp package.
package grammar

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/dlclark/regexp2"
)

// cache maps a configuration key to its compiled grammar. Grammars are
// static, so entries are never invalidated.
type cache struct {
	compile func(key int) *regexp2.Regexp
	entries sync.Map
}

// get returns the grammar for key, compiling it on first use. Concurrent
// first uses may compile more than once, but all callers get the same
// stored value.
func (c *cache) get(key int) *regexp2.Regexp {
	if re, ok := c.entries.Load(key); ok {
		return re.(*regexp2.Regexp)
	}
	re, _ := c.entries.LoadOrStore(key, c.compile(key))
	return re.(*regexp2.Regexp)
}

// match returns the match of re against the whole of src, or nil if there is
// none.
func match(re *regexp2.Regexp, src string) (*regexp2.Match, error) {
	m, err := re.FindStringMatch(src)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	return m, nil
}

// group returns the text captured by the named group of m and whether the
// group took part in the match at all.
func group(m *regexp2.Match, name string) (string, bool) {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

// number returns the captured group as an int. The grammar guarantees ASCII
// digits with an optional sign, so only overflow can fail.
func number(m *regexp2.Match, name string) (int, error) {
	s, _ := group(m, name)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q out of range", s)
	}
	return n, nil
}
