package types

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// LeapPolicy determines how a 60th second ("23:59:60") is mapped onto a clock
// that has no leap seconds. Whether a leap second really occurred is never
// checked.
type LeapPolicy uint8

const (
	// HoldAtZero holds the clock at the top of the next minute for the whole
	// leap second: "23:59:60.5" resolves to 00:00:00 and the discarded half
	// second is reported as the leap duration. This is the default.
	HoldAtZero LeapPolicy = iota

	// RepeatPrevious repeats the 59th second: "23:59:60.5" resolves to
	// 23:59:59.5 with a one-second leap duration.
	RepeatPrevious

	// RepeatNext repeats the 0th second of the next minute: "23:59:60.5"
	// resolves to 00:00:00.5 with a zero leap duration.
	RepeatNext

	// Raise rejects leap seconds with ErrLeapSecond.
	Raise
)

//nolint:gochecknoglobals
var leapPolicyNames = map[string]LeapPolicy{
	"hold":     HoldAtZero,
	"previous": RepeatPrevious,
	"next":     RepeatNext,
	"raise":    Raise,
}

// LeapPolicyNames returns the names accepted by ParseLeapPolicy in sorted
// order.
func LeapPolicyNames() []string {
	names := maps.Keys(leapPolicyNames)
	slices.Sort(names)
	return names
}

// ParseLeapPolicy returns the LeapPolicy for name, one of "hold",
// "previous", "next", or "raise". The numeric forms "0", "-1", and "+1"
// (or "1") are accepted as aliases.
func ParseLeapPolicy(name string) (LeapPolicy, error) {
	switch name {
	case "0":
		return HoldAtZero, nil
	case "-1":
		return RepeatPrevious, nil
	case "1", "+1":
		return RepeatNext, nil
	}
	if p, ok := leapPolicyNames[strings.ToLower(name)]; ok {
		return p, nil
	}
	return HoldAtZero, fmt.Errorf(
		"unknown leap second policy %q: expected one of %s",
		name, strings.Join(LeapPolicyNames(), ", "),
	)
}

// String returns the name of p.
func (p LeapPolicy) String() string {
	for name, policy := range leapPolicyNames {
		if policy == p {
			return name
		}
	}
	return fmt.Sprintf("LeapPolicy(%d)", uint8(p))
}
