package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeapPolicyNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hold", "next", "previous", "raise"}, LeapPolicyNames())
}

func TestParseLeapPolicy(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		exp  LeapPolicy
	}{
		{name: "hold", exp: HoldAtZero},
		{name: "previous", exp: RepeatPrevious},
		{name: "next", exp: RepeatNext},
		{name: "raise", exp: Raise},
		{name: "RAISE", exp: Raise},
		{name: "Previous", exp: RepeatPrevious},
		{name: "0", exp: HoldAtZero},
		{name: "-1", exp: RepeatPrevious},
		{name: "1", exp: RepeatNext},
		{name: "+1", exp: RepeatNext},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := ParseLeapPolicy(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, p)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLeapPolicy("smear")
		require.EqualError(
			t, err,
			`unknown leap second policy "smear": expected one of hold, next, previous, raise`,
		)
	})
}

func TestLeapPolicyString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, name := range LeapPolicyNames() {
		p, err := ParseLeapPolicy(name)
		require.NoError(t, err)
		a.Equal(name, p.String())
	}
	a.Equal("hold", LeapPolicy(0).String())
	a.Equal("LeapPolicy(9)", LeapPolicy(9).String())
}
