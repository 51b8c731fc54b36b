package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEraDeltas(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		name                string
		rules               Rules
		incrementNonce      bool
		failOnInsufficient  bool
		sizeEnforced        bool
		rejectEOF           bool
		accessListOnCreate  bool
	}{
		{"Frontier", Frontier(), false, false, false, false, false},
		{"Homestead", Homestead(), false, true, false, false, false},
		{"EIP150", EIP150(), false, true, false, false, false},
		{"EIP158", EIP158(), true, true, true, false, false},
		{"Byzantium", Byzantium(), true, true, true, false, false},
		{"Berlin", Berlin(), true, true, true, false, true},
		{"London", London(), true, true, true, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(c.name, c.rules.Name())
			require.Equal(c.incrementNonce, c.rules.IncrementNonceOnCreate())
			require.Equal(c.failOnInsufficient, c.rules.FailOnInsufficientDeployGas())
			_, enforced := c.rules.CodeSizeLimit()
			require.Equal(c.sizeEnforced, enforced)
			require.Equal(c.rejectEOF, c.rules.RejectEOFPrefixedCode())
			require.Equal(c.accessListOnCreate, c.rules.AccessListOnCreate())
		})
	}
}

func TestEIP158CodeSizeThreshold(t *testing.T) {
	require := require.New(t)

	threshold, enforced := EIP158().CodeSizeLimit()
	require.True(enforced)
	require.Equal(MaxCodeSize+1, threshold)
}

func TestByName(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{"Frontier", "Homestead", "EIP150", "EIP158", "Byzantium", "Berlin", "London"} {
		rules, ok := ByName(name)
		require.True(ok, name)
		require.Equal(name, rules.Name())
	}

	_, ok := ByName("Shanghai")
	require.False(ok)
}
