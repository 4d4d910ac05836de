package usdc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/stablekit/usdc/chains"
	"github.com/stablekit/usdc/internal/observability"
)

func TestAddressForMalformedConstant(t *testing.T) {
	t.Parallel()

	reg := &Registry{
		config: config{log: observability.NewNoopLogger()},
		table: map[chains.NamedChain]string{
			chains.Mainnet: "0xnot-an-address",
		},
	}

	_, err := reg.AddressFor(chains.Mainnet)
	require.ErrorIs(t, err, ErrInvalidAddressConstant)

	var target *AddressParseError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "0xnot-an-address", target.AddressString)
	require.Error(t, target.Err)
	assert.ErrorIs(t, err, target.Err)
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	t.Run("passes - checksummed constant", func(t *testing.T) {
		t.Parallel()

		addr, err := parseAddress(EthereumUSDC)
		require.NoError(t, err)
		assert.Equal(t, EthereumUSDC, addr.Hex())
	})

	t.Run("fails - truncated constant", func(t *testing.T) {
		t.Parallel()

		_, err := parseAddress("0x1234")
		require.ErrorIs(t, err, ErrInvalidAddressConstant)
	})
}

func TestTableListing(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for _, c := range defaultRegistry.Chains() {
		fmt.Fprintf(&sb, "%d %s %s\n", c.ChainID(), c, defaultRegistry.table[c])
	}

	golden.Assert(t, sb.String(), "chains.golden")
}
