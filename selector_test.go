package usdc_test

import (
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablekit/usdc"
	"github.com/stablekit/usdc/chains"
)

func TestRegistryAddressForSelector(t *testing.T) {
	t.Parallel()

	reg, err := usdc.NewRegistry()
	require.NoError(t, err)

	t.Run("passes - ethereum mainnet selector", func(t *testing.T) {
		t.Parallel()

		want, err := reg.AddressFor(chains.Mainnet)
		require.NoError(t, err)

		got, err := reg.AddressForSelector(chainsel.ETHEREUM_MAINNET.Selector)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("fails - unknown selector", func(t *testing.T) {
		t.Parallel()

		_, err := reg.AddressForSelector(1)
		require.ErrorIs(t, err, usdc.ErrUnsupportedChain)
		assert.ErrorContains(t, err, "selector(1)")
	})

	t.Run("fails - known selector without a deployment", func(t *testing.T) {
		t.Parallel()

		_, err := reg.AddressForSelector(chainsel.ETHEREUM_TESTNET_SEPOLIA_ARBITRUM_1.Selector)
		require.NoError(t, err)

		_, err = reg.AddressForSelector(chainsel.POLYGON_TESTNET_MUMBAI.Selector)
		require.ErrorIs(t, err, usdc.ErrUnsupportedChain)

		var target *usdc.UnsupportedChainError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, chains.NamedChain(80001), target.Chain)
	})
}

func TestAddressForSelector(t *testing.T) {
	t.Parallel()

	want, err := usdc.AddressFor(chains.Mainnet)
	require.NoError(t, err)

	got, err := usdc.AddressForSelector(chainsel.ETHEREUM_MAINNET.Selector)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
