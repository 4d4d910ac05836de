package usdc

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/stablekit/usdc/chains"
)

// AddressForSelector resolves the USDC contract address for the chain
// identified by a Chainlink chain selector.  Selectors that are unknown,
// or that identify a non-EVM chain, fail with an UnsupportedChainError.
func (r *Registry) AddressForSelector(selector uint64) (common.Address, error) {
	id, err := chainsel.GetChainIDFromSelector(selector)
	if err == nil {
		if chainID, perr := strconv.ParseUint(id, 10, 64); perr == nil {
			return r.AddressFor(chains.NamedChain(chainID))
		}
	}

	return common.Address{}, &UnsupportedChainError{Chain: chainSelector(selector)}
}

// AddressForSelector resolves the USDC contract address for the chain
// identified by a Chainlink chain selector using a default Registry.
func AddressForSelector(selector uint64) (common.Address, error) {
	return defaultRegistry.AddressForSelector(selector)
}

// chainSelector lets an unresolvable Chainlink selector travel inside an
// UnsupportedChainError.
type chainSelector uint64

func (s chainSelector) ChainID() uint64 {
	return 0
}

func (s chainSelector) String() string {
	return fmt.Sprintf("selector(%d)", uint64(s))
}
