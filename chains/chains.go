// Package chains defines identifiers for well-known EVM networks.
package chains

import (
	"errors"
	"fmt"
)

// NamedChain identifies a well-known EVM network.  Its numeric value is
// the network's canonical chain ID, so any chain ID converts directly to
// a NamedChain, named or not.
type NamedChain uint64

const (
	Mainnet           NamedChain = 1
	Optimism          NamedChain = 10
	BinanceSmartChain NamedChain = 56
	Gnosis            NamedChain = 100
	Polygon           NamedChain = 137
	Monad             NamedChain = 143
	Sonic             NamedChain = 146
	Fantom            NamedChain = 250
	Fraxtal           NamedChain = 252
	ZkSync            NamedChain = 324
	Sei               NamedChain = 1329
	Mantle            NamedChain = 5000
	Base              NamedChain = 8453
	Mode              NamedChain = 34443
	Arbitrum          NamedChain = 42161
	AvalancheFuji     NamedChain = 43113
	Avalanche         NamedChain = 43114
	Linea             NamedChain = 59144
	PolygonAmoy       NamedChain = 80002
	BaseSepolia       NamedChain = 84532
	ArbitrumSepolia   NamedChain = 421614
	Scroll            NamedChain = 534352
	Sepolia           NamedChain = 11155111
)

// ErrUnknownChain is returned when a chain name has no NamedChain
// constant.
var ErrUnknownChain = errors.New("unknown chain name")

var names = map[NamedChain]string{
	Mainnet:           "ethereum",
	Optimism:          "optimism",
	BinanceSmartChain: "bsc",
	Gnosis:            "gnosis",
	Polygon:           "polygon",
	Monad:             "monad",
	Sonic:             "sonic",
	Fantom:            "fantom",
	Fraxtal:           "fraxtal",
	ZkSync:            "zksync",
	Sei:               "sei",
	Mantle:            "mantle",
	Base:              "base",
	Mode:              "mode",
	Arbitrum:          "arbitrum",
	AvalancheFuji:     "avalanche-fuji",
	Avalanche:         "avalanche",
	Linea:             "linea",
	PolygonAmoy:       "polygon-amoy",
	BaseSepolia:       "base-sepolia",
	ArbitrumSepolia:   "arbitrum-sepolia",
	Scroll:            "scroll",
	Sepolia:           "sepolia",
}

var byName = func() map[string]NamedChain {
	m := make(map[string]NamedChain, len(names))
	for c, n := range names {
		m[n] = c
	}

	return m
}()

// ChainID returns the network's canonical chain ID.
func (c NamedChain) ChainID() uint64 {
	return uint64(c)
}

func (c NamedChain) String() string {
	if name, ok := names[c]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", uint64(c))
}

// ParseNamedChain returns the NamedChain for a network name as produced
// by String.
func ParseNamedChain(name string) (NamedChain, error) {
	c, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChain, name)
	}

	return c, nil
}

// FromChainID converts a chain ID to a NamedChain and reports whether
// the ID belongs to a known network.
func FromChainID(id uint64) (NamedChain, bool) {
	c := NamedChain(id)
	_, ok := names[c]

	return c, ok
}
