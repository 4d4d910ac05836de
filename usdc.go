package usdc

import (
	"log/slog"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stablekit/usdc/chains"
	"github.com/stablekit/usdc/internal/observability"
)

// A Chain is implemented by chain identifier types that can report an
// EVM chain ID.  chains.NamedChain satisfies it; so does any other
// identifier a caller already has, without conversion.
type Chain interface {
	ChainID() uint64
}

// Resolver is implemented by types that can resolve the USDC contract
// address deployed on a chain.
type Resolver interface {
	// AddressFor returns the USDC contract address for the given chain.
	//
	// It returns an UnsupportedChainError if the chain has no known USDC
	// deployment, and an AddressParseError if the matched table constant
	// is malformed.
	AddressFor(chain Chain) (common.Address, error)
}

var _ Resolver = (*Registry)(nil)

// Registry resolves USDC contract addresses from a fixed, compiled-in
// table of well-known deployments.  The zero Registry is not usable;
// construct one with NewRegistry.
//
// A Registry holds no mutable state and is safe for concurrent use.
type Registry struct {
	config

	table map[chains.NamedChain]string
}

// NewRegistry returns a Registry over the compiled-in deployment table.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Registry{
		config: *cfg,
		table:  addressTable,
	}, nil
}

// AddressFor implements Resolver.
func (r *Registry) AddressFor(chain Chain) (common.Address, error) {
	s, ok := r.table[chains.NamedChain(chain.ChainID())]
	if !ok {
		return common.Address{}, &UnsupportedChainError{Chain: chain}
	}

	addr, err := parseAddress(s)
	if err != nil {
		return common.Address{}, err
	}

	r.log.Debug("resolved USDC address",
		slog.Uint64("chain_id", chain.ChainID()),
		slog.String("address", addr.Hex()),
	)

	return addr, nil
}

// Supports reports whether the chain has a known USDC deployment.
func (r *Registry) Supports(chain Chain) bool {
	_, ok := r.table[chains.NamedChain(chain.ChainID())]

	return ok
}

// Chains returns the supported chains in ascending chain ID order.
func (r *Registry) Chains() []chains.NamedChain {
	res := make([]chains.NamedChain, 0, len(r.table))
	for c := range r.table {
		res = append(res, c)
	}

	slices.Sort(res)

	return res
}

func parseAddress(s string) (common.Address, error) {
	var addr common.Address
	if err := addr.UnmarshalText([]byte(s)); err != nil {
		return common.Address{}, &AddressParseError{
			AddressString: s,
			Err:           err,
		}
	}

	return addr, nil
}

var defaultRegistry = &Registry{
	config: config{log: observability.NewNoopLogger()},
	table:  addressTable,
}

// AddressFor resolves the USDC contract address for the given chain
// using a default Registry.
func AddressFor(chain Chain) (common.Address, error) {
	return defaultRegistry.AddressFor(chain)
}

// Supports reports whether the chain has a known USDC deployment.
func Supports(chain Chain) bool {
	return defaultRegistry.Supports(chain)
}

// Chains returns the supported chains in ascending chain ID order.
func Chains() []chains.NamedChain {
	return defaultRegistry.Chains()
}
