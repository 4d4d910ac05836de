// Package usdc maps blockchain networks to the well-known contract
// address of the USDC token deployed on each network.
//
// The table of deployments is fixed and compiled into the library, so
// resolution is a pure lookup with no I/O and is safe for concurrent
// use.  Chains without a known USDC deployment resolve to an
// UnsupportedChainError rather than a zero address, so callers can
// distinguish "not supported" from a genuine answer.
//
// Defaults
//
//   - If the WithLogger Option is not specified, a No-Op logger is used.
package usdc
