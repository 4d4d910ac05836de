package usdc

import (
	"errors"
	"fmt"
)

// ErrUnsupportedChain is returned when the requested chain has no known
// USDC deployment.
var ErrUnsupportedChain = errors.New("no known USDC address for chain")

// ErrInvalidAddressConstant is returned when one of the compiled-in
// address constants fails to parse.  Seeing it means the table itself is
// broken, not that the caller did anything wrong.
var ErrInvalidAddressConstant = errors.New("malformed USDC address constant")

var (
	_ error = (*UnsupportedChainError)(nil)
	_ error = (*AddressParseError)(nil)
)

// UnsupportedChainError carries the chain identifier that had no table
// entry.  It matches ErrUnsupportedChain under errors.Is.
type UnsupportedChainError struct {
	Chain Chain
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("no known USDC address for chain %v", e.Chain)
}

func (e *UnsupportedChainError) Unwrap() error {
	return ErrUnsupportedChain
}

// AddressParseError carries the table constant that failed to parse and
// the underlying parse failure.  It matches both
// ErrInvalidAddressConstant and the wrapped parse error under errors.Is.
type AddressParseError struct {
	AddressString string
	Err           error
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("malformed USDC address constant %q: %v", e.AddressString, e.Err)
}

func (e *AddressParseError) Unwrap() []error {
	return []error{ErrInvalidAddressConstant, e.Err}
}
