package eip712

import (
	"math/big"
	"regexp"

	"github.com/ault-network/ault-go/aulterrors"
)

// Cosmos chain ids on EVM-compatible chains embed the EVM chain id:
// "<prefix>_<evmChainId>-<revision>", e.g. "ault_10904-1".
var cosmosChainIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*_(\d+)-\d+$`)

// ResolveEVMChainID returns the EVM chain id for the typed-data domain:
// the explicit override when given, otherwise the id parsed out of the
// Cosmos chain id.
func ResolveEVMChainID(cosmosChainID string, override *big.Int) (*big.Int, error) {
	if override != nil {
		return override, nil
	}
	m := cosmosChainIDPattern.FindStringSubmatch(cosmosChainID)
	if m == nil {
		return nil, aulterrors.Configurationf(
			"unable to resolve EVM chain id from cosmos chain id %q", cosmosChainID)
	}
	id, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, aulterrors.Configurationf(
			"unable to resolve EVM chain id from cosmos chain id %q", cosmosChainID)
	}
	return id, nil
}
