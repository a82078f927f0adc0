package eip712_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/eip712"
)

func TestResolveEVMChainID(t *testing.T) {
	id, err := eip712.ResolveEVMChainID("ault_10904-1", nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10904), id)

	id, err = eip712.ResolveEVMChainID("ethermint_9000-4", nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(9000), id)
}

func TestResolveEVMChainIDUnparseable(t *testing.T) {
	for _, chainID := range []string{
		"cosmoshub-4",
		"ault_10904",
		"_10904-1",
		"ault_-1",
		"",
	} {
		_, err := eip712.ResolveEVMChainID(chainID, nil)
		require.Error(t, err, "chain id %q", chainID)
		var cfgErr *aulterrors.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestResolveEVMChainIDOverride(t *testing.T) {
	// An override resolves even an unparseable chain id.
	id, err := eip712.ResolveEVMChainID("cosmoshub-4", big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), id)

	// And wins over a parseable one.
	id, err = eip712.ResolveEVMChainID("ault_10904-1", big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), id)
}
