package msgs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/msgs"
)

func TestRegistryFieldOrder(t *testing.T) {
	// Every registered value and nested type keeps strict descending
	// name order; the amino bridge rejects anything else.
	require.NoError(t, msgs.ValidateRegistry())

	for _, url := range msgs.TypeURLs() {
		cfg, err := msgs.Lookup(url)
		require.NoError(t, err)
		assertDescending(t, url, cfg.ValueFields)
		for name, fields := range cfg.NestedTypes {
			assertDescending(t, url+"."+name, fields)
		}
	}
}

func assertDescending(t *testing.T, typeName string, fields []msgs.FieldSpec) {
	t.Helper()
	for i := 1; i < len(fields); i++ {
		assert.Greater(t, fields[i-1].Name, fields[i].Name,
			"%s: %q must sort after %q", typeName, fields[i-1].Name, fields[i].Name)
	}
}

func TestCheckFieldOrderRejectsAscending(t *testing.T) {
	err := msgs.CheckFieldOrder("test", []msgs.FieldSpec{
		{Name: "creator", Type: "string"},
		{Name: "recipient", Type: "string"},
	})
	require.Error(t, err)
	var cfgErr *aulterrors.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "field order violation")
}

func TestCheckFieldOrderRejectsDuplicates(t *testing.T) {
	err := msgs.CheckFieldOrder("test", []msgs.FieldSpec{
		{Name: "creator", Type: "string"},
		{Name: "creator", Type: "string"},
	})
	assert.Error(t, err)
}

func TestLookupUnknownType(t *testing.T) {
	_, err := msgs.Lookup("/unknown.msg.Type")
	require.Error(t, err)
	var cfgErr *aulterrors.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.EqualError(t, err, "unknown message type: /unknown.msg.Type")
}

func TestRegisteredTypeURLs(t *testing.T) {
	urls := msgs.TypeURLs()
	assert.Contains(t, urls, msgs.TypeURLMintLicense)
	assert.Contains(t, urls, msgs.TypeURLTransferLicense)
	assert.Contains(t, urls, msgs.TypeURLRegisterMiner)
	assert.Contains(t, urls, msgs.TypeURLSubmitVrfProof)
	assert.Contains(t, urls, msgs.TypeURLClaimRewards)
	assert.Contains(t, urls, msgs.TypeURLPlaceLimitOrder)
	assert.Contains(t, urls, msgs.TypeURLCancelOrder)
	assert.Contains(t, urls, msgs.TypeURLBatchCancelOrders)
	assert.Contains(t, urls, msgs.TypeURLCreateMarket)
	assert.Contains(t, urls, msgs.TypeURLDelegate)
	assert.Contains(t, urls, msgs.TypeURLUndelegate)
	assert.IsIncreasing(t, urls)
}
