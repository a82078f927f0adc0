package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/client"
	"github.com/ault-network/ault-go/msgs"
)

func TestValidateMessageKeys(t *testing.T) {
	valid := msgs.Message{
		TypeURL: msgs.TypeURLCreateMarket,
		Value: map[string]any{
			"admin":       "a",
			"base_denom":  "b",
			"quote_denom": "q",
			"params": map[string]any{
				"lot_size":  uint64(1),
				"tick_size": "0.1",
			},
		},
	}
	assert.NoError(t, client.ValidateMessageKeys(valid))
}

func TestValidateMessageKeysRejectsCamelCase(t *testing.T) {
	m := msgs.Message{
		TypeURL: msgs.TypeURLCreateMarket,
		Value: map[string]any{
			"admin":     "a",
			"baseDenom": "b",
		},
	}
	err := client.ValidateMessageKeys(m)
	require.Error(t, err)
	var valErr *aulterrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), `"baseDenom"`)
}

func TestValidateMessageKeysRecursesNested(t *testing.T) {
	m := msgs.Message{
		TypeURL: msgs.TypeURLCreateMarket,
		Value: map[string]any{
			"admin": "a",
			"params": map[string]any{
				"lotSize": uint64(1),
			},
		},
	}
	assert.Error(t, client.ValidateMessageKeys(m))
}

func TestValidateMessageKeysRecursesArrays(t *testing.T) {
	m := msgs.Message{
		TypeURL: msgs.TypeURLBatchCancelOrders,
		Value: map[string]any{
			"creator": "c",
			"cancels": []map[string]any{
				{"market_id": uint64(1), "orderId": []byte{0x01}},
			},
		},
	}
	err := client.ValidateMessageKeys(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"orderId"`)
}

func TestValidateMessageKeysAllowsByteValues(t *testing.T) {
	// []byte values are scalars, never key-carrying containers.
	m := msgs.Message{
		TypeURL: msgs.TypeURLSubmitVrfProof,
		Value: map[string]any{
			"creator":   "c",
			"nonce":     []byte{0x01, 0x02},
			"vrf_proof": []byte{0x03},
		},
	}
	assert.NoError(t, client.ValidateMessageKeys(m))
}

func TestValidateMessageKeysRejectsUppercaseAndDashes(t *testing.T) {
	for _, key := range []string{"Creator", "market-id", "_leading", "trailing_", "double__under"} {
		m := msgs.Message{
			TypeURL: msgs.TypeURLMintLicense,
			Value:   map[string]any{key: "x"},
		}
		assert.Error(t, client.ValidateMessageKeys(m), "key %q", key)
	}
}
