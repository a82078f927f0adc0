package client_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/address"
	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/client"
	"github.com/ault-network/ault-go/msgs"
	"github.com/ault-network/ault-go/network"
	"github.com/ault-network/ault-go/signer"
	"github.com/ault-network/ault-go/wire"
)

func testRetryPolicy() client.RetryPolicy {
	return client.RetryPolicy{
		MaxAttempts:    4,
		BaseDelay:      time.Millisecond,
		MaxDelay:       2 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
	}
}

func newTestClient(t *testing.T, handler http.Handler, opts ...client.ClientOption) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	net, err := network.Custom(network.Network{
		ChainID: "ault_10904-1",
		RestURL: srv.URL,
	})
	require.NoError(t, err)

	opts = append([]client.ClientOption{client.WithRetryPolicy(testRetryPolicy())}, opts...)
	return client.New(net, opts...)
}

// chainHandler serves the three endpoints a sign-and-broadcast run
// touches and records the broadcast request.
type chainHandler struct {
	network       string
	accountJSON   string
	broadcastJSON string

	nodeInfoCalls  int
	accountPath    string
	broadcastBody  []byte
	broadcastCalls int
}

func (h *chainHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/cosmos/base/tendermint/v1beta1/node_info":
		h.nodeInfoCalls++
		json.NewEncoder(w).Encode(map[string]any{
			"default_node_info": map[string]any{"network": h.network},
		})
	case strings.HasPrefix(r.URL.Path, "/cosmos/auth/v1beta1/accounts/"):
		h.accountPath = r.URL.Path
		w.Write([]byte(h.accountJSON))
	case r.URL.Path == "/cosmos/tx/v1beta1/txs" && r.Method == http.MethodPost:
		h.broadcastCalls++
		body, _ := io.ReadAll(r.Body)
		h.broadcastBody = body
		w.Write([]byte(h.broadcastJSON))
	default:
		http.NotFound(w, r)
	}
}

func TestSignAndBroadcast(t *testing.T) {
	handler := &chainHandler{
		network: "ault_10904-1",
		accountJSON: `{"account": {
			"base_account": {"pub_key": null, "account_number": "7", "sequence": "3"}
		}}`,
		broadcastJSON: `{"tx_response": {"txhash": "ABC123", "code": 0, "raw_log": ""}}`,
	}
	c := newTestClient(t, handler)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	local := signer.NewLocalSigner(key)

	result, err := c.SignAndBroadcast(t.Context(), local, []msgs.Message{
		msgs.NewMsgMintLicense(local.Address(), big.NewInt(42), local.Address()),
	}, client.WithMemo("hi"))
	require.NoError(t, err)
	assert.Equal(t, "ABC123", result.TxHash)
	assert.Zero(t, result.Code)

	// Account state was fetched for the signer's bech32 form.
	bech, err := address.ToBech32(local.Address(), "ault")
	require.NoError(t, err)
	assert.Equal(t, "/cosmos/auth/v1beta1/accounts/"+bech, handler.accountPath)

	// The broadcast carried sync mode and a decodable TxRaw.
	var req struct {
		TxBytes string `json:"tx_bytes"`
		Mode    string `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(handler.broadcastBody, &req))
	assert.Equal(t, client.BroadcastModeSync, req.Mode)

	txRaw, err := base64.StdEncoding.DecodeString(req.TxBytes)
	require.NoError(t, err)
	assert.Contains(t, string(txRaw), msgs.TypeURLMintLicense)
	assert.Contains(t, string(txRaw), "hi")

	// With no chain-recorded key, the compressed key recovered from the
	// signature is embedded in the signer info.
	assert.Contains(t, string(txRaw), wire.EthSecp256k1PubKeyTypeURL)
	assert.Contains(t, string(txRaw), string(crypto.CompressPubkey(&key.PublicKey)))
}

func TestSignAndBroadcastUsesChainRecordedKey(t *testing.T) {
	chainKey := make([]byte, 33)
	chainKey[0] = 0x02
	chainKey[32] = 0x99

	handler := &chainHandler{
		network: "ault_10904-1",
		accountJSON: `{"account": {
			"pub_key": {"key": "` + base64.StdEncoding.EncodeToString(chainKey) + `"},
			"account_number": "7", "sequence": "3"
		}}`,
		broadcastJSON: `{"tx_response": {"txhash": "DEF", "code": 0, "raw_log": ""}}`,
	}
	c := newTestClient(t, handler)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = c.SignAndBroadcast(t.Context(), signer.NewLocalSigner(key), []msgs.Message{
		msgs.NewMsgMintLicense("c", big.NewInt(1), "r"),
	})
	require.NoError(t, err)

	var req struct {
		TxBytes string `json:"tx_bytes"`
	}
	require.NoError(t, json.Unmarshal(handler.broadcastBody, &req))
	txRaw, err := base64.StdEncoding.DecodeString(req.TxBytes)
	require.NoError(t, err)
	assert.Contains(t, string(txRaw), string(chainKey))
	assert.NotContains(t, string(txRaw), string(crypto.CompressPubkey(&key.PublicKey)))
}

func TestSignAndBroadcastChainRejectionIsData(t *testing.T) {
	handler := &chainHandler{
		network: "ault_10904-1",
		accountJSON: `{"account": {
			"base_account": {"pub_key": null, "account_number": "1", "sequence": "0"}
		}}`,
		broadcastJSON: `{"tx_response": {"txhash": "GHI", "code": 13, "raw_log": "insufficient fee"}}`,
	}
	c := newTestClient(t, handler)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	result, err := c.SignAndBroadcast(t.Context(), signer.NewLocalSigner(key), []msgs.Message{
		msgs.NewMsgMintLicense("c", big.NewInt(1), "r"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(13), result.Code)
	assert.Equal(t, "insufficient fee", result.RawLog)
}

func TestSignAndBroadcastRejectsCamelCaseKeys(t *testing.T) {
	handler := &chainHandler{
		network: "ault_10904-1",
		accountJSON: `{"account": {
			"base_account": {"pub_key": null, "account_number": "1", "sequence": "0"}
		}}`,
		broadcastJSON: `{"tx_response": {"txhash": "X", "code": 0, "raw_log": ""}}`,
	}
	c := newTestClient(t, handler)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = c.SignAndBroadcast(t.Context(), signer.NewLocalSigner(key), []msgs.Message{
		{TypeURL: msgs.TypeURLMintLicense, Value: map[string]any{
			"creator":    "c",
			"license_id": big.NewInt(1),
			"recipient":  "r",
			"licenseId":  "1",
		}},
	})
	require.Error(t, err)
	var valErr *aulterrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), `non-snake_case key "licenseId"`)
	assert.Zero(t, handler.broadcastCalls)
}

func TestSignAndBroadcastEmptyMessages(t *testing.T) {
	c := newTestClient(t, &chainHandler{
		network: "ault_10904-1",
		accountJSON: `{"account": {
			"base_account": {"pub_key": null, "account_number": "1", "sequence": "0"}
		}}`,
	})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = c.SignAndBroadcast(t.Context(), signer.NewLocalSigner(key), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one message")
}

func TestChainIDMemoized(t *testing.T) {
	handler := &chainHandler{network: "ault_10904-1"}
	c := newTestClient(t, handler)

	assert.True(t, c.ChainIDResolvedAt().IsZero())

	id, err := c.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ault_10904-1", id)
	assert.False(t, c.ChainIDResolvedAt().IsZero())

	_, err = c.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, handler.nodeInfoCalls)

	c.InvalidateChainID()
	assert.True(t, c.ChainIDResolvedAt().IsZero())
	_, err = c.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, handler.nodeInfoCalls)
}

func TestChainIDFallsBackToConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	net, err := network.Custom(network.Network{ChainID: "ault_10904-1", RestURL: srv.URL})
	require.NoError(t, err)
	policy := testRetryPolicy()
	policy.MaxAttempts = 1
	c := client.New(net, client.WithRetryPolicy(policy))

	id, err := c.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ault_10904-1", id)
}

func TestGetRetriesTransientFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	net, err := network.Custom(network.Network{ChainID: "ault_10904-1", RestURL: srv.URL})
	require.NoError(t, err)
	c := client.New(net, client.WithRetryPolicy(testRetryPolicy()))

	var out map[string]any
	require.NoError(t, c.Get(t.Context(), "/anything", &out))
	assert.Equal(t, 3, calls)
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	net, err := network.Custom(network.Network{ChainID: "ault_10904-1", RestURL: srv.URL})
	require.NoError(t, err)
	c := client.New(net, client.WithRetryPolicy(testRetryPolicy()))

	err = c.Get(t.Context(), "/anything", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, 1, calls)
}

func TestBroadcastRetryIsOptIn(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	net, err := network.Custom(network.Network{ChainID: "ault_10904-1", RestURL: srv.URL})
	require.NoError(t, err)

	// Default: one shot.
	c := client.New(net, client.WithRetryPolicy(testRetryPolicy()))
	_, err = c.Broadcast(t.Context(), []byte{0x01})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	// Opt-in: retried up to MaxAttempts.
	calls = 0
	policy := testRetryPolicy()
	policy.RetryBroadcast = true
	c = client.New(net, client.WithRetryPolicy(policy))
	_, err = c.Broadcast(t.Context(), []byte{0x01})
	require.Error(t, err)
	assert.Equal(t, policy.MaxAttempts, calls)
}

func TestAccountShapes(t *testing.T) {
	flat := `{"account": {
		"pub_key": {"key": "AQID"},
		"account_number": "12",
		"sequence": "34"
	}}`
	nested := `{"account": {
		"base_account": {"pub_key": null, "account_number": "56", "sequence": "78"}
	}}`

	c := newTestClient(t, &chainHandler{network: "ault_10904-1", accountJSON: flat})
	info, err := c.Account(t.Context(), "ault1someaddr")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), info.AccountNumber)
	assert.Equal(t, uint64(34), info.Sequence)
	assert.Equal(t, "AQID", info.PubKeyBase64)

	c = newTestClient(t, &chainHandler{network: "ault_10904-1", accountJSON: nested})
	info, err = c.Account(t.Context(), "ault1someaddr")
	require.NoError(t, err)
	assert.Equal(t, uint64(56), info.AccountNumber)
	assert.Equal(t, uint64(78), info.Sequence)
	assert.Empty(t, info.PubKeyBase64)
}
