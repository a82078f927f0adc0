// Package client drives the sign-and-broadcast lifecycle against an
// Ault network: account lookup, typed-data construction, signing,
// public-key resolution, wire assembly and REST submission.
package client

import (
	"context"
	"encoding/base64"
	"math/big"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ault-network/ault-go/address"
	"github.com/ault-network/ault-go/eip712"
	"github.com/ault-network/ault-go/msgs"
	"github.com/ault-network/ault-go/network"
	"github.com/ault-network/ault-go/signer"
	"github.com/ault-network/ault-go/wire"
)

// Client is safe for concurrent use at the transport level, but two
// concurrent SignAndBroadcast calls for the same address race on the
// account sequence number; callers must serialize per signer.
type Client struct {
	net     network.Network
	httpc   *http.Client
	retry   RetryPolicy
	builder *eip712.Builder
	log     zerolog.Logger

	chainMu         sync.Mutex
	chainID         string
	chainResolvedAt time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

// WithRetryPolicy replaces the transport retry policy.
func WithRetryPolicy(policy RetryPolicy) ClientOption {
	return func(c *Client) { c.retry = policy }
}

// WithLogger replaces the client's logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = logger }
}

// WithTypedDataBuilder replaces the typed-data builder, e.g. to adjust
// the generated-type dedup bound.
func WithTypedDataBuilder(builder *eip712.Builder) ClientOption {
	return func(c *Client) { c.builder = builder }
}

// New builds a client for the given network.
func New(net network.Network, opts ...ClientOption) *Client {
	c := &Client{
		net:     net,
		httpc:   &http.Client{},
		retry:   DefaultRetryPolicy(),
		builder: eip712.NewBuilder(),
		log:     log.With().Str("component", "txclient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Network returns the client's network configuration.
func (c *Client) Network() network.Network {
	return c.net
}

// TxOption adjusts a single SignAndBroadcast invocation.
type TxOption func(*txOptions)

type txOptions struct {
	memo            string
	feeDenom        string
	feeAmount       string
	gasLimit        uint64
	evmChainID      *big.Int
	addressOverride string
	signerOpts      []signer.Option
}

// WithMemo sets the transaction memo.
func WithMemo(memo string) TxOption {
	return func(o *txOptions) { o.memo = memo }
}

// WithFee overrides the network's default fee.
func WithFee(denom, amount string, gasLimit uint64) TxOption {
	return func(o *txOptions) {
		o.feeDenom = denom
		o.feeAmount = amount
		o.gasLimit = gasLimit
	}
}

// WithEVMChainID overrides the EVM chain id otherwise parsed from the
// Cosmos chain id.
func WithEVMChainID(id *big.Int) TxOption {
	return func(o *txOptions) { o.evmChainID = id }
}

// WithSignerAddress overrides address resolution for signers that do
// not expose their own address.
func WithSignerAddress(addr string) TxOption {
	return func(o *txOptions) { o.addressOverride = addr }
}

// WithSignerOptions forwards options to signer resolution, such as an
// explicit signer kind.
func WithSignerOptions(opts ...signer.Option) TxOption {
	return func(o *txOptions) { o.signerOpts = append(o.signerOpts, opts...) }
}

// SignAndBroadcast runs the full lifecycle for one transaction and
// returns the chain's response. A non-zero result code is a chain-level
// rejection delivered as data; only transport and input failures
// return errors.
func (c *Client) SignAndBroadcast(ctx context.Context, signerInput any, messages []msgs.Message, opts ...TxOption) (*BroadcastResult, error) {
	o := txOptions{
		feeDenom:  c.net.Denom,
		feeAmount: c.net.DefaultFeeAmount,
		gasLimit:  c.net.DefaultGasLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}

	handle, err := signer.Resolve(signerInput, o.signerOpts...)
	if err != nil {
		return nil, err
	}

	signerAddr, err := handle.ResolveAddress(ctx, o.addressOverride)
	if err != nil {
		return nil, err
	}
	hexAddr, bech32Addr, err := c.addressForms(signerAddr)
	if err != nil {
		return nil, err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	// Account state is never cached: a stale sequence is only detected
	// chain-side, as a rejection.
	account, err := c.Account(ctx, bech32Addr)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("address", bech32Addr).
		Uint64("accountNumber", account.AccountNumber).
		Uint64("sequence", account.Sequence).
		Msg("Resolved account state")

	txCtx := eip712.TxContext{
		ChainID:       chainID,
		AccountNumber: account.AccountNumber,
		Sequence:      account.Sequence,
		Fee: eip712.Fee{
			Denom:  o.feeDenom,
			Amount: o.feeAmount,
			Gas:    strconv.FormatUint(o.gasLimit, 10),
		},
		Memo: o.memo,
	}
	typedData, err := c.builder.Build(txCtx, messages, o.evmChainID)
	if err != nil {
		return nil, err
	}

	sig, err := handle.SignTypedData(ctx, typedData)
	if err != nil {
		return nil, err
	}

	compressedPubKey, err := resolvePublicKey(account, typedData, sig, hexAddr)
	if err != nil {
		return nil, err
	}

	// The wire layer indexes values by exact snake_case key names; the
	// typed-data layer above is the casing-tolerant side of that
	// contract.
	envelopes := make([]wire.Any, len(messages))
	for i, m := range messages {
		if err := ValidateMessageKeys(m); err != nil {
			return nil, err
		}
		envelopes[i], err = msgs.Encode(m)
		if err != nil {
			return nil, err
		}
	}

	bodyBytes := wire.EncodeTxBody(envelopes, o.memo)
	signerInfo := wire.EncodeSignerInfo(wire.PubKeyAny(compressedPubKey), account.Sequence)
	authInfoBytes := wire.EncodeAuthInfo([][]byte{signerInfo}, wire.Fee{
		Amount:   []wire.Coin{{Denom: o.feeDenom, Amount: o.feeAmount}},
		GasLimit: o.gasLimit,
	})
	txRaw := wire.EncodeTxRaw(bodyBytes, authInfoBytes, [][]byte{sig})

	result, err := c.Broadcast(ctx, txRaw)
	if err != nil {
		return nil, err
	}
	c.log.Info().
		Str("txHash", result.TxHash).
		Uint32("code", result.Code).
		Msg("Broadcast transaction")
	return result, nil
}

// addressForms returns both encodings of the signer address.
func (c *Client) addressForms(addr string) (hexAddr, bech32Addr string, err error) {
	if address.IsHex(addr) {
		bech32Addr, err = address.ToBech32(addr, c.net.Bech32Prefix)
		return addr, bech32Addr, err
	}
	hexAddr, err = address.ToHex(addr)
	return hexAddr, addr, err
}

// ChainID returns the chain id reported by the node, memoized with its
// resolution time. A query failure falls back to the statically
// configured id. Use InvalidateChainID to repoint a long-lived process
// at a different network.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	c.chainMu.Lock()
	defer c.chainMu.Unlock()
	if c.chainID != "" {
		return c.chainID, nil
	}

	var res nodeInfoResponse
	if err := c.Get(ctx, "/cosmos/base/tendermint/v1beta1/node_info", &res); err != nil || res.DefaultNodeInfo.Network == "" {
		c.log.Warn().
			Err(err).
			Str("fallback", c.net.ChainID).
			Msg("Chain id lookup failed, using configured network id")
		c.chainID = c.net.ChainID
	} else {
		c.chainID = res.DefaultNodeInfo.Network
	}
	c.chainResolvedAt = time.Now()
	return c.chainID, nil
}

// ChainIDResolvedAt reports when the memoized chain id was resolved;
// the zero time means it has not been resolved yet.
func (c *Client) ChainIDResolvedAt() time.Time {
	c.chainMu.Lock()
	defer c.chainMu.Unlock()
	return c.chainResolvedAt
}

// InvalidateChainID clears the memoized chain id.
func (c *Client) InvalidateChainID() {
	c.chainMu.Lock()
	defer c.chainMu.Unlock()
	c.chainID = ""
	c.chainResolvedAt = time.Time{}
}

type nodeInfoResponse struct {
	DefaultNodeInfo struct {
		Network string `json:"network"`
	} `json:"default_node_info"`
}

// decodeBase64 is shared by account pubkey parsing.
func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
