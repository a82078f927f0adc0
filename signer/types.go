// Package signer normalizes heterogeneous wallet and signing inputs
// into one typed-data signing capability. Key material is never stored
// here; handles only borrow whatever the caller supplies.
package signer

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// TypedDataSigner is the canonical signing capability: produce a
// 65-byte secp256k1 signature over EIP-712 typed data.
type TypedDataSigner interface {
	SignTypedData(ctx context.Context, typedData apitypes.TypedData) ([]byte, error)
}

// AddressHolder exposes a synchronously known signing address.
type AddressHolder interface {
	Address() string
}

// AddressResolver exposes an address that must be looked up, such as a
// wallet's selected account.
type AddressResolver interface {
	ResolveAddress(ctx context.Context) (string, error)
}

// ProviderBacked marks wallet-account shapes that carry an underlying
// provider. Its presence disambiguates a wallet account from generic
// adapter objects that also happen to expose an address and a signing
// method.
type ProviderBacked interface {
	Provider() any
}

// RPCWallet is a generic JSON-RPC capable wallet; typed-data signing
// goes through eth_signTypedData_v4.
type RPCWallet interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// SplitSigner covers third-party adapters whose signing call takes the
// typed data as explicit domain/types/message arguments instead of one
// structure, returning a hex signature.
type SplitSigner interface {
	SignTypedMessage(ctx context.Context, domain apitypes.TypedDataDomain, types apitypes.Types, primaryType string, message map[string]any) (string, error)
}

// Func adapts a bare signing function.
type Func func(ctx context.Context, typedData apitypes.TypedData) ([]byte, error)

// Kind names a signer variant for explicit tagged dispatch.
type Kind string

const (
	KindLocal   Kind = "local"
	KindFunc    Kind = "func"
	KindAccount Kind = "account"
	KindRPC     Kind = "rpc"
	KindSplit   Kind = "split"
	KindGeneric Kind = "generic"
)
