package signer

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"

	"github.com/ault-network/ault-go/address"
	"github.com/ault-network/ault-go/aulterrors"
)

// Handle is a resolved signer: one signing function plus whatever
// address knowledge the underlying input exposed.
type Handle struct {
	sign      func(ctx context.Context, typedData apitypes.TypedData) ([]byte, error)
	address   string
	addressFn func(ctx context.Context) (string, error)
}

// SignTypedData signs and returns the canonical 65-byte signature.
func (h *Handle) SignTypedData(ctx context.Context, typedData apitypes.TypedData) ([]byte, error) {
	raw, err := h.sign(ctx, typedData)
	if err != nil {
		return nil, err
	}
	return NormalizeSignature(raw)
}

// ResolveAddress returns the signing address: the explicit override
// when given, else the signer's own address. The result must be an
// 0x-hex or bech32 address.
func (h *Handle) ResolveAddress(ctx context.Context, override string) (string, error) {
	candidate := override
	if candidate == "" {
		candidate = h.address
	}
	if candidate == "" && h.addressFn != nil {
		resolved, err := h.addressFn(ctx)
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve signer address")
		}
		candidate = resolved
	}
	if candidate == "" {
		return "", aulterrors.Configurationf("signer exposes no address; provide one explicitly")
	}
	if !common.IsHexAddress(candidate) && !address.IsBech32(candidate) {
		return "", aulterrors.Validationf("unrecognized address format %q", candidate)
	}
	return candidate, nil
}

type resolveOptions struct {
	kind    Kind
	address string
}

// Option adjusts signer resolution.
type Option func(*resolveOptions)

// WithKind names the signer variant explicitly, bypassing structural
// detection.
func WithKind(kind Kind) Option {
	return func(o *resolveOptions) { o.kind = kind }
}

// WithAddress supplies the signing address when the signer itself has
// no address source.
func WithAddress(addr string) Option {
	return func(o *resolveOptions) { o.address = addr }
}

// Resolve normalizes any supported signer input into a Handle. The
// dispatch is a single ordered sequence:
//
//  1. SDK-native LocalSigner — checked first because it would also
//     match the structural account-shape heuristic below.
//  2. Explicit kind tag from the caller.
//  3. Account shape: address plus typed-data method, gated on a
//     provider-like property to disambiguate from generic adapters.
//  4. RPC wallet: a Request method plus an address source. Request
//     without any address source is a configuration error, never a
//     silent guess.
//  5. Last resort: any object with one typed-data signing method.
func Resolve(input any, opts ...Option) (*Handle, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if local, ok := input.(*LocalSigner); ok {
		return &Handle{sign: local.SignTypedData, address: local.Address()}, nil
	}

	if o.kind != "" {
		return resolveKind(input, o)
	}

	if holder, ok := input.(AddressHolder); ok {
		if tds, ok := input.(TypedDataSigner); ok {
			if _, backed := input.(ProviderBacked); backed {
				return &Handle{sign: tds.SignTypedData, address: holder.Address()}, nil
			}
		}
	}

	if rpc, ok := input.(RPCWallet); ok {
		return resolveRPC(rpc, input, o)
	}

	return resolveGeneric(input, o)
}

func resolveKind(input any, o resolveOptions) (*Handle, error) {
	switch o.kind {
	case KindLocal:
		local, ok := input.(*LocalSigner)
		if !ok {
			return nil, aulterrors.Configurationf("signer tagged %q is a %T, not a LocalSigner", o.kind, input)
		}
		return &Handle{sign: local.SignTypedData, address: local.Address()}, nil
	case KindRPC:
		rpc, ok := input.(RPCWallet)
		if !ok {
			return nil, aulterrors.Configurationf("signer tagged %q has no Request method", o.kind)
		}
		return resolveRPC(rpc, input, o)
	case KindAccount, KindSplit, KindFunc, KindGeneric:
		return resolveGeneric(input, o)
	default:
		return nil, aulterrors.Configurationf("unknown signer kind %q", o.kind)
	}
}

func resolveRPC(rpc RPCWallet, input any, o resolveOptions) (*Handle, error) {
	h := &Handle{address: o.address}
	if h.address == "" {
		switch src := input.(type) {
		case AddressHolder:
			h.address = src.Address()
		case AddressResolver:
			h.addressFn = src.ResolveAddress
		default:
			return nil, aulterrors.Configurationf(
				"rpc wallet exposes no address source; provide an explicit address")
		}
	}
	h.sign = func(ctx context.Context, typedData apitypes.TypedData) ([]byte, error) {
		addr, err := h.ResolveAddress(ctx, "")
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(typedData)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal typed data")
		}
		res, err := rpc.Request(ctx, "eth_signTypedData_v4", addr, string(payload))
		if err != nil {
			return nil, errors.Wrap(err, "eth_signTypedData_v4 request failed")
		}
		return decodeRPCSignature(res)
	}
	return h, nil
}

func resolveGeneric(input any, o resolveOptions) (*Handle, error) {
	h := &Handle{address: o.address}
	if h.address == "" {
		if holder, ok := input.(AddressHolder); ok {
			h.address = holder.Address()
		} else if resolver, ok := input.(AddressResolver); ok {
			h.addressFn = resolver.ResolveAddress
		}
	}

	switch s := input.(type) {
	case TypedDataSigner:
		h.sign = s.SignTypedData
	case SplitSigner:
		h.sign = func(ctx context.Context, typedData apitypes.TypedData) ([]byte, error) {
			hexSig, err := s.SignTypedMessage(ctx, typedData.Domain, typedData.Types, typedData.PrimaryType, typedData.Message)
			if err != nil {
				return nil, err
			}
			return NormalizeSignature(hexSig)
		}
	case Func:
		h.sign = s
	case func(ctx context.Context, typedData apitypes.TypedData) ([]byte, error):
		h.sign = s
	default:
		return nil, aulterrors.Configurationf("unable to resolve signer of type %T", input)
	}
	return h, nil
}

// decodeRPCSignature accepts either a JSON hex string or a {signature}
// wrapper from the wallet.
func decodeRPCSignature(res json.RawMessage) ([]byte, error) {
	var hexSig string
	if err := json.Unmarshal(res, &hexSig); err == nil {
		return NormalizeSignature(hexSig)
	}
	var envelope SignatureEnvelope
	if err := json.Unmarshal(res, &envelope); err == nil && envelope.Signature != "" {
		return NormalizeSignature(envelope.Signature)
	}
	return nil, aulterrors.Validationf("unrecognized signature response %s", string(res))
}
