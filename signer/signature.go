package signer

import (
	"encoding/hex"
	"strings"

	"github.com/ault-network/ault-go/aulterrors"
)

// SignatureEnvelope is the {signature} wrapper some wallets return
// instead of a bare hex string.
type SignatureEnvelope struct {
	Signature string `json:"signature"`
}

// NormalizeSignature converts any accepted signature representation
// into the canonical 65-byte r||s||v form with v in {0,1}.
func NormalizeSignature(v any) ([]byte, error) {
	switch sig := v.(type) {
	case []byte:
		return normalizeSignatureBytes(sig)
	case string:
		return normalizeSignatureHex(sig)
	case SignatureEnvelope:
		return normalizeSignatureHex(sig.Signature)
	case *SignatureEnvelope:
		if sig == nil {
			return nil, aulterrors.Validationf("nil signature envelope")
		}
		return normalizeSignatureHex(sig.Signature)
	case map[string]any:
		inner, ok := sig["signature"].(string)
		if !ok {
			return nil, aulterrors.Validationf("signature wrapper is missing a signature string")
		}
		return normalizeSignatureHex(inner)
	default:
		return nil, aulterrors.Validationf("unsupported signature value of type %T", v)
	}
}

func normalizeSignatureHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, aulterrors.Validationf("invalid signature hex: %v", err)
	}
	return normalizeSignatureBytes(raw)
}

func normalizeSignatureBytes(raw []byte) ([]byte, error) {
	if len(raw) != 65 {
		return nil, aulterrors.Validationf("signature must be 65 bytes, got %d", len(raw))
	}
	sig := make([]byte, 65)
	copy(sig, raw)
	// Wallets return v as 27/28; recovery expects 0/1.
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	return sig, nil
}
