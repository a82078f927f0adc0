package signer

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

// LocalSigner signs with an in-process secp256k1 private key. It is
// the SDK-native signer; Resolve recognizes it before any structural
// heuristic since it would otherwise match the account-shape check.
type LocalSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewLocalSigner wraps an ECDSA private key.
func NewLocalSigner(key *ecdsa.PrivateKey) *LocalSigner {
	return &LocalSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// LocalSignerFromHex parses a hex-encoded private key, with or without
// the 0x prefix.
func LocalSignerFromHex(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}
	return NewLocalSigner(key), nil
}

// Address returns the signer's EIP-55 checksummed address.
func (s *LocalSigner) Address() string {
	return s.address.Hex()
}

// SignTypedData hashes the typed data per EIP-712 and signs the digest.
// The returned signature is 65 bytes with a 0/1 recovery id.
func (s *LocalSigner) SignTypedData(_ context.Context, typedData apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash typed data")
	}
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign typed data digest")
	}
	return sig, nil
}
