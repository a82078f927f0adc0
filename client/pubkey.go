package client

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"

	"github.com/ault-network/ault-go/aulterrors"
)

// resolvePublicKey returns the 33-byte compressed secp256k1 public key
// the chain will verify against. The chain-recorded key wins when the
// account has one; otherwise the key is recovered from the signature
// over the EIP-712 digest. For recovered keys the derived address must
// match the signing address, surfacing a wrong-key defect locally
// instead of as an opaque chain-side signature failure.
func resolvePublicKey(account AccountInfo, typedData apitypes.TypedData, sig []byte, expectedHexAddr string) ([]byte, error) {
	if account.PubKeyBase64 != "" {
		key, err := decodeBase64(account.PubKeyBase64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid chain-reported public key")
		}
		return key, nil
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash typed data")
	}
	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recover public key from signature")
	}

	if expectedHexAddr != "" {
		recovered := crypto.PubkeyToAddress(*pubKey)
		if recovered != common.HexToAddress(expectedHexAddr) {
			return nil, aulterrors.Validationf(
				"recovered public key belongs to %s, not signer %s", recovered.Hex(), expectedHexAddr)
		}
	}
	return crypto.CompressPubkey(pubKey), nil
}
