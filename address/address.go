// Package address converts between the chain's bech32 account
// addresses and their EVM hex form. Both encodings carry the same
// 20-byte payload.
package address

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ToBech32 converts an 0x-hex address to bech32 under the given
// human-readable prefix.
func ToBech32(hexAddr, prefix string) (string, error) {
	if !common.IsHexAddress(hexAddr) {
		return "", errors.Errorf("invalid hex address %q", hexAddr)
	}
	converted, err := bech32.ConvertBits(common.HexToAddress(hexAddr).Bytes(), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to regroup address bits")
	}
	encoded, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode bech32 address")
	}
	return encoded, nil
}

// ToHex converts a bech32 address to its EIP-55 checksummed hex form.
func ToHex(bech32Addr string) (string, error) {
	_, payload, err := decode(bech32Addr)
	if err != nil {
		return "", err
	}
	return common.BytesToAddress(payload).Hex(), nil
}

// Prefix returns the human-readable prefix of a bech32 address.
func Prefix(bech32Addr string) (string, error) {
	prefix, _, err := decode(bech32Addr)
	return prefix, err
}

// IsHex reports whether s is a valid 0x-hex address.
func IsHex(s string) bool {
	return common.IsHexAddress(s)
}

// IsBech32 reports whether s decodes as a bech32 address with a
// 20-byte payload, regardless of prefix.
func IsBech32(s string) bool {
	_, _, err := decode(s)
	return err == nil
}

func decode(addr string) (string, []byte, error) {
	prefix, data, err := bech32.Decode(addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "invalid bech32 address %q", addr)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to regroup address bits")
	}
	if len(payload) != common.AddressLength {
		return "", nil, errors.Errorf("address payload is %d bytes, want %d", len(payload), common.AddressLength)
	}
	return prefix, payload, nil
}
