package wire

import (
	"math/big"

	"github.com/pkg/errors"
)

// EthSecp256k1PubKeyTypeURL is the Any type URL the chain expects for
// EVM-wallet public keys.
const EthSecp256k1PubKeyTypeURL = "/ethermint.crypto.v1.ethsecp256k1.PubKey"

// signModeLegacyAminoJSON is the sign mode carried in SignerInfo for
// EIP-712 signed transactions (SIGN_MODE_LEGACY_AMINO_JSON).
const signModeLegacyAminoJSON = 127

// Any is a Protobuf Any: a type URL plus the encoded payload.
type Any struct {
	TypeURL string
	Value   []byte
}

func (a Any) encode(w *Writer) {
	w.WriteString(1, a.TypeURL)
	w.WriteBytes(2, a.Value)
}

// Coin is a denom/amount pair. Amount is a decimal string to preserve
// precision beyond 64 bits.
type Coin struct {
	Denom  string
	Amount string
}

// Fee describes the transaction fee: amount coins and a gas limit.
type Fee struct {
	Amount   []Coin
	GasLimit uint64
	Payer    string
	Granter  string
}

// EncodeTxBody encodes a TxBody from message envelopes and a memo.
//
//	messages = 1 (repeated Any), memo = 2
func EncodeTxBody(messages []Any, memo string) []byte {
	w := NewWriter()
	for _, msg := range messages {
		w.WriteEmbedded(1, msg.encode)
	}
	w.WriteString(2, memo)
	return w.Bytes()
}

// EncodeFee encodes a Fee.
//
//	amount = 1 (repeated Coin), gas_limit = 2, payer = 3, granter = 4
func EncodeFee(fee Fee) []byte {
	w := NewWriter()
	for _, coin := range fee.Amount {
		w.WriteEmbedded(1, func(cw *Writer) {
			cw.WriteString(1, coin.Denom)
			cw.WriteString(2, coin.Amount)
		})
	}
	w.WriteUint64(2, fee.GasLimit)
	w.WriteString(3, fee.Payer)
	w.WriteString(4, fee.Granter)
	return w.Bytes()
}

// EncodeSignerInfo encodes a SignerInfo for a legacy-Amino-JSON signed
// transaction.
//
//	public_key = 1 (Any), mode_info = 2 (single.mode), sequence = 3
func EncodeSignerInfo(pubKey Any, sequence uint64) []byte {
	w := NewWriter()
	w.WriteEmbedded(1, pubKey.encode)
	w.WriteEmbedded(2, func(mw *Writer) {
		mw.WriteEmbedded(1, func(sw *Writer) {
			sw.WriteUint64(1, signModeLegacyAminoJSON)
		})
	})
	w.WriteUint64(3, sequence)
	return w.Bytes()
}

// EncodeAuthInfo encodes an AuthInfo from pre-encoded SignerInfo
// payloads and a fee.
//
//	signer_infos = 1 (repeated), fee = 2
func EncodeAuthInfo(signerInfos [][]byte, fee Fee) []byte {
	w := NewWriter()
	for _, info := range signerInfos {
		w.WriteBytes(1, info)
	}
	w.WriteBytes(2, EncodeFee(fee))
	return w.Bytes()
}

// EncodeTxRaw encodes the final broadcastable TxRaw.
//
//	body_bytes = 1, auth_info_bytes = 2, signatures = 3 (repeated)
func EncodeTxRaw(bodyBytes, authInfoBytes []byte, signatures [][]byte) []byte {
	w := NewWriter()
	w.WriteBytes(1, bodyBytes)
	w.WriteBytes(2, authInfoBytes)
	for _, sig := range signatures {
		w.WriteBytes(3, sig)
	}
	return w.Bytes()
}

// PubKeyAny wraps a compressed secp256k1 public key in the chain's
// eth_secp256k1 Any envelope. The inner PubKey message has a single
// bytes field: key = 1.
func PubKeyAny(compressed []byte) Any {
	w := NewWriter()
	w.WriteBytes(1, compressed)
	return Any{TypeURL: EthSecp256k1PubKeyTypeURL, Value: w.Bytes()}
}

var nanosPerSecond = big.NewInt(1_000_000_000)

// EncodeDuration encodes a google.protobuf.Duration from a nanosecond
// count. The seconds/nanos split uses integer division on the big.Int;
// floating point would lose precision at large magnitudes.
//
//	seconds = 1, nanos = 2
func EncodeDuration(nanoseconds *big.Int) ([]byte, error) {
	if nanoseconds.Sign() < 0 {
		return nil, errors.Errorf("negative duration %s is not supported", nanoseconds)
	}
	seconds, nanos := new(big.Int).DivMod(nanoseconds, nanosPerSecond, new(big.Int))
	w := NewWriter()
	if err := w.WriteBigUint(1, seconds); err != nil {
		return nil, err
	}
	w.WriteUint64(2, nanos.Uint64())
	return w.Bytes(), nil
}
