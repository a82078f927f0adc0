// Package wire implements the minimal subset of the Protobuf wire format
// needed to assemble Ault transactions: varints, tags, length-delimited
// fields and the fixed envelope messages (TxBody, AuthInfo, TxRaw).
//
// Encoding follows proto3 semantics: zero integers, false booleans and
// empty strings/bytes are never written. Repeated fields are emitted
// unpacked, one tag/value pair per element.
package wire

import (
	"math/big"

	"github.com/pkg/errors"
)

// Wire types used by the chain's schema. Fixed32/fixed64 never occur.
const (
	TypeVarint      = 0
	TypeLengthDelim = 2
)

// Writer accumulates an encoded Protobuf message.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded message so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteUvarint appends v in base-128 varint encoding.
func (w *Writer) WriteUvarint(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

// WriteBigUvarint appends an arbitrary-precision non-negative integer in
// base-128 varint encoding.
func (w *Writer) WriteBigUvarint(v *big.Int) error {
	if v.Sign() < 0 {
		return errors.Errorf("negative value %s cannot be varint encoded", v)
	}
	if v.IsUint64() {
		w.WriteUvarint(v.Uint64())
		return nil
	}
	rest := new(big.Int).Set(v)
	low := new(big.Int)
	for rest.BitLen() > 7 {
		low.And(rest, big7f)
		w.buf = append(w.buf, byte(low.Uint64())|0x80)
		rest.Rsh(rest, 7)
	}
	w.buf = append(w.buf, byte(rest.Uint64()))
	return nil
}

var big7f = big.NewInt(0x7f)

// WriteTag appends the tag for fieldNumber with the given wire type.
func (w *Writer) WriteTag(fieldNumber uint64, wireType uint64) {
	w.WriteUvarint(fieldNumber<<3 | wireType)
}

// WriteString appends a length-delimited UTF-8 string field. Empty
// strings are omitted.
func (w *Writer) WriteString(fieldNumber uint64, s string) {
	if s == "" {
		return
	}
	w.WriteTag(fieldNumber, TypeLengthDelim)
	w.WriteUvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteBytes appends a length-delimited byte field. Empty slices are
// omitted.
func (w *Writer) WriteBytes(fieldNumber uint64, b []byte) {
	if len(b) == 0 {
		return
	}
	w.WriteTag(fieldNumber, TypeLengthDelim)
	w.WriteUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteUint64 appends a varint integer field. Zero is omitted.
func (w *Writer) WriteUint64(fieldNumber uint64, v uint64) {
	if v == 0 {
		return
	}
	w.WriteTag(fieldNumber, TypeVarint)
	w.WriteUvarint(v)
}

// WriteBigUint appends an arbitrary-precision varint integer field. Zero
// is omitted.
func (w *Writer) WriteBigUint(fieldNumber uint64, v *big.Int) error {
	if v == nil || v.Sign() == 0 {
		return nil
	}
	w.WriteTag(fieldNumber, TypeVarint)
	return w.WriteBigUvarint(v)
}

// WriteBool appends a varint boolean field. False is omitted.
func (w *Writer) WriteBool(fieldNumber uint64, v bool) {
	if !v {
		return
	}
	w.WriteTag(fieldNumber, TypeVarint)
	w.WriteUvarint(1)
}

// WriteRaw appends b verbatim, without tag or length. Callers use it
// for repeated elements whose framing they have already written.
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteEmbedded appends a length-delimited embedded message produced by
// enc. The field is written even when the payload is empty, preserving
// message presence.
func (w *Writer) WriteEmbedded(fieldNumber uint64, enc func(*Writer)) {
	child := NewWriter()
	enc(child)
	w.WriteTag(fieldNumber, TypeLengthDelim)
	w.WriteUvarint(uint64(len(child.buf)))
	w.buf = append(w.buf, child.buf...)
}

// ReadUvarint decodes a base-128 varint from the front of b, returning
// the value and the number of bytes consumed. Values above 64 bits are
// rejected.
func ReadUvarint(b []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, c := range b {
		if shift >= 64 || (shift == 63 && c > 1) {
			return 0, 0, errors.New("varint overflows 64 bits")
		}
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, errors.New("truncated varint")
}
