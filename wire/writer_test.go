package wire_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/wire"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{
		0,
		1,
		127,
		128,
		300,
		1 << 32,
		1<<53 - 1,
		1 << 63,
		1<<64 - 1,
	}
	for _, v := range values {
		w := wire.NewWriter()
		w.WriteUvarint(v)
		got, n, err := wire.ReadUvarint(w.Bytes())
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, w.Len(), n)
	}
}

func TestUvarintKnownEncodings(t *testing.T) {
	w := wire.NewWriter()
	w.WriteUvarint(300)
	assert.Equal(t, []byte{0xAC, 0x02}, w.Bytes())

	w = wire.NewWriter()
	w.WriteUvarint(127)
	assert.Equal(t, []byte{0x7F}, w.Bytes())

	w = wire.NewWriter()
	w.WriteUvarint(128)
	assert.Equal(t, []byte{0x80, 0x01}, w.Bytes())
}

func TestBigUvarintMatchesUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 1<<53 - 1, 1<<64 - 1} {
		small := wire.NewWriter()
		small.WriteUvarint(v)

		big1 := wire.NewWriter()
		require.NoError(t, big1.WriteBigUvarint(new(big.Int).SetUint64(v)))

		assert.Equal(t, small.Bytes(), big1.Bytes(), "value %d", v)
	}
}

func TestBigUvarintBeyond64Bits(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 70)
	w := wire.NewWriter()
	require.NoError(t, w.WriteBigUvarint(v))

	// 71 significant bits require ceil(71/7) = 11 varint groups.
	assert.Len(t, w.Bytes(), 11)
	for i := 0; i < 10; i++ {
		assert.NotZero(t, w.Bytes()[i]&0x80)
	}
	assert.Zero(t, w.Bytes()[10]&0x80)
}

func TestBigUvarintRejectsNegative(t *testing.T) {
	w := wire.NewWriter()
	assert.Error(t, w.WriteBigUvarint(big.NewInt(-1)))
}

func TestDefaultValuesOmitted(t *testing.T) {
	w := wire.NewWriter()
	w.WriteString(1, "")
	w.WriteBytes(2, nil)
	w.WriteUint64(3, 0)
	w.WriteBool(4, false)
	require.NoError(t, w.WriteBigUint(5, big.NewInt(0)))
	assert.Empty(t, w.Bytes())
}

func TestTagLayout(t *testing.T) {
	w := wire.NewWriter()
	w.WriteTag(1, wire.TypeLengthDelim)
	assert.Equal(t, []byte{0x0A}, w.Bytes())

	w = wire.NewWriter()
	w.WriteTag(3, wire.TypeVarint)
	assert.Equal(t, []byte{0x18}, w.Bytes())
}

func TestWriteStringFraming(t *testing.T) {
	w := wire.NewWriter()
	w.WriteString(1, "ault")
	assert.Equal(t, []byte{0x0A, 0x04, 'a', 'u', 'l', 't'}, w.Bytes())
}

func TestWriteEmbeddedKeepsEmptyMessage(t *testing.T) {
	w := wire.NewWriter()
	w.WriteEmbedded(2, func(*wire.Writer) {})
	assert.Equal(t, []byte{0x12, 0x00}, w.Bytes())
}

func TestReadUvarintErrors(t *testing.T) {
	_, _, err := wire.ReadUvarint([]byte{0x80, 0x80})
	assert.Error(t, err)

	_, _, err = wire.ReadUvarint([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F,
	})
	assert.Error(t, err)
}
