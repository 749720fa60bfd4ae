package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_SingleByte(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// Two nibbles pack into one byte, MSB first.
	w.WriteBits(0xA, 4)
	w.WriteBits(0x5, 4)

	require.Equal(t, 8, w.BitLen())
	require.Equal(t, []byte{0xA5}, w.Bytes())
}

func TestWriter_PadsFinalByte(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// 3 bits: 101 -> padded to 1010_0000
	w.WriteBits(0b101, 3)

	require.Equal(t, 3, w.BitLen())
	require.Equal(t, 1, w.Size())
	require.Equal(t, []byte{0xA0}, w.Bytes())
}

func TestWriter_MasksHighBits(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// Only the low 4 bits of the value participate.
	w.WriteBits(0xFF, 4)
	w.WriteBits(0x0, 4)

	require.Equal(t, []byte{0xF0}, w.Bytes())
}

func TestWriter_AccumulatorBoundary(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// 60 + 8 bits forces a split across the 64-bit accumulator.
	w.WriteBits(0x0FFFFFFFFFFFFFFF, 60)
	w.WriteBits(0xAB, 8)

	got := w.Bytes()
	require.Len(t, got, 9)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFA, 0xB0}, got)
}

func TestWriter_FullWidth(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	w.WriteBits(0xDEADBEEFCAFEF00D, 64)
	w.WriteBits(0xFFFFFFFFFFFFFFFF, 64)

	require.Equal(t, 128, w.BitLen())
	require.Equal(t, []byte{
		0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE, 0xF0, 0x0D,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}, w.Bytes())
}

func TestWriter_WriteBit(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	for _, bit := range []uint64{1, 0, 1, 1, 0, 0, 1, 0} {
		w.WriteBit(bit)
	}

	require.Equal(t, []byte{0b10110010}, w.Bytes())
}

func TestWriter_WriteBool(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteBool(true)

	require.Equal(t, []byte{0b10100000}, w.Bytes())
}

func TestWriter_WriteBytesAligned(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	w.WriteBits(0x12, 8)
	w.WriteBytes([]byte{0x34, 0x56, 0x78})

	require.Equal(t, 32, w.BitLen())
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, w.Bytes())
}

func TestWriter_WriteBytesUnaligned(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// 0 nibble then bytes: each byte is shifted by 4 bits.
	w.WriteBits(0x0, 4)
	w.WriteBytes([]byte{0xAB, 0xCD})

	require.Equal(t, 20, w.BitLen())
	require.Equal(t, []byte{0x0A, 0xBC, 0xD0}, w.Bytes())
}

func TestWriter_LargePayloadGrows(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	const n = 100_000
	for i := range n {
		w.WriteBits(uint64(i), 17)
	}

	require.Equal(t, n*17, w.BitLen())
	require.Len(t, w.Bytes(), (n*17+7)/8)
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	w.WriteBits(0xFF, 8)
	w.Reset()

	require.Equal(t, 0, w.BitLen())

	w.WriteBits(0x42, 8)
	require.Equal(t, []byte{0x42}, w.Bytes())
}

func TestWriter_PanicsAfterFinish(t *testing.T) {
	w := NewWriter()
	w.Finish()

	require.Panics(t, func() { w.WriteBits(1, 1) })
	require.Panics(t, func() { w.Bytes() })
	require.NotPanics(t, func() { w.Finish() }) // idempotent
}

func TestWriter_PanicsOnInvalidWidth(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	require.Panics(t, func() { w.WriteBits(0, 0) })
	require.Panics(t, func() { w.WriteBits(0, 65) })
}

func BenchmarkWriter_WriteBits(b *testing.B) {
	w := NewWriter()
	defer w.Finish()

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		w.WriteBits(uint64(i), 13)
		if w.BitLen() > 1<<20 {
			w.Reset()
		}
	}
}
