package codec

import (
	"math"

	"github.com/arloliu/bitpack/bitio"
)

// WriteUint appends an unsigned integer as exactly `width` bits.
func WriteUint(w *bitio.Writer, v uint64, width int) {
	w.WriteBits(v, width)
}

// ReadUint consumes exactly `width` bits and returns them as an
// unsigned integer.
func ReadUint(r *bitio.Reader, width int) (uint64, error) {
	return r.ReadBits(width)
}

// WriteInt appends a signed integer as exactly `width` bits using
// two's-complement truncation. The value must be representable in
// `width` bits; out-of-range values are silently truncated, the same
// as a narrowing integer conversion.
func WriteInt(w *bitio.Writer, v int64, width int) {
	w.WriteBits(uint64(v), width)
}

// ReadInt consumes exactly `width` bits and sign-extends them to an
// int64.
func ReadInt(r *bitio.Reader, width int) (int64, error) {
	v, err := r.ReadBits(width)
	if err != nil {
		return 0, err
	}

	if width < 64 && v&(1<<(width-1)) != 0 {
		v |= ^uint64(0) << width
	}

	return int64(v), nil
}

// WriteBool appends a single bit: 1 for true, 0 for false.
func WriteBool(w *bitio.Writer, b bool) {
	w.WriteBool(b)
}

// ReadBool consumes a single bit as a bool.
func ReadBool(r *bitio.Reader) (bool, error) {
	return r.ReadBool()
}

// WriteFloat32 appends the IEEE-754 bit pattern of v as 32 bits.
func WriteFloat32(w *bitio.Writer, v float32) {
	w.WriteBits(uint64(math.Float32bits(v)), 32)
}

// ReadFloat32 consumes 32 bits and returns them as a float32.
func ReadFloat32(r *bitio.Reader) (float32, error) {
	bits, err := r.ReadBits(32)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(bits)), nil
}

// WriteFloat64 appends the IEEE-754 bit pattern of v as 64 bits.
func WriteFloat64(w *bitio.Writer, v float64) {
	w.WriteBits(math.Float64bits(v), 64)
}

// ReadFloat64 consumes 64 bits and returns them as a float64.
func ReadFloat64(r *bitio.Reader) (float64, error) {
	bits, err := r.ReadBits(64)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}
