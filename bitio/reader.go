package bitio

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/bitpack/errs"
)

// Reader consumes bits from a received byte slice.
//
// The total bit length is fixed at 8 * len(data) when the Reader is
// created; reading past it fails with errs.ErrUnexpectedEnd rather
// than yielding undefined data.
//
// The Reader does not copy the input slice. The caller must not modify
// it while the Reader is in use.
type Reader struct {
	data     []byte
	bytePos  int    // next byte to load into the accumulator
	bitBuf   uint64 // left-aligned accumulator of loaded, unread bits
	bitCount int    // number of valid bits in bitBuf
}

// NewReader wraps data in a Reader opened at bit position zero.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return (len(r.data)-r.bytePos)*8 + r.bitCount
}

// ReadBits consumes and returns the next `width` bits, right-aligned.
// Width must be in the range 1..64; any other width is a schema bug and
// panics. Fails with errs.ErrUnexpectedEnd if fewer than `width` bits
// remain.
func (r *Reader) ReadBits(width int) (uint64, error) {
	if width < 1 || width > 64 {
		panic("bitio: bit width out of range 1..64")
	}

	if width <= r.bitCount {
		result := r.bitBuf >> (64 - width)
		r.bitBuf <<= width
		r.bitCount -= width

		return result, nil
	}

	if r.Remaining() < width {
		return 0, fmt.Errorf("%w: need %d bits, %d remain", errs.ErrUnexpectedEnd, width, r.Remaining())
	}

	var result uint64
	first := true

	for width > 0 {
		if r.bitCount == 0 {
			r.fill()
		}

		n := width
		if n > r.bitCount {
			n = r.bitCount
		}

		chunk := r.bitBuf >> (64 - n)
		if first {
			result = chunk
			first = false
		} else {
			result = (result << n) | chunk
		}

		r.bitBuf <<= n
		r.bitCount -= n
		width -= n
	}

	return result, nil
}

// ReadBit consumes and returns a single bit.
func (r *Reader) ReadBit() (uint64, error) {
	if r.bitCount == 0 {
		if r.bytePos >= len(r.data) {
			return 0, fmt.Errorf("%w: need 1 bit, 0 remain", errs.ErrUnexpectedEnd)
		}
		r.fill()
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--

	return bit, nil
}

// ReadBool consumes a single bit and returns it as a bool.
func (r *Reader) ReadBool() (bool, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return false, err
	}

	return bit == 1, nil
}

// ReadBytes consumes n bytes from the stream.
//
// When the read cursor is byte-aligned the bytes are copied in bulk
// from the input slice; otherwise each byte is assembled from 8-bit
// reads. Fails with errs.ErrUnexpectedEnd if fewer than 8*n bits
// remain.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		panic("bitio: negative byte count")
	}
	if n == 0 {
		return nil, nil
	}

	if r.Remaining() < n*8 {
		return nil, fmt.Errorf("%w: need %d bytes, %d bits remain", errs.ErrUnexpectedEnd, n, r.Remaining())
	}

	out := make([]byte, n)

	if r.bitCount%8 == 0 {
		// Aligned: drain whole bytes from the accumulator, then bulk copy.
		i := 0
		for r.bitCount > 0 && i < n {
			out[i] = byte(r.bitBuf >> 56)
			r.bitBuf <<= 8
			r.bitCount -= 8
			i++
		}

		copied := copy(out[i:], r.data[r.bytePos:])
		r.bytePos += copied

		return out, nil
	}

	for i := range out {
		v, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}

	return out, nil
}

// fill loads up to 8 bytes from the input into the accumulator,
// left-aligned. The caller must ensure unread bytes remain.
func (r *Reader) fill() {
	avail := len(r.data) - r.bytePos

	if avail >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return
	}

	r.bitBuf = 0
	for i := 0; i < avail; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= uint(8 * (8 - avail))
	r.bitCount = avail * 8
}
