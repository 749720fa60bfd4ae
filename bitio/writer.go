package bitio

import (
	"encoding/binary"

	"github.com/arloliu/bitpack/internal/pool"
)

// Writer accumulates bits into a growable byte buffer.
//
// Bits are collected in a 64-bit accumulator and flushed to the backing
// buffer whenever the accumulator fills. Backing storage grows
// geometrically, so appending n bits costs amortized O(n).
//
// A Writer is single-use: after Finish() the backing buffer is returned
// to the pool and any further call panics.
type Writer struct {
	bitBuf   uint64 // accumulator for bits not yet flushed to buf
	bitCount int    // number of valid bits in bitBuf
	bitLen   int    // total bits written since creation/Reset

	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a pooled byte buffer.
func NewWriter() *Writer {
	return &Writer{
		buf: pool.GetMessageBuffer(),
	}
}

// WriteBits appends the low `width` bits of value to the stream,
// most significant first. Width must be in the range 1..64; any other
// width is a schema bug and panics.
func (w *Writer) WriteBits(value uint64, width int) {
	if w.buf == nil {
		panic("bitio: writer already finished")
	}
	if width < 1 || width > 64 {
		panic("bitio: bit width out of range 1..64")
	}

	if width < 64 {
		value &= (1 << width) - 1
	}
	w.bitLen += width

	available := 64 - w.bitCount
	if width <= available {
		w.bitBuf = (w.bitBuf << width) | value
		w.bitCount += width

		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// Split across the accumulator boundary: high bits fill the current
	// accumulator, low bits start the next one.
	low := width - available
	w.bitBuf = (w.bitBuf << available) | (value >> low)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((1 << low) - 1)
	w.bitCount = low
}

// WriteBit appends a single bit (the low bit of b).
func (w *Writer) WriteBit(b uint64) {
	if w.buf == nil {
		panic("bitio: writer already finished")
	}

	w.bitBuf = (w.bitBuf << 1) | (b & 1)
	w.bitCount++
	w.bitLen++

	if w.bitCount == 64 {
		w.flush()
	}
}

// WriteBool appends a single bit: 1 for true, 0 for false.
func (w *Writer) WriteBool(b bool) {
	var bit uint64
	if b {
		bit = 1
	}
	w.WriteBit(bit)
}

// WriteBytes appends p to the stream as consecutive 8-bit writes.
//
// When the write cursor is byte-aligned the bytes are copied in bulk
// into the backing buffer, bypassing the accumulator. The fast path is
// an optimization only; the resulting bit layout is identical either
// way.
func (w *Writer) WriteBytes(p []byte) {
	if w.buf == nil {
		panic("bitio: writer already finished")
	}
	if len(p) == 0 {
		return
	}

	if w.bitCount%8 == 0 {
		// Aligned: drain whole bytes from the accumulator, then bulk copy.
		w.flush()
		w.buf.Grow(len(p))
		w.buf.MustWrite(p)
		w.bitLen += len(p) * 8

		return
	}

	for _, b := range p {
		w.WriteBits(uint64(b), 8)
	}
}

// BitLen returns the total number of bits written.
func (w *Writer) BitLen() int {
	return w.bitLen
}

// Size returns the number of bytes the finished stream will occupy,
// including the zero-padded final partial byte.
func (w *Writer) Size() int {
	return (w.bitLen + 7) / 8
}

// Bytes flushes any pending bits, padding the final partial byte with
// zero bits, and returns the packed stream.
//
// The returned slice references the internal buffer: it is valid until
// Reset or Finish, and the caller must not modify it. Bytes is intended
// to be called once, at the end of a top-level encode; writing more
// bits after calling Bytes produces a stream with embedded pad bits and
// is a misuse.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		panic("bitio: writer already finished")
	}

	if w.bitCount > 0 {
		w.flush()
	}

	return w.buf.Bytes()
}

// Reset clears the writer for a fresh stream while retaining the
// backing buffer.
func (w *Writer) Reset() {
	if w.buf == nil {
		panic("bitio: writer already finished")
	}

	w.bitBuf = 0
	w.bitCount = 0
	w.bitLen = 0
	w.buf.Reset()
}

// Finish returns the backing buffer to the pool. The writer is unusable
// afterwards; retrieve the encoded stream with Bytes (or copy it)
// before calling Finish.
func (w *Writer) Finish() {
	if w.buf == nil {
		return
	}

	pool.PutMessageBuffer(w.buf)
	w.buf = nil
}

// flush drains the accumulator into the byte buffer, MSB first. A
// partial trailing byte is zero-padded, so mid-stream callers must only
// flush when bitCount is a multiple of 8.
func (w *Writer) flush() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8

	// Left-align so the first-written bit sits in the top bit.
	aligned := w.bitBuf << (64 - w.bitCount)

	start := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)
	bs := w.buf.Slice(start, start+numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, aligned)
	} else {
		for i := range numBytes {
			shift := 56 - (i * 8)
			bs[i] = byte(aligned >> shift)
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}
