package codec

import (
	"fmt"

	"github.com/arloliu/bitpack/bitio"
	"github.com/arloliu/bitpack/errs"
)

// MaxVarintGroups is the maximum number of 8-bit groups a
// variable-length integer may occupy. Ten groups of 7 data bits cover
// the full 64-bit range; a stream claiming more is corrupt.
const MaxVarintGroups = 10

// WriteUvarint appends v as a variable-length unsigned integer:
// 8-bit groups, least significant group first, with the top bit of
// each group set while further groups follow.
//
// Zero encodes to a single group. Encoded size is monotonic in
// magnitude: 1 group for values below 2^7, 2 below 2^14, and so on.
func WriteUvarint(w *bitio.Writer, v uint64) {
	for v >= 0x80 {
		w.WriteBits(0x80|(v&0x7F), 8)
		v >>= 7
	}
	w.WriteBits(v, 8)
}

// ReadUvarint consumes a variable-length unsigned integer.
//
// Fails with errs.ErrMalformedVarint if the stream claims more than
// MaxVarintGroups groups or the final group overflows 64 bits, and
// with errs.ErrUnexpectedEnd if the stream ends mid-value.
func ReadUvarint(r *bitio.Reader) (uint64, error) {
	var v uint64
	var shift uint

	for i := 0; i < MaxVarintGroups; i++ {
		group, err := r.ReadBits(8)
		if err != nil {
			return 0, err
		}

		if group < 0x80 {
			// Terminal group. The 10th group holds only the top bit of
			// a 64-bit value; anything larger overflows.
			if i == MaxVarintGroups-1 && group > 1 {
				return 0, fmt.Errorf("%w: value overflows 64 bits", errs.ErrMalformedVarint)
			}

			return v | group<<shift, nil
		}

		v |= (group & 0x7F) << shift
		shift += 7
	}

	return 0, fmt.Errorf("%w: exceeds %d groups", errs.ErrMalformedVarint, MaxVarintGroups)
}

// WriteVarint appends v as a zigzag-mapped variable-length integer.
//
// The zigzag mapping interleaves signs (0, -1, 1, -2, 2 -> 0, 1, 2,
// 3, 4) so small magnitudes of either sign encode to few groups. The
// mapping uses wraparound two's-complement arithmetic, so
// math.MinInt64 round-trips correctly.
func WriteVarint(w *bitio.Writer, v int64) {
	uval := uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
	WriteUvarint(w, uval)
}

// ReadVarint consumes a zigzag-mapped variable-length signed integer.
func ReadVarint(r *bitio.Reader) (int64, error) {
	uval, err := ReadUvarint(r)
	if err != nil {
		return 0, err
	}

	return int64(uval>>1) ^ -int64(uval&1), nil //nolint:gosec
}

// UvarintSize returns the number of 8-bit groups WriteUvarint emits
// for v. Useful for pre-sizing buffers.
func UvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
