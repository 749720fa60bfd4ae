package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/bitpack/bitio"
	"github.com/arloliu/bitpack/errs"
)

// WriteSlice appends a sequence as a varint element count followed by
// each element encoded with writeElem, in order.
func WriteSlice[T any](w *bitio.Writer, items []T, writeElem func(*bitio.Writer, T)) {
	WriteUvarint(w, uint64(len(items)))
	for _, item := range items {
		writeElem(w, item)
	}
}

// ReadSlice consumes a length-prefixed sequence, decoding each element
// with readElem. The first element error aborts the whole read.
//
// A claimed count larger than the number of remaining bits fails with
// errs.ErrUnexpectedEnd before allocation (every element occupies at
// least one bit).
func ReadSlice[T any](r *bitio.Reader, readElem func(*bitio.Reader) (T, error)) ([]T, error) {
	count, err := ReadUvarint(r)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, nil
	}

	if count > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: claimed count %d exceeds remaining input", errs.ErrUnexpectedEnd, count)
	}

	out := make([]T, count)
	for i := range out {
		out[i], err = readElem(r)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// WriteOptional appends a presence bit and, when v is non-nil, the
// value encoded with writeElem.
func WriteOptional[T any](w *bitio.Writer, v *T, writeElem func(*bitio.Writer, T)) {
	if v == nil {
		w.WriteBool(false)
		return
	}

	w.WriteBool(true)
	writeElem(w, *v)
}

// ReadOptional consumes a presence bit and, when set, the value. A nil
// result with a nil error means the value was absent.
func ReadOptional[T any](r *bitio.Reader, readElem func(*bitio.Reader) (T, error)) (*T, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	v, err := readElem(r)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// DiscriminantWidth returns the minimum number of bits needed to
// distinguish numVariants variants: 0 for a single variant, otherwise
// the bit length of numVariants-1.
func DiscriminantWidth(numVariants int) int {
	if numVariants <= 1 {
		return 0
	}

	return bits.Len(uint(numVariants - 1)) //nolint:gosec
}

// WriteDiscriminant appends a tagged union's variant index using the
// minimum fixed width for numVariants. Tag must be below numVariants;
// violating that is a schema bug and panics.
func WriteDiscriminant(w *bitio.Writer, tag uint64, numVariants int) {
	if tag >= uint64(numVariants) { //nolint:gosec
		panic("codec: discriminant out of range")
	}

	width := DiscriminantWidth(numVariants)
	if width == 0 {
		return
	}

	w.WriteBits(tag, width)
}

// ReadDiscriminant consumes a variant index written by
// WriteDiscriminant. A decoded tag at or beyond numVariants fails with
// errs.ErrInvalidDiscriminant.
func ReadDiscriminant(r *bitio.Reader, numVariants int) (uint64, error) {
	width := DiscriminantWidth(numVariants)
	if width == 0 {
		return 0, nil
	}

	tag, err := r.ReadBits(width)
	if err != nil {
		return 0, err
	}

	if tag >= uint64(numVariants) { //nolint:gosec
		return 0, fmt.Errorf("%w: tag %d with %d variants", errs.ErrInvalidDiscriminant, tag, numVariants)
	}

	return tag, nil
}
