package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/bitpack/bitio"
	"github.com/arloliu/bitpack/errs"
)

// InvalidUTF8Error reports a decoded string whose bytes are not
// well-formed UTF-8. Offset is the byte offset of the first invalid
// sequence within the string.
//
// It matches errs.ErrInvalidUTF8 via errors.Is.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte offset %d", e.Offset)
}

func (e *InvalidUTF8Error) Unwrap() error {
	return errs.ErrInvalidUTF8
}

// WriteBytes appends a byte sequence as a varint length prefix
// followed by the raw bytes.
func WriteBytes(w *bitio.Writer, p []byte) {
	WriteUvarint(w, uint64(len(p)))
	w.WriteBytes(p)
}

// ReadBytes consumes a length-prefixed byte sequence.
//
// A claimed length that cannot fit in the remaining bits fails with
// errs.ErrUnexpectedEnd before any allocation, so a corrupted length
// prefix cannot trigger a huge allocation.
func ReadBytes(r *bitio.Reader) ([]byte, error) {
	n, err := ReadUvarint(r)
	if err != nil {
		return nil, err
	}

	if n > uint64(r.Remaining())/8 {
		return nil, fmt.Errorf("%w: claimed length %d exceeds remaining input", errs.ErrUnexpectedEnd, n)
	}

	return r.ReadBytes(int(n))
}

// WriteString appends a text string using the same length-prefixed
// layout as WriteBytes. Go strings are encoded as-is; the encoder
// never validates (the decoder enforces UTF-8 on the way back in).
func WriteString(w *bitio.Writer, s string) {
	WriteUvarint(w, uint64(len(s)))
	if len(s) > 0 {
		w.WriteBytes([]byte(s))
	}
}

// ReadString consumes a length-prefixed text string and validates that
// it is well-formed UTF-8.
//
// Validation is a bulk scan over the whole byte sequence; on failure
// the first invalid sequence is located and reported via
// *InvalidUTF8Error rather than being replaced or ignored.
func ReadString(r *bitio.Reader) (string, error) {
	raw, err := ReadBytes(r)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", &InvalidUTF8Error{Offset: invalidUTF8Offset(raw)}
	}

	return string(raw), nil
}

// invalidUTF8Offset locates the first invalid UTF-8 sequence in p.
// Only called after utf8.Valid has already failed, so the scan always
// terminates at a real offset.
func invalidUTF8Offset(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	return len(p)
}
