package codec

import (
	"github.com/arloliu/bitpack/bitio"
)

// Encodable is implemented by composite types that can write themselves
// to a bit stream.
//
// EncodeBits must write every field in fixed declared order, recursing
// into nested composites, sequences and optionals. Encoding is
// infallible for a well-typed value, so the method returns nothing.
//
// Implementations are typically written by hand field-by-field, but the
// contract is equally satisfiable by generated code.
type Encodable interface {
	EncodeBits(w *bitio.Writer)
}

// Decodable is implemented by composite types that can read themselves
// from a bit stream.
//
// DecodeBits must read fields in exactly the order EncodeBits wrote
// them and propagate the first field-level error immediately; callers
// never observe a partially decoded composite as a success.
type Decodable interface {
	DecodeBits(r *bitio.Reader) error
}

// Marshal encodes v into a freshly allocated, densely bit-packed byte
// slice. The final partial byte is padded with zero bits.
//
// The bit buffer backing the encode lives only for this call; the
// returned slice is owned by the caller.
func Marshal(v Encodable) []byte {
	w := bitio.NewWriter()
	defer w.Finish()

	v.EncodeBits(w)

	packed := w.Bytes()
	out := make([]byte, len(packed))
	copy(out, packed)

	return out
}

// Unmarshal decodes data into v.
//
// The schema of v must exactly match the schema that produced data;
// the format carries no tags or names with which to detect a mismatch.
// Trailing pad bits are ignored. On error, v may be partially
// populated and must not be used.
func Unmarshal(data []byte, v Decodable) error {
	r := bitio.NewReader(data)

	return v.DecodeBits(r)
}
