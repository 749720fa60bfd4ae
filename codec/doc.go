// Package codec implements the bitpack value encodings on top of the
// bitio bit stream, plus the schema contract composite types implement
// to encode and decode themselves.
//
// # Wire Format (version 1)
//
//   - Fixed-width unsigned integers: the low `width` bits, MSB first.
//   - Fixed-width signed integers: two's-complement truncation to
//     `width` bits; sign-extended on read.
//   - Variable-length unsigned integers: 8-bit groups, least
//     significant group first. The top bit of each group is the
//     continuation bit, the low 7 bits are data. At most 10 groups.
//   - Variable-length signed integers: zigzag-mapped to unsigned
//     (0, -1, 1, -2, ... -> 0, 1, 2, 3, ...) then encoded as above, so
//     small magnitudes of either sign stay small on the wire.
//   - Floats: IEEE-754 bit pattern, fixed 32 or 64 bits.
//   - Byte strings: varint length prefix followed by the raw bytes.
//   - Text strings: same as byte strings; decode validates UTF-8.
//   - Sequences: varint element count followed by the elements.
//   - Optionals: one presence bit, then the value if present.
//   - Tagged unions: a fixed-width discriminant sized to the variant
//     count, then the variant's fields.
//
// The stream is purely positional: it carries no field names, tags, or
// type markers. Encoder and decoder must agree on the exact schema;
// a mismatch decodes into nonsense without necessarily raising an
// error, and preventing it (e.g. via protocol versioning) is the
// caller's responsibility.
package codec
