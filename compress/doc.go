// Package compress provides the payload compression codecs used by
// bitpack envelopes.
//
// Bit-packed payloads are already dense, so compression mostly pays
// off for payloads with repetitive structure (long sequences, string
// heavy messages) or when many messages share an envelope. Four codecs
// are available, selected by format.CompressionType:
//
//   - None: pass-through, zero overhead
//   - Zstd: best ratio, moderate speed
//   - S2: fastest, moderate ratio
//   - LZ4: fast, widely interoperable block format
//
// All codecs are safe for concurrent use; the zstd and lz4 codecs pool
// their encoder/decoder state internally.
package compress
