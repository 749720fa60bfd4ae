// Package bitio provides bit-granular writing and reading over a byte
// stream.
//
// It is the foundation of the bitpack wire format: every field of every
// message is routed through Writer.WriteBits / Reader.ReadBits, so no
// padding exists between fields. Packing at bit granularity trades CPU
// cycles (shifting, masking) for wire-size reduction, which only pays
// off because every codec layer above this one also avoids byte
// alignment.
//
// # Bit Order
//
// Bits are written MSB-first: the most significant of a value's low
// `width` bits is emitted first, and the stream's first bit occupies
// the most significant bit of the first byte. The final partial byte of
// an encoded stream is padded with zero bits; pad bits are never
// interpreted as data because the schema's fixed field layout
// determines exactly how many bits the decoder consumes.
//
// # Ownership
//
// A Writer or Reader is exclusively owned by the encode or decode call
// that created it and must not be shared across goroutines. Independent
// instances may be used concurrently without coordination.
package bitio
