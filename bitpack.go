// Package bitpack implements a densely packed bitwise binary
// serialization format.
//
// Unlike byte-aligned serializers, bitpack writes every field at bit
// granularity: a bool costs one bit, an optional's absence costs one
// bit, an enum discriminant costs exactly as many bits as its variant
// count requires, and no padding exists between fields. Combined with
// variable-length zigzag integers, this minimizes wire size for
// structured messages such as state snapshots and deltas.
//
// The format is schema-driven and positional: the stream carries no
// field names or tags. A type describes its own layout by implementing
// the codec.Encodable and codec.Decodable interfaces, writing and
// reading its fields in a fixed declared order. Encoder and decoder
// schemas must match exactly; enforcing that (e.g. through protocol
// versioning) is the caller's responsibility.
//
// # Basic Usage
//
//	type Player struct {
//	    ID     uint64
//	    Name   string
//	    Health uint8
//	    Alive  bool
//	}
//
//	func (p *Player) EncodeBits(w *bitio.Writer) {
//	    codec.WriteUvarint(w, p.ID)
//	    codec.WriteString(w, p.Name)
//	    codec.WriteUint(w, uint64(p.Health), 8)
//	    codec.WriteBool(w, p.Alive)
//	}
//
//	func (p *Player) DecodeBits(r *bitio.Reader) error {
//	    var err error
//	    if p.ID, err = codec.ReadUvarint(r); err != nil {
//	        return err
//	    }
//	    if p.Name, err = codec.ReadString(r); err != nil {
//	        return err
//	    }
//	    health, err := codec.ReadUint(r, 8)
//	    if err != nil {
//	        return err
//	    }
//	    p.Health = uint8(health)
//	    p.Alive, err = codec.ReadBool(r)
//
//	    return err
//	}
//
//	data := bitpack.Marshal(&player)
//	var decoded Player
//	err := bitpack.Unmarshal(data, &decoded)
//
// # Sealed Envelopes
//
// MarshalSealed and UnmarshalSealed additionally wrap the bit stream
// in an envelope carrying the format version, optional compression,
// and an xxHash64 integrity checksum:
//
//	data, _ := bitpack.MarshalSealed(&player,
//	    envelope.WithCompression(format.CompressionZstd),
//	)
//	err := bitpack.UnmarshalSealed(data, &decoded)
//
// # Package Structure
//
// This package provides thin top-level wrappers around the codec and
// envelope packages. For fine-grained control (hand-driven bit streams,
// custom envelope handling), use bitio, codec, and envelope directly.
package bitpack

import (
	"github.com/arloliu/bitpack/codec"
	"github.com/arloliu/bitpack/envelope"
)

// Marshal encodes v into a bit-packed byte slice.
//
// The returned slice is newly allocated and owned by the caller; the
// final partial byte is padded with zero bits.
func Marshal(v codec.Encodable) []byte {
	return codec.Marshal(v)
}

// Unmarshal decodes a bit-packed byte slice into v.
//
// The schema of v must exactly match the schema that produced data.
// Decode failures return typed errors matching the sentinels in the
// errs package via errors.Is; on error, v must not be used.
func Unmarshal(data []byte, v codec.Decodable) error {
	return codec.Unmarshal(data, v)
}

// MarshalSealed encodes v and wraps the bit stream in an envelope with
// version, compression and checksum metadata. See the envelope package
// for the available options.
func MarshalSealed(v codec.Encodable, opts ...envelope.Option) ([]byte, error) {
	return envelope.Seal(codec.Marshal(v), opts...)
}

// UnmarshalSealed opens an envelope produced by MarshalSealed,
// verifying its integrity, and decodes the payload into v.
func UnmarshalSealed(data []byte, v codec.Decodable) error {
	payload, err := envelope.Open(data)
	if err != nil {
		return err
	}

	return codec.Unmarshal(payload, v)
}
