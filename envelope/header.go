package envelope

import (
	"fmt"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// HeaderSize is the fixed size of an envelope header in bytes.
const HeaderSize = 24

// Header flag bits.
const (
	flagBigEndian uint8 = 1 << 0 // multi-byte header fields are big-endian
	flagChecksum  uint8 = 1 << 1 // checksum field is populated and must verify
)

// Header is the fixed-size section at the start of a sealed envelope.
//
// Layout (offsets in bytes):
//
//	0-1   magic (always little-endian)
//	2     format version
//	3     flags
//	4     compression type
//	5-7   reserved, zero
//	8-15  uncompressed payload length
//	16-23 xxHash64 checksum of the uncompressed payload
//
// The magic and single-byte fields are byte-order independent; the
// length and checksum fields use the byte order announced by the flags,
// so the header is self-describing.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	PayloadLen  uint64
	Checksum    uint64
}

// BigEndian reports whether the header's multi-byte fields use
// big-endian byte order.
func (h *Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

// HasChecksum reports whether the checksum field is populated.
func (h *Header) HasChecksum() bool {
	return h.Flags&flagChecksum != 0
}

// Engine returns the byte-order engine for the header's multi-byte
// fields.
func (h *Header) Engine() endian.EndianEngine {
	if h.BigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// AppendTo appends the serialized header to b and returns the extended
// slice.
func (h *Header) AppendTo(b []byte) []byte {
	b = append(b, byte(format.Magic&0xFF), byte(format.Magic>>8))
	b = append(b, h.Version, h.Flags, byte(h.Compression), 0, 0, 0)

	engine := h.Engine()
	b = engine.AppendUint64(b, h.PayloadLen)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// Parse reads a header from the start of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != format.Magic {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagic, magic)
	}

	h.Version = data[2]
	if h.Version != format.Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.Flags = data[3]
	h.Compression = format.CompressionType(data[4])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, data[4])
	}

	engine := h.Engine()
	h.PayloadLen = engine.Uint64(data[8:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}
