// Package format defines the constants shared by the bitpack wire
// format: the envelope magic number, the bit-layout version, and the
// payload compression types.
package format

// Magic identifies a bitpack envelope. It occupies the first two bytes
// of a sealed payload, little-endian.
const Magic uint16 = 0xB17C

// Version is the current bit-layout version. It fixes the varint group
// width, continuation-bit convention and zigzag mapping documented in
// the codec package; any change to those constants requires a new
// version.
const Version uint8 = 1

// CompressionType selects how an envelope payload is compressed.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // no compression
	CompressionZstd CompressionType = 0x2 // Zstandard
	CompressionS2   CompressionType = 0x3 // S2 (Snappy-compatible)
	CompressionLZ4  CompressionType = 0x4 // LZ4 block format
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
