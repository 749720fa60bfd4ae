// Package endian provides byte order utilities for the byte-aligned
// parts of the bitpack format.
//
// The bit stream itself is endianness-free (bits are written MSB-first
// regardless of host byte order), but the envelope header is a plain
// byte-aligned struct and needs an explicit byte order. EndianEngine
// combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// so header code can both read in place and append efficiently.
//
// All functions and returned engines are immutable, stateless, and safe
// for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces
// from encoding/binary into a single interface. It is satisfied by
// binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order by probing a
// fixed integer value.
func CheckEndianness() binary.ByteOrder {
	// 256 stored in memory: a little-endian host puts the zero byte
	// first, a big-endian host puts 0x01 first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native
// byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
