// Package errs defines the sentinel errors returned by bitpack decode
// operations.
//
// All decode failures wrap one of these sentinels, so callers can match
// them with errors.Is regardless of the contextual message added at the
// failure site:
//
//	_, err := codec.ReadString(r)
//	if errors.Is(err, errs.ErrInvalidUTF8) {
//	    // reject the message
//	}
//
// Encoding has no error taxonomy: given a well-typed in-memory value,
// encoding cannot fail (short of allocation failure, which is not a
// recoverable typed error).
package errs

import "errors"

var (
	// ErrUnexpectedEnd is returned when a read requests more bits than
	// remain in the stream. It always indicates incomplete or corrupt
	// input, never a program defect.
	ErrUnexpectedEnd = errors.New("unexpected end of bit stream")

	// ErrMalformedVarint is returned when a variable-length integer
	// exceeds the maximum allowed group count. It protects against
	// corrupted streams causing unbounded reads.
	ErrMalformedVarint = errors.New("malformed varint")

	// ErrInvalidUTF8 is returned when a decoded string's bytes are not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

	// ErrInvalidDiscriminant is returned when a tagged union's decoded
	// variant index is outside the declared variant count.
	ErrInvalidDiscriminant = errors.New("invalid union discriminant")

	// ErrInvalidMagic is returned when an envelope does not start with
	// the bitpack magic number.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidHeaderSize is returned when an envelope is too short to
	// contain a complete header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrUnsupportedVersion is returned when an envelope header carries
	// a format version this library does not implement.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrInvalidCompression is returned when an envelope header carries
	// an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrChecksumMismatch is returned when an envelope payload fails
	// checksum verification.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
