// Package envelope wraps encoded bitpack payloads in a small
// self-describing container: a fixed header carrying the format
// version, compression type and an integrity checksum, followed by the
// (optionally compressed) payload bytes.
//
// The envelope gives callers corruption and truncation detection
// before bit-level decoding begins. It is not transport framing:
// message boundaries, delivery and acknowledgment remain the caller's
// responsibility.
package envelope

import (
	"fmt"

	"github.com/arloliu/bitpack/compress"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/hash"
	"github.com/arloliu/bitpack/internal/options"
)

type sealConfig struct {
	compression format.CompressionType
	checksum    bool
	bigEndian   bool
}

// Option configures Seal.
type Option = options.Option[*sealConfig]

// WithCompression selects the payload compression codec. The default
// is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *sealConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithoutChecksum disables the payload checksum. Open will skip
// integrity verification for such envelopes.
func WithoutChecksum() Option {
	return options.NoError(func(cfg *sealConfig) {
		cfg.checksum = false
	})
}

// WithBigEndian stores the header's multi-byte fields big-endian.
// Interoperability aid only; the payload bit stream is unaffected.
func WithBigEndian() Option {
	return options.NoError(func(cfg *sealConfig) {
		cfg.bigEndian = true
	})
}

// Seal wraps payload in an envelope: header, then the payload
// compressed with the configured codec. The checksum covers the
// uncompressed payload, so Open verifies integrity after
// decompression, end to end.
//
// The returned slice is newly allocated and owned by the caller.
func Seal(payload []byte, opts ...Option) ([]byte, error) {
	cfg := sealConfig{
		compression: format.CompressionNone,
		checksum:    true,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	hdr := Header{
		Version:     format.Version,
		Compression: cfg.compression,
		PayloadLen:  uint64(len(payload)),
	}
	if cfg.checksum {
		hdr.Flags |= flagChecksum
		hdr.Checksum = hash.Checksum(payload)
	}
	if cfg.bigEndian {
		hdr.Flags |= flagBigEndian
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = hdr.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// Open validates an envelope and returns the uncompressed payload.
//
// It verifies the magic number, format version and compression type,
// decompresses the payload, and checks the length and checksum the
// header claims. Any failure returns one of the errs sentinels; no
// partially validated payload is ever returned.
//
// The returned slice is owned by the caller and never aliases data.
func Open(data []byte) ([]byte, error) {
	var hdr Header
	if err := hdr.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if uint64(len(payload)) != hdr.PayloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, header claims %d",
			errs.ErrChecksumMismatch, len(payload), hdr.PayloadLen)
	}

	if hdr.HasChecksum() {
		if sum := hash.Checksum(payload); sum != hdr.Checksum {
			return nil, fmt.Errorf("%w: computed 0x%016x, header claims 0x%016x",
				errs.ErrChecksumMismatch, sum, hdr.Checksum)
		}
	}

	// The no-op codec passes the input through; copy so the caller
	// never holds a view into the envelope bytes.
	if hdr.Compression == format.CompressionNone {
		payload = append([]byte(nil), payload...)
	}

	return payload, nil
}
