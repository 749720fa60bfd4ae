package compress

import (
	"fmt"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is owned by the caller; the input slice is not
	// modified. Implementations may reuse internal buffers.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// Returns an error if the data is corrupted or was compressed with
	// an incompatible algorithm. The returned slice is owned by the
	// caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression
// type. Unknown types fail with errs.ErrInvalidCompression.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
