package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

func testPayload() []byte {
	return bytes.Repeat([]byte("abcdefgh01234567"), 256)
}

func TestGetCodec(t *testing.T) {
	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(comp)
		require.NoError(t, err, comp.String())
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestCodecs_CompressibleInputShrinks(t *testing.T) {
	payload := testPayload()

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), name)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for name, codec := range map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err, name)

		got, err := codec.Decompress(compressed)
		require.NoError(t, err, name)
		require.Empty(t, got, name)
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}

func TestLZ4_CorruptInput(t *testing.T) {
	codec := NewLZ4Compressor()

	// A block claiming a long literal run that isn't there.
	_, err := codec.Decompress([]byte{0xF0, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestZstd_CorruptInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0x00, 0x01, 0x02, 0x03})
	require.Error(t, err)
}

func BenchmarkCompress(b *testing.B) {
	payload := testPayload()

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
