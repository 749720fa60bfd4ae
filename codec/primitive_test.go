package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/bitio"
	"github.com/arloliu/bitpack/errs"
)

func TestUint_RoundTripAllWidths(t *testing.T) {
	for width := 1; width <= 64; width++ {
		maxVal := uint64(math.MaxUint64)
		if width < 64 {
			maxVal = (1 << width) - 1
		}

		for _, v := range []uint64{0, 1, maxVal / 2, maxVal} {
			w := bitio.NewWriter()
			WriteUint(w, v, width)

			r := bitio.NewReader(w.Bytes())
			got, err := ReadUint(r, width)
			w.Finish()

			require.NoError(t, err, "width %d value %d", width, v)
			require.Equal(t, v, got, "width %d", width)
		}
	}
}

func TestInt_RoundTripAllWidths(t *testing.T) {
	for width := 1; width <= 64; width++ {
		minVal := int64(math.MinInt64)
		maxVal := int64(math.MaxInt64)
		if width < 64 {
			minVal = -(1 << (width - 1))
			maxVal = 1<<(width-1) - 1
		}

		for _, v := range []int64{minVal, maxVal, 0, -1} {
			w := bitio.NewWriter()
			WriteInt(w, v, width)

			r := bitio.NewReader(w.Bytes())
			got, err := ReadInt(r, width)
			w.Finish()

			require.NoError(t, err, "width %d value %d", width, v)
			require.Equal(t, v, got, "width %d", width)
		}
	}
}

func TestInt_SignExtension(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Finish()

	// -1 in 8 bits is 0xFF; reading must sign-extend, not return 255.
	WriteInt(w, -1, 8)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadInt(r, 8)
	require.NoError(t, err)
	require.Equal(t, int64(-1), got)
}

func TestBool_RoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Finish()

	WriteBool(w, true)
	WriteBool(w, false)

	require.Equal(t, 2, w.BitLen())

	r := bitio.NewReader(w.Bytes())

	v, err := ReadBool(r)
	require.NoError(t, err)
	require.True(t, v)

	v, err = ReadBool(r)
	require.NoError(t, err)
	require.False(t, v)
}

func TestFloat64_RoundTrip(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, 3.14159265358979,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1),
	}

	for _, v := range values {
		w := bitio.NewWriter()
		WriteFloat64(w, v)

		r := bitio.NewReader(w.Bytes())
		got, err := ReadFloat64(r)
		w.Finish()

		require.NoError(t, err)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "value %v", v)
	}
}

func TestFloat64_NaNBitPattern(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Finish()

	WriteFloat64(w, math.NaN())

	r := bitio.NewReader(w.Bytes())
	got, err := ReadFloat64(r)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
	require.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(got))
}

func TestFloat32_RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 2.71828, math.MaxFloat32, float32(math.Inf(1))}

	for _, v := range values {
		w := bitio.NewWriter()
		WriteFloat32(w, v)

		require.Equal(t, 32, w.BitLen())

		r := bitio.NewReader(w.Bytes())
		got, err := ReadFloat32(r)
		w.Finish()

		require.NoError(t, err)
		require.Equal(t, math.Float32bits(v), math.Float32bits(got), "value %v", v)
	}
}

func TestPrimitive_Truncated(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Finish()
	WriteFloat64(w, 42.0)

	// Drop the final byte: the read must fail, not fabricate a value.
	data := w.Bytes()
	r := bitio.NewReader(data[:len(data)-1])

	_, err := ReadFloat64(r)
	require.ErrorIs(t, err, errs.ErrUnexpectedEnd)
}
