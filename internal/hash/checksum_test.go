package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("bitpack"))
	b := Checksum([]byte("bitpack"))
	c := Checksum([]byte("bitpach"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	// Empty input is a fixed, stable digest.
	require.Equal(t, Checksum(nil), Checksum([]byte{}))
}
