package bytesutil_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestToBytes32(t *testing.T) {
	b := bytesutil.ToBytes32([]byte{1, 2, 3})
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, byte(3), b[2])
	assert.Equal(t, byte(0), b[31])

	long := make([]byte, 40)
	long[39] = 0xff
	b = bytesutil.ToBytes32(long)
	assert.Equal(t, byte(0), b[31])
}

func TestBytes8_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 32, 1<<64 - 1} {
		require.Equal(t, v, bytesutil.FromBytes8(bytesutil.Bytes8(v)))
	}
}

func TestBytes4(t *testing.T) {
	b := bytesutil.Bytes4(257)
	require.Equal(t, 4, len(b))
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, byte(1), b[1])
}

func TestSafeCopyBytes(t *testing.T) {
	assert.Equal(t, true, bytesutil.SafeCopyBytes(nil) == nil)
	src := []byte{1, 2, 3}
	cp := bytesutil.SafeCopyBytes(src)
	cp[0] = 9
	assert.Equal(t, byte(1), src[0])
}

func TestPadTo(t *testing.T) {
	b := bytesutil.PadTo([]byte{1, 2}, 4)
	require.Equal(t, 4, len(b))
	assert.Equal(t, byte(0), b[3])

	// Longer input is returned unchanged.
	long := []byte{1, 2, 3, 4, 5}
	require.Equal(t, 5, len(bytesutil.PadTo(long, 4)))
}
