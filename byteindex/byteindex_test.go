package byteindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidthFromBits(t *testing.T) {
	for bits, want := range map[uint]Width{
		8:  Width8,
		16: Width16,
		32: Width32,
		64: Width64,
	} {
		got, err := WidthFromBits(bits)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, bits, got.Bits())
		require.True(t, got.IsValid())
	}
	for _, bits := range []uint{0, 1, 7, 24, 128} {
		_, err := WidthFromBits(bits)
		require.Error(t, err)
	}
	require.False(t, Width(0).IsValid())
	require.False(t, Width(3).IsValid())
}

func TestPutGetOffset(t *testing.T) {
	{
		buf := make([]byte, 1)
		PutOffset(buf, Width8, 0x7B)
		require.Equal(t, []byte{0x7B}, buf)
		require.Equal(t, uint64(0x7B), GetOffset(buf, Width8))
	}
	{
		buf := make([]byte, 2)
		PutOffset(buf, Width16, 0x1234)
		require.Equal(t, []byte{0x34, 0x12}, buf)
		require.Equal(t, uint64(0x1234), GetOffset(buf, Width16))
	}
	{
		buf := make([]byte, 4)
		PutOffset(buf, Width32, 0xDEADBEEF)
		require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf)
		require.Equal(t, uint64(0xDEADBEEF), GetOffset(buf, Width32))
	}
	{
		buf := make([]byte, 8)
		PutOffset(buf, Width64, math.MaxUint64)
		require.Equal(t, []byte{255, 255, 255, 255, 255, 255, 255, 255}, buf)
		require.Equal(t, uint64(math.MaxUint64), GetOffset(buf, Width64))
	}
}

func TestPutOffset_Wraparound(t *testing.T) {
	// Values exceeding the representable range wrap modulo 2^(8*width);
	// this is intentional behavior, not an error.
	{
		buf := make([]byte, 1)
		PutOffset(buf, Width8, 300)
		require.Equal(t, uint64(300%256), GetOffset(buf, Width8))
	}
	{
		buf := make([]byte, 2)
		PutOffset(buf, Width16, 1<<16+42)
		require.Equal(t, uint64(42), GetOffset(buf, Width16))
	}
	{
		buf := make([]byte, 4)
		PutOffset(buf, Width32, 1<<32)
		require.Equal(t, uint64(0), GetOffset(buf, Width32))
	}
}

func TestPutOffset_InvalidWidth(t *testing.T) {
	require.Panics(t, func() {
		PutOffset(make([]byte, 8), Width(3), 1)
	})
	require.Panics(t, func() {
		GetOffset(make([]byte, 8), Width(5))
	})
}
