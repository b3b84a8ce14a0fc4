package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteBits_Width1(t *testing.T) {
	pattern := []uint64{0, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 0}
	src := append(append([]uint64{}, pattern...), pattern...)

	dst := make([]byte, 8)
	n := WriteBits(dst, src, 1)

	require.Equal(t, 4, n)
	require.Equal(t, []byte{0x68, 0xCE, 0x68, 0xCE}, dst[:4])

	decoded := make([]uint64, 32)
	nread := unpack1(dst[:4], decoded, 32)
	require.Equal(t, 4, nread)
	require.Equal(t, src, decoded)
}

func TestWriteBits_Width0(t *testing.T) {
	src := make([]uint64, 100)

	n := WriteBits([]byte{}, src, 0)
	require.Equal(t, 0, n)
}

func TestWriteBits_FullWidthCopies(t *testing.T) {
	src64 := []uint64{0, 1, 0x0140C28CC3F06245, ^uint64(0)}
	dst := make([]byte, len(src64)*8)

	n := WriteBits(dst, src64, 64)
	require.Equal(t, 32, n)
	require.Equal(t, []byte{0x01, 0x40, 0xC2, 0x8C, 0xC3, 0xF0, 0x62, 0x45}, dst[16:24])

	src32 := []uint32{0, 2169682782, ^uint32(0)}
	dst = make([]byte, len(src32)*4)

	n = WriteBits(dst, src32, 32)
	require.Equal(t, 12, n)
	require.Equal(t, []byte{0x81, 0x52, 0xBB, 0x5E}, dst[4:8])
}

func TestWriteBits_ConsumesOnlyLowBits(t *testing.T) {
	// High bits above the packed width must not leak into the stream.
	src := []uint64{0xFFFFFFFFFFFFFFF5, 0xFFFFFFFFFFFFFFF2}
	dst := make([]byte, 8)

	n := WriteBits(dst, src, 4)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x52), dst[0])
}

func TestWriteBits_DstTooSmall(t *testing.T) {
	src := make([]uint64, 128)

	require.Equal(t, -1, WriteBits(make([]byte, 15), src, 1))
	require.Equal(t, -1, WriteBits(nil, src, 1))
	require.Equal(t, -1, WriteBits(make([]byte, 1023), src, 64))

	// Exact fit succeeds.
	require.Equal(t, 16, WriteBits(make([]byte, 16), src, 1))
	require.Equal(t, 1024, WriteBits(make([]byte, 1024), src, 64))
}

func TestWriteBits_ResidualBytes(t *testing.T) {
	// 3 elements at width 12 = 36 bits: one 32-bit flush plus one
	// residual byte, left-aligned.
	src := []uint64{0xABC, 0xDEF, 0x123}
	dst := make([]byte, 5)

	n := WriteBits(dst, src, 12)
	require.Equal(t, 5, n)
	// 101010111100 110111101111 000100100011
	require.Equal(t, []byte{0xAB, 0xCD, 0xEF, 0x12, 0x30}, dst)
}
