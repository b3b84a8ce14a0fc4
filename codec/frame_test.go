package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/section"
)

func TestCompress32_RoundTrip(t *testing.T) {
	rnd := newXor128()

	for _, num := range testSizes() {
		bound := CompressBound32(num)
		dst := make([]byte, bound)
		buf := make([]uint32, num)

		for _, max := range testRanges {
			src := rnd.uint32s(num, max)

			wsz, err := Compress32(dst, src)
			require.NoError(t, err, "n=%d max=%d", num, max)
			require.LessOrEqual(t, wsz, bound, "n=%d max=%d", num, max)

			rsz, err := Uncompress32(buf, dst[:wsz])
			require.NoError(t, err, "n=%d max=%d", num, max)
			require.Equal(t, wsz, rsz, "n=%d max=%d", num, max)
			require.Equal(t, src, buf, "n=%d max=%d", num, max)
		}
	}
}

func TestCompress64_RoundTrip(t *testing.T) {
	rnd := newXor128()

	for _, num := range testSizes() {
		bound := CompressBound64(num)
		dst := make([]byte, bound)
		buf := make([]uint64, num)

		for _, max := range testRanges {
			src := rnd.uint64s(num, max)

			wsz, err := Compress64(dst, src)
			require.NoError(t, err, "n=%d max=%d", num, max)
			require.LessOrEqual(t, wsz, bound, "n=%d max=%d", num, max)

			rsz, err := Uncompress64(buf, dst[:wsz])
			require.NoError(t, err, "n=%d max=%d", num, max)
			require.Equal(t, wsz, rsz, "n=%d max=%d", num, max)
			require.Equal(t, src, buf, "n=%d max=%d", num, max)
		}
	}
}

func TestCompress64_FullRange(t *testing.T) {
	rnd := newXor128()

	src := make([]uint64, 4096)
	for i := range src {
		src[i] = rnd.next64()
	}

	dst := make([]byte, CompressBound64(len(src)))
	wsz, err := Compress64(dst, src)
	require.NoError(t, err)

	buf := make([]uint64, len(src))
	rsz, err := Uncompress64(buf, dst[:wsz])
	require.NoError(t, err)
	require.Equal(t, wsz, rsz)
	require.Equal(t, src, buf)
}

func TestCompress32_AllZeros(t *testing.T) {
	for _, num := range []int{128, 144, 65536} {
		src := make([]uint32, num)

		dst := make([]byte, CompressBound32(num))
		wsz, err := Compress32(dst, src)
		require.NoError(t, err)

		buf := make([]uint32, num)
		_, err = Uncompress32(buf, dst[:wsz])
		require.NoError(t, err)
		require.Equal(t, src, buf)
	}
}

func TestUncompress_RejectsRewrittenMagic(t *testing.T) {
	rnd := newXor128()

	for _, num := range []int{1, 143, 144, 1000, 70000} {
		src := rnd.uint64s(num, 1<<12)

		dst := make([]byte, CompressBound64(num))
		wsz, err := Compress64(dst, src)
		require.NoError(t, err)

		wire.PutUint64(dst, 0x0FBC32AD23902394)

		buf := make([]uint64, num)
		_, err = Uncompress64(buf, dst[:wsz])
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	}
}

func TestUncompress_RejectsCrossFamilyStream(t *testing.T) {
	rnd := newXor128()
	src := rnd.uint32s(1000, 1<<10)

	dst := make([]byte, CompressBound32(len(src)))
	wsz, err := Compress32(dst, src)
	require.NoError(t, err)

	buf := make([]uint64, len(src))
	_, err = Uncompress64(buf, dst[:wsz])
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestUncompress_TruncatedStream(t *testing.T) {
	rnd := newXor128()
	src := rnd.uint64s(1000, 1<<10)

	dst := make([]byte, CompressBound64(len(src)))
	wsz, err := Compress64(dst, src)
	require.NoError(t, err)

	buf := make([]uint64, len(src))

	_, err = Uncompress64(buf, dst[:7])
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	_, err = Uncompress64(buf, dst[:wsz-9])
	require.ErrorIs(t, err, errs.ErrCorruptedBlock)
}

func TestCompress_EmptyInput(t *testing.T) {
	_, err := Compress64(make([]byte, 64), nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = Compress32(make([]byte, 64), []uint32{})
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = Uncompress64(nil, make([]byte, 64))
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestCompress_DstTooSmall(t *testing.T) {
	rnd := newXor128()
	src := rnd.uint64s(1000, 1<<12)

	_, err := Compress64(make([]byte, 7), src)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)

	_, err = Compress64(make([]byte, 100), src)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestCompress64_BlockInvariants(t *testing.T) {
	rnd := newXor128()
	src := rnd.uint64s(10000, 1<<9)

	dst := make([]byte, CompressBound64(len(src)))
	wsz, err := Compress64(dst, src)
	require.NoError(t, err)

	// Walk the single block after the magic and check its header fields.
	block := dst[section.MagicSize:wsz]
	blockSize := int(wire.Uint32(block))
	dataOffset := int(wire.Uint32(block[4:]))
	p := dataOffset - section.BlockHeaderSize

	require.Equal(t, len(block), blockSize)
	require.Positive(t, p)
	require.LessOrEqual(t, dataOffset, blockSize-section.OverrunElems*8)

	// The directory accounts for exactly the partitioned elements.
	total := 0
	for _, ctrl := range block[section.BlockHeaderSize:dataOffset] {
		_, partIdx := section.SplitCtrl(ctrl)
		total += section.PartitionLengths[partIdx]
	}
	require.Equal(t, len(src)-section.OverrunElems, total)
}

func TestCompressBound_Formula(t *testing.T) {
	require.Equal(t, 8+8+9, CompressBound64(1))
	require.Equal(t, 8+8+5, CompressBound32(1))
	require.Equal(t, 8+8+9*65536, CompressBound64(65536))
	require.Equal(t, 8+2*8+9*65537, CompressBound64(65537))
	require.Equal(t, 8+2*8+5*131072, CompressBound32(131072))
}
