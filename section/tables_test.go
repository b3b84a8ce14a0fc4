package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundUpBits64(t *testing.T) {
	for b := 0; b <= 64; b++ {
		w := RoundUpBits64(b)

		require.GreaterOrEqual(t, w, b, "bit need %d", b)
		require.Contains(t, BitWidths64[:], w, "bit need %d", b)

		// Smallest menu width that fits.
		for _, candidate := range BitWidths64 {
			if candidate >= b {
				require.Equal(t, candidate, w, "bit need %d", b)
				break
			}
		}
	}
}

func TestRoundUpBits32(t *testing.T) {
	for b := 0; b <= 32; b++ {
		w := RoundUpBits32(b)

		require.GreaterOrEqual(t, w, b, "bit need %d", b)
		require.LessOrEqual(t, w, 32, "bit need %d", b)
		require.Contains(t, BitWidths32[:15], w, "bit need %d", b)
	}
}

func TestCtrlByte64_AllMenuEntries(t *testing.T) {
	for wi, width := range BitWidths64 {
		for pi, plen := range PartitionLengths {
			ctrl, ok := CtrlByte64(width, plen)
			require.True(t, ok, "width=%d plen=%d", width, plen)

			widthIdx, partIdx := SplitCtrl(ctrl)
			require.Equal(t, wi, widthIdx)
			require.Equal(t, pi, partIdx)
		}
	}
}

func TestCtrlByte64_RejectsOffMenuValues(t *testing.T) {
	for _, width := range []int{13, 14, 15, 17, 31, 33, 63, 65, -1} {
		_, ok := CtrlByte64(width, 8)
		require.False(t, ok, "width=%d", width)
	}

	for _, plen := range []int{0, 13, 14, 15, 17, 31, 33, 127, 129, -1} {
		_, ok := CtrlByte64(8, plen)
		require.False(t, ok, "plen=%d", plen)
	}
}

func TestCtrlByte32_RejectsWidth64(t *testing.T) {
	_, ok := CtrlByte32(64, 8)
	require.False(t, ok)

	ctrl, ok := CtrlByte32(32, 128)
	require.True(t, ok)

	widthIdx, partIdx := SplitCtrl(ctrl)
	require.Equal(t, 32, BitWidths32[widthIdx])
	require.Equal(t, 128, PartitionLengths[partIdx])
}

func TestBitWidths32_NibbleFIsInvalid(t *testing.T) {
	require.Equal(t, -1, BitWidths32[15])
	require.Equal(t, 64, BitWidths64[15])
}

func TestSkipThreshold(t *testing.T) {
	require.Equal(t, 144, CompressSkipThreshold)
	require.Equal(t, MaxPartitionLen, PartitionLengths[len(PartitionLengths)-1])
}
