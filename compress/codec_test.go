package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vpack/format"
)

// samplePayload returns n bytes of a short repeating pattern (i mod 7), a
// highly compressible stand-in for a packed frame.
func samplePayload(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 7)
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(compression, "payload")
		require.NoError(t, err, compression.String())
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.Error(t, err)
}

func TestGetCodec_SharedInstances(t *testing.T) {
	a, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	b, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload(64 * 1024)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)

			if compression != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestZstd_RejectsGarbage(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02})
	require.Error(t, err)
}

func TestNoOp_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := samplePayload(128)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}
