package compress

// ZstdCompressor provides Zstandard compression for container payloads.
//
// Zstd gives the best ratio of the supported algorithms and is the right
// choice for cold storage or bandwidth-limited transport of compressed
// frames. Two implementations exist: a cgo-backed one selected by the
// cgo_zstd build tag, and a pure-Go one used otherwise. Both produce
// standard zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
