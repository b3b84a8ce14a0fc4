// Package compress provides outer compression codecs for vpack container
// payloads.
//
// The container format applies a two-stage strategy: the integer codec
// exploits the bit-width structure of the data, and an optional outer
// codec from this package squeezes the remaining byte-level redundancy
// (long zero runs from width-0 partitions, repeated control directories,
// uncompressed tails). The stages are independent; the raw frame format
// never depends on this package.
//
// Supported algorithms:
//   - None: pass-through (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd); a
//     cgo-backed implementation is selected by the cgo_zstd build tag,
//     the pure-Go implementation otherwise
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// All codec implementations are stateless values and safe for concurrent
// use. The pure-Go Zstd codec pools its encoders and decoders and the LZ4
// codec pools its block compressors; the other codecs keep no pooled
// state.
package compress
