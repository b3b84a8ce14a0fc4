// Package vpack compresses sequences of unsigned integers into a compact
// byte stream and reconstructs them losslessly.
//
// The codec targets integer streams where small fixed-width values
// dominate but outliers exist: inverted indexes, sorted id lists,
// telemetry counters. Each 65536-element block is split by a
// dynamic-programming partitioner into sub-runs, and every sub-run is
// bit-packed at the width of its widest element; a one-byte directory
// entry per sub-run drives the decoder.
//
// Two parallel families exist, for uint32 and uint64 elements. They share
// structure and differ only in element width and the set of packed
// widths.
//
// # Basic Usage
//
//	data, err := vpack.Compress64(values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The raw stream does not record the element count; keep it.
//	decoded, err := vpack.Uncompress64(data, len(values))
//
// For a self-describing artifact that carries its own count, checksum and
// optional outer compression, use the container package:
//
//	data, _ := container.Encode64(values,
//	    container.WithCompression(format.CompressionZstd),
//	)
//	decoded, _ := container.Decode64(data)
//
// # Package Structure
//
// This package provides convenient allocating wrappers around the codec
// package, which exposes the buffer-oriented entry points
// (codec.Compress64 and friends) for callers that manage their own
// memory.
package vpack

import (
	"github.com/arloliu/vpack/codec"
)

// CompressBound32 returns the maximum compressed size of n uint32
// elements. See codec.CompressBound32.
func CompressBound32(n int) int {
	return codec.CompressBound32(n)
}

// CompressBound64 returns the maximum compressed size of n uint64
// elements. See codec.CompressBound64.
func CompressBound64(n int) int {
	return codec.CompressBound64(n)
}

// Compress32 compresses src and returns the compressed stream in a newly
// allocated buffer sized to the result.
//
// To compress into a caller-managed buffer, use codec.Compress32.
func Compress32(src []uint32) ([]byte, error) {
	dst := make([]byte, codec.CompressBound32(len(src)))
	n, err := codec.Compress32(dst, src)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// Compress64 compresses src and returns the compressed stream in a newly
// allocated buffer sized to the result. See Compress32.
func Compress64(src []uint64) ([]byte, error) {
	dst := make([]byte, codec.CompressBound64(len(src)))
	n, err := codec.Compress64(dst, src)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// Uncompress32 decodes exactly count elements from a Compress32 stream.
//
// The stream is not self-describing: count must be the element count of
// the original input, transported out-of-band. Decoding with a different
// count fails or yields garbage; see the container package for a format
// that records it.
func Uncompress32(data []byte, count int) ([]uint32, error) {
	dst := make([]uint32, count)
	if _, err := codec.Uncompress32(dst, data); err != nil {
		return nil, err
	}

	return dst, nil
}

// Uncompress64 decodes exactly count elements from a Compress64 stream.
// See Uncompress32.
func Uncompress64(data []byte, count int) ([]uint64, error) {
	dst := make([]uint64, count)
	if _, err := codec.Uncompress64(dst, data); err != nil {
		return nil, err
	}

	return dst, nil
}
