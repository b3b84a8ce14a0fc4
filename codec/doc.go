// Package codec implements the vpack block and frame codecs for uint32
// and uint64 sequences.
//
// A frame is `magic(u64 BE) ‖ block ‖ block ‖ …`. Each block carries up
// to 65536 elements as `[block_size:u32][data_offset:u32][ctrl×p]
// [packed data][tail: 16 elements BE]`, where the control bytes direct
// one fixed-width unpacker per sub-run. Runs shorter than 144 elements
// skip compression entirely and are stored as plain big-endian elements.
//
// The frame is not self-describing: Uncompress32/Uncompress64 must be
// told the original element count (the length of the destination slice),
// transported out-of-band by the caller. Use package container for a
// self-describing envelope.
//
// All functions are synchronous, allocation-free on the data path apart
// from pooled partition scratch, and safe for concurrent use. Source and
// destination buffers must not overlap.
package codec
