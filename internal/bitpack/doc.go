// Package bitpack implements the fixed-width bit packers and unpackers of
// the vpack block format.
//
// A single generic writer (WriteBits) packs N integers of width w into
// ⌈N·w/8⌉ bytes, MSB-first in big-endian bit order. One dedicated
// unpacker per supported width reverses it; the decoder dispatches from a
// control byte's width nibble into the Unpackers32/Unpackers64 tables.
//
// Unpackers process fixed element groups (e.g. width 9 works in groups of
// sixteen) and may write speculative elements past the requested count,
// up to one group's worth. Callers must provide destination slack for the
// full group; the block format guarantees it with its 16-element
// uncompressed tail.
package bitpack
