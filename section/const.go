package section

const (
	// Magic numbers. Each codec family writes its own 8-byte magic at the
	// head of the stream; the decoder rejects anything else. The values
	// are wire constants and must never change.
	MagicUint32 = 0xBC32AD239023940E // stream magic for the uint32 family
	MagicUint64 = 0x08B5A7033F4CBC3D // stream magic for the uint64 family

	MagicSize       = 8 // size of the stream magic in bytes
	BlockHeaderSize = 8 // block_size (u32) + data_offset (u32)

	// BlockMaxElems is the maximum number of elements carried by a single
	// block. The frame driver splits the input into runs of this size.
	BlockMaxElems = 65536

	// OverrunElems is the number of trailing block elements stored
	// uncompressed. Unpackers for widths 9 and 11 process 16-element
	// groups and may write up to 15 speculative elements past the
	// requested count; the uncompressed tail absorbs those writes and is
	// copied over them afterwards. Shrinking this without reanalysing the
	// maximum group slack corrupts decoded output.
	OverrunElems = 16

	// MaxPartitionLen is the largest legal partition length.
	MaxPartitionLen = 128

	// CompressSkipThreshold is the block size below which compression is
	// skipped entirely: the partitioner needs MaxPartitionLen elements of
	// history plus the OverrunElems tail, so smaller runs are stored as
	// plain big-endian elements with no block framing.
	CompressSkipThreshold = MaxPartitionLen + OverrunElems
)
