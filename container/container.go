package container

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/vpack/codec"
	"github.com/arloliu/vpack/compress"
	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/format"
	"github.com/arloliu/vpack/internal/bitpack"
	"github.com/arloliu/vpack/internal/pool"
	"github.com/arloliu/vpack/section"
)

// Container header layout, big-endian:
//
//	[magic:u32][version:u8][family:u8][compression:u8][flags:u8]
//	[count:u64][checksum:u64][payload...]
const (
	// Magic identifies a container envelope. Distinct from both raw
	// frame magics.
	Magic = 0x56504B43 // "VPKC"

	// Version is the current container format version.
	Version = 1

	// HeaderSize is the fixed container header size in bytes.
	HeaderSize = 24

	flagChecksum = 0x01 // checksum field holds the payload xxHash64
)

var wire = endian.GetBigEndianEngine()

func encode[T bitpack.Elem](src []T, family format.Family, bound int,
	compressFrame func([]byte, []T) (int, error), opts ...Option,
) ([]byte, error) {
	if len(src) == 0 {
		return nil, errs.ErrEmptyInput
	}

	cfg, err := newEncodeConfig(opts...)
	if err != nil {
		return nil, err
	}

	outer, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	// Build the raw frame in a pooled scratch buffer; the outer codec
	// and the final header copy produce the caller-owned result.
	scratch := pool.GetByteBuffer()
	defer pool.PutByteBuffer(scratch)
	scratch.ExtendOrGrow(bound)

	frameLen, err := compressFrame(scratch.Bytes(), src)
	if err != nil {
		return nil, err
	}

	payload, err := outer.Compress(scratch.Slice(0, frameLen))
	if err != nil {
		return nil, fmt.Errorf("container payload compression: %w", err)
	}

	var flags byte
	var checksum uint64
	if cfg.checksum {
		flags |= flagChecksum
		checksum = xxhash.Sum64(payload)
	}

	out := make([]byte, HeaderSize+len(payload))
	wire.PutUint32(out[0:], Magic)
	out[4] = Version
	out[5] = byte(family)
	out[6] = byte(cfg.compression)
	out[7] = flags
	wire.PutUint64(out[8:], uint64(len(src)))
	wire.PutUint64(out[16:], checksum)
	copy(out[HeaderSize:], payload)

	return out, nil
}

func decodePayload(data []byte, family format.Family) (raw []byte, count int, err error) {
	if len(data) < HeaderSize || wire.Uint32(data) != Magic {
		return nil, 0, errs.ErrInvalidContainer
	}
	if data[4] != Version {
		return nil, 0, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidContainer, data[4])
	}
	if format.Family(data[5]) != family {
		return nil, 0, fmt.Errorf("%w: family %s, want %s",
			errs.ErrInvalidContainer, format.Family(data[5]), family)
	}

	compression := format.CompressionType(data[6])
	flags := data[7]
	n := wire.Uint64(data[8:])
	checksum := wire.Uint64(data[16:])
	payload := data[HeaderSize:]

	if flags&flagChecksum != 0 && xxhash.Sum64(payload) != checksum {
		return nil, 0, errs.ErrChecksumMismatch
	}

	outer, err := compress.GetCodec(compression)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrInvalidContainer, err)
	}

	raw, err = outer.Decompress(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("container payload decompression: %w", err)
	}

	// Even an all-zero input needs roughly one control byte per longest
	// partition, so a count far beyond that bound cannot be honest.
	if n == 0 || n > uint64(len(raw))*section.MaxPartitionLen {
		return nil, 0, errs.ErrInvalidContainer
	}

	return raw, int(n), nil
}

// Encode32 wraps src in a container envelope: the uint32-family frame,
// optionally compressed, with the element count and payload checksum in
// the header. The result is fully self-describing; decode it with
// Decode32.
func Encode32(src []uint32, opts ...Option) ([]byte, error) {
	return encode(src, format.FamilyUint32, codec.CompressBound32(len(src)), codec.Compress32, opts...)
}

// Encode64 wraps src in a container envelope. See Encode32.
func Encode64(src []uint64, opts ...Option) ([]byte, error) {
	return encode(src, format.FamilyUint64, codec.CompressBound64(len(src)), codec.Compress64, opts...)
}

// Decode32 unwraps a container produced by Encode32 and returns the
// decoded elements.
//
// Returns errs.ErrInvalidContainer for a foreign or malformed envelope,
// errs.ErrChecksumMismatch when the payload fails verification, and the
// codec errors for a corrupt frame.
func Decode32(data []byte) ([]uint32, error) {
	raw, count, err := decodePayload(data, format.FamilyUint32)
	if err != nil {
		return nil, err
	}

	dst := make([]uint32, count)
	if _, err := codec.Uncompress32(dst, raw); err != nil {
		return nil, err
	}

	return dst, nil
}

// Decode64 unwraps a container produced by Encode64. See Decode32.
func Decode64(data []byte) ([]uint64, error) {
	raw, count, err := decodePayload(data, format.FamilyUint64)
	if err != nil {
		return nil, err
	}

	dst := make([]uint64, count)
	if _, err := codec.Uncompress64(dst, raw); err != nil {
		return nil, err
	}

	return dst, nil
}
