package codec

import (
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/internal/bitpack"
	"github.com/arloliu/vpack/section"
)

// CompressBound32 returns the maximum number of bytes Compress32 may
// write for n elements: the magic, one header per block, and worst-case
// per-element expansion of five bytes (control directory plus
// pass-through). Size a destination buffer with it before compressing.
func CompressBound32(n int) int {
	return section.MagicSize + section.BlockHeaderSize*divRoundUp(n, section.BlockMaxElems) + 5*n
}

// CompressBound64 returns the maximum number of bytes Compress64 may
// write for n elements. See CompressBound32; the per-element worst case
// is nine bytes.
func CompressBound64(n int) int {
	return section.MagicSize + section.BlockHeaderSize*divRoundUp(n, section.BlockMaxElems) + 9*n
}

func compress[T bitpack.Elem](dst []byte, src []T, magic uint64) (int, error) {
	if len(src) == 0 {
		return 0, errs.ErrEmptyInput
	}
	if len(dst) < section.MagicSize {
		return 0, errs.ErrBufferTooSmall
	}

	wire.PutUint64(dst, magic)
	wpos := section.MagicSize

	nblock := len(src) / section.BlockMaxElems
	for i := 0; i < nblock; i++ {
		nw, err := compressBlock(dst[wpos:], src[i*section.BlockMaxElems:(i+1)*section.BlockMaxElems])
		if err != nil {
			return 0, err
		}
		wpos += nw
	}

	if rem := src[nblock*section.BlockMaxElems:]; len(rem) > 0 {
		nw, err := compressBlock(dst[wpos:], rem)
		if err != nil {
			return 0, err
		}
		wpos += nw
	}

	return wpos, nil
}

func uncompress[T bitpack.Elem](dst []T, src []byte, unpackers *[16]bitpack.UnpackFunc[T], widths *[16]int, magic uint64) (int, error) {
	if len(dst) == 0 {
		return 0, errs.ErrEmptyInput
	}
	if len(src) < section.MagicSize || wire.Uint64(src) != magic {
		return 0, errs.ErrInvalidMagic
	}

	rpos := section.MagicSize

	nblock := len(dst) / section.BlockMaxElems
	for i := 0; i < nblock; i++ {
		nr, err := uncompressBlock(dst[i*section.BlockMaxElems:(i+1)*section.BlockMaxElems], src[rpos:], unpackers, widths)
		if err != nil {
			return 0, err
		}
		rpos += nr
	}

	if rem := dst[nblock*section.BlockMaxElems:]; len(rem) > 0 {
		nr, err := uncompressBlock(rem, src[rpos:], unpackers, widths)
		if err != nil {
			return 0, err
		}
		rpos += nr
	}

	return rpos, nil
}

// Compress32 compresses src into dst and returns the number of bytes
// written, including the leading magic. dst should be sized with
// CompressBound32(len(src)); errs.ErrBufferTooSmall is returned when it
// cannot hold the result. src and dst must not overlap.
func Compress32(dst []byte, src []uint32) (int, error) {
	return compress(dst, src, section.MagicUint32)
}

// Compress64 compresses src into dst and returns the number of bytes
// written, including the leading magic. See Compress32.
func Compress64(dst []byte, src []uint64) (int, error) {
	return compress(dst, src, section.MagicUint64)
}

// Uncompress32 decodes exactly len(dst) elements from a Compress32
// stream and returns the number of bytes consumed, including the magic.
//
// The stream does not record the element count; the caller must size dst
// with the count it transported out-of-band. errs.ErrInvalidMagic is
// returned when src does not start with the uint32-family magic, and
// errs.ErrCorruptedBlock or errs.ErrInvalidControlByte when a block is
// malformed; dst is indeterminate after any error.
func Uncompress32(dst []uint32, src []byte) (int, error) {
	return uncompress(dst, src, &bitpack.Unpackers32, &section.BitWidths32, section.MagicUint32)
}

// Uncompress64 decodes exactly len(dst) elements from a Compress64
// stream and returns the number of bytes consumed, including the magic.
// See Uncompress32.
func Uncompress64(dst []uint64, src []byte) (int, error) {
	return uncompress(dst, src, &bitpack.Unpackers64, &section.BitWidths64, section.MagicUint64)
}
