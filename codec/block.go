package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/internal/bitpack"
	"github.com/arloliu/vpack/internal/partition"
	"github.com/arloliu/vpack/internal/pool"
	"github.com/arloliu/vpack/section"
)

// wire is the byte order of every multi-byte integer in the stream.
var wire = endian.GetBigEndianEngine()

func divRoundUp(x, y int) int {
	return (x + y - 1) / y
}

func elemBytes[T bitpack.Elem]() int {
	return bitpack.ElemBits[T]() / 8
}

func putElem[T bitpack.Elem](dst []byte, v T) {
	if bitpack.ElemBits[T]() == 32 {
		wire.PutUint32(dst, uint32(v))
	} else {
		wire.PutUint64(dst, uint64(v))
	}
}

func getElem[T bitpack.Elem](src []byte) T {
	if bitpack.ElemBits[T]() == 32 {
		return T(wire.Uint32(src))
	}

	return T(wire.Uint64(src))
}

// maxWidth returns the rounded-up packed width of the widest element in run.
func maxWidth[T bitpack.Elem](run []T) int {
	roundUp := section.RoundUpBits64
	if bitpack.ElemBits[T]() == 32 {
		roundUp = section.RoundUpBits32
	}

	maxb := 0
	for _, v := range run {
		if b := roundUp(bits.Len64(uint64(v))); b > maxb {
			maxb = b
		}
	}

	return maxb
}

func compressBlock[T bitpack.Elem](dst []byte, src []T) (int, error) {
	n := len(src)
	eb := elemBytes[T]()

	// Runs too short to partition are stored as plain big-endian
	// elements with no block framing; the decoder infers the size from
	// the element count it is given.
	if n < section.CompressSkipThreshold {
		if n*eb > len(dst) {
			return 0, errs.ErrBufferTooSmall
		}

		for i, v := range src {
			putElem(dst[i*eb:], v)
		}

		return n * eb, nil
	}

	neff := n - section.OverrunElems

	parts, releaseParts := pool.GetIntSlice(neff + 1)
	defer releaseParts()

	p := partition.Compute(src[:neff], parts)

	offset := section.BlockHeaderSize + p
	if offset > len(dst) {
		return 0, errs.ErrBufferTooSmall
	}

	dataPos := offset

	for i := 0; i < p; i++ {
		run := src[parts[i]:parts[i+1]]
		plen := len(run)

		width := maxWidth(run)

		nw := bitpack.WriteBits(dst[dataPos:], run, width)
		if nw < 0 {
			return 0, errs.ErrBufferTooSmall
		}

		ctrl, ok := section.CtrlByte64(width, plen)
		if !ok {
			// The partitioner only emits menu lengths and maxWidth only
			// emits menu widths; anything else is a bug, not bad input.
			panic(fmt.Sprintf("codec: no control byte for width=%d plen=%d", width, plen))
		}
		dst[section.BlockHeaderSize+i] = ctrl

		dataPos += nw
	}

	// The trailing elements absorb unpacker write-ahead on decode and are
	// stored uncompressed.
	if dataPos+section.OverrunElems*eb > len(dst) {
		return 0, errs.ErrBufferTooSmall
	}
	for i, v := range src[neff:] {
		putElem(dst[dataPos+i*eb:], v)
	}

	blockSize := dataPos + section.OverrunElems*eb
	wire.PutUint32(dst[0:], uint32(blockSize))
	wire.PutUint32(dst[4:], uint32(offset))

	return blockSize, nil
}

func uncompressBlock[T bitpack.Elem](dst []T, src []byte, unpackers *[16]bitpack.UnpackFunc[T], widths *[16]int) (int, error) {
	n := len(dst)
	eb := elemBytes[T]()

	if n < section.CompressSkipThreshold {
		if n*eb > len(src) {
			return 0, errs.ErrCorruptedBlock
		}

		for i := range dst {
			dst[i] = getElem[T](src[i*eb:])
		}

		return n * eb, nil
	}

	if len(src) < section.BlockHeaderSize {
		return 0, errs.ErrCorruptedBlock
	}

	blockSize := int(wire.Uint32(src))
	offset := int(wire.Uint32(src[4:]))

	if blockSize > len(src) || offset < section.BlockHeaderSize ||
		offset+section.OverrunElems*eb > blockSize {
		return 0, errs.ErrCorruptedBlock
	}

	neff := n - section.OverrunElems
	ctrl := src[section.BlockHeaderSize:offset]

	dataPos := offset
	pos := 0

	for _, cb := range ctrl {
		widthIdx, partIdx := section.SplitCtrl(cb)

		if widths[widthIdx] < 0 {
			return 0, errs.ErrInvalidControlByte
		}

		plen := section.PartitionLengths[partIdx]
		if plen > neff-pos {
			return 0, errs.ErrCorruptedBlock
		}

		// The unpacker may write ahead of plen within dst[pos:n]; the
		// tail copy below rewrites anything speculative.
		nread := unpackers[widthIdx](src[dataPos:blockSize], dst[pos:n], plen)
		if nread < 0 {
			return 0, errs.ErrCorruptedBlock
		}

		dataPos += nread
		pos += plen
	}

	if pos != neff || dataPos+section.OverrunElems*eb > blockSize {
		return 0, errs.ErrCorruptedBlock
	}

	for i := 0; i < section.OverrunElems; i++ {
		dst[pos+i] = getElem[T](src[dataPos+i*eb:])
	}

	return blockSize, nil
}

// CompressBlock32 compresses one block of up to 65536 uint32 elements
// into dst and returns the number of bytes written.
//
// Blocks shorter than 144 elements are stored uncompressed with no
// framing; the output length is then exactly 4·len(src) and the caller
// must remember len(src) to decode. Returns errs.ErrBufferTooSmall when
// dst cannot hold the block.
func CompressBlock32(dst []byte, src []uint32) (int, error) {
	return compressBlock(dst, src)
}

// CompressBlock64 compresses one block of up to 65536 uint64 elements
// into dst and returns the number of bytes written. See CompressBlock32.
func CompressBlock64(dst []byte, src []uint64) (int, error) {
	return compressBlock(dst, src)
}

// UncompressBlock32 decodes one block of len(dst) uint32 elements from
// src and returns the number of bytes consumed.
//
// On any error the contents of dst are indeterminate.
func UncompressBlock32(dst []uint32, src []byte) (int, error) {
	return uncompressBlock(dst, src, &bitpack.Unpackers32, &section.BitWidths32)
}

// UncompressBlock64 decodes one block of len(dst) uint64 elements from
// src and returns the number of bytes consumed. See UncompressBlock32.
func UncompressBlock64(dst []uint64, src []byte) (int, error) {
	return uncompressBlock(dst, src, &bitpack.Unpackers64, &section.BitWidths64)
}
