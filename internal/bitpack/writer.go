package bitpack

import (
	"unsafe"

	"github.com/arloliu/vpack/endian"
)

// Elem constrains the two element types the codec packs.
type Elem interface {
	~uint32 | ~uint64
}

// wire is the byte order of every multi-byte integer in the stream.
var wire = endian.GetBigEndianEngine()

// ElemBits returns the width of T in bits.
func ElemBits[T Elem]() int {
	return int(unsafe.Sizeof(T(0))) * 8
}

func divRoundUp(x, y int) int {
	return (x + y - 1) / y
}

// WriteBits packs the elements of src at the given bit width into dst and
// returns the number of bytes written, exactly ⌈len(src)·width/8⌉. It
// returns -1 when dst cannot hold that many bytes.
//
// Only the low width bits of each element are consumed. Width 0 writes
// nothing; the element's full width copies values as plain big-endian
// integers. Every other width is packed MSB-first and flushed through
// 32-bit big-endian stores, with any residual bits left-aligned in the
// final partial word and written byte-by-byte.
//
// width may be any value from 0 to the element's bit width. The block
// encoder passes only widths produced by the round-up tables, and src
// holds at most one partition (128 elements).
func WriteBits[T Elem](dst []byte, src []T, width int) int {
	n := len(src)
	nwritten := divRoundUp(width*n, 8)

	if nwritten > len(dst) {
		return -1
	}

	if width == 0 {
		return 0
	}

	if width == ElemBits[T]() {
		if width == 32 {
			for i, v := range src {
				wire.PutUint32(dst[i*4:], uint32(v))
			}
		} else {
			for i, v := range src {
				wire.PutUint64(dst[i*8:], uint64(v))
			}
		}

		return nwritten
	}

	// Buffer packed bits in a 64-bit accumulator and flush a 32-bit word
	// whenever one is complete. Each element is fed in pieces of at most
	// 32 bits, high piece first, so the accumulator never holds more than
	// 63 pending bits.
	var (
		buf   uint64
		nused int
		pos   int
	)

	mask := (uint64(1) << width) - 1

	for _, v := range src {
		x := uint64(v) & mask

		for rem := width; rem > 0; {
			k := rem
			if k > 32 {
				k = rem - 32
			}
			rem -= k

			buf = buf<<k | (x>>rem)&(uint64(1)<<k-1)
			nused += k

			if nused >= 32 {
				wire.PutUint32(dst[pos:], uint32(buf>>(nused-32)))
				nused -= 32
				pos += 4
			}
		}
	}

	// Flush left-over bits, left-aligned in a partial word.
	if nused > 0 {
		w := uint32(buf << (32 - nused))

		switch divRoundUp(nused, 8) {
		case 4:
			dst[pos+3] = byte(w)
			fallthrough
		case 3:
			dst[pos+2] = byte(w >> 8)
			fallthrough
		case 2:
			dst[pos+1] = byte(w >> 16)
			fallthrough
		case 1:
			dst[pos] = byte(w >> 24)
		}
	}

	return nwritten
}
