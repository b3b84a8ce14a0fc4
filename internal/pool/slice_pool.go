package pool

import "sync"

// Slice pools for efficient reuse of typed slices.
// The partitioner's cost/refs tables and the block encoder's partition
// boundaries are sized by the block length (up to 65537 entries), so they
// are pooled instead of stack- or heap-allocated per block.
var (
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
)

// GetIntSlice retrieves and resizes an int slice from the pool.
//
// The returned slice will have the exact length specified by the size
// parameter. If the pooled slice has insufficient capacity, a new slice
// will be allocated. The caller must call the returned cleanup function
// (typically with defer) to return the slice to the pool.
//
// The slice contents are not zeroed; callers write every entry before
// reading it.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { intSlicePool.Put(ptr) }
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice will have the exact length specified by the size
// parameter. If the pooled slice has insufficient capacity, a new slice
// will be allocated. The caller must call the returned cleanup function
// (typically with defer) to return the slice to the pool.
//
// The slice contents are not zeroed; callers write every entry before
// reading it.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
