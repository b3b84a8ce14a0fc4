package pool

import "sync"

// ContainerBufferDefaultSize is the default capacity of a ByteBuffer
// obtained from the pool; ContainerBufferMaxThreshold is the capacity
// above which buffers are dropped instead of pooled.
const (
	ContainerBufferDefaultSize  = 1024 * 16  // 16KiB
	ContainerBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte buffer used to assemble container
// envelopes without repeated reallocation.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		bb.Grow(n)
	}
	bb.B = bb.B[:curLen+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer has sufficient capacity, Grow does
// nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<64KiB), grow by ContainerBufferDefaultSize.
//   - For larger buffers, grow by 25% of the current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ContainerBufferDefaultSize
	if cap(bb.B) > 4*ContainerBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var byteBufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(ContainerBufferDefaultSize) },
}

// GetByteBuffer retrieves a reset ByteBuffer from the pool.
func GetByteBuffer() *ByteBuffer {
	bb, _ := byteBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutByteBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped so a single large container does not pin memory forever.
func PutByteBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > ContainerBufferMaxThreshold {
		return
	}
	byteBufferPool.Put(bb)
}
