package compress

// NoOpCompressor is a pass-through codec used when the packed frame is
// already dense enough, or when measuring codec overhead in isolation.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input;
// callers must not modify the input afterwards if they use the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data directly without copying. See Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
