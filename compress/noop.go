package compress

// NoOpCompressor bypasses data without compression.
//
// Useful when the payload is too small to benefit from compression, or as a
// baseline for measurements.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterward if they use the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterward if they use the result.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
