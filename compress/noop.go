package compress

// NoOpCompressor bypasses data without compression.
//
// This is the default for advertisements: compression tables are usually a few
// hundred bytes, below the point where a real codec pays for its framing.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input after passing it in.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input after passing it in.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
