package compress

// ZstdCompressor compresses advertisement payloads with Zstandard.
//
// Best compression ratio in the set; use it when identity tables are large
// (thousands of entries) and advertisement size dominates. The implementation
// is selected at build time: cgo builds use valyala/gozstd, pure-Go builds use
// klauspost/compress/zstd. Frames are interoperable between the two.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
