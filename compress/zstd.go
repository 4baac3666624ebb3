package compress

// ZstdCompressor compresses payloads with Zstandard, trading speed for the
// best ratio of the built-in codecs. A cgo build uses the libzstd bindings;
// otherwise the pure-Go implementation is used (see zstd_cgo.go and
// zstd_pure.go).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
