// Package compress provides the payload compression codecs used by host
// blobs: Zstd for best ratio, S2 and LZ4 for speed, and a no-op passthrough.
//
// Codecs are selected through format.CompressionType, either via CreateCodec
// or the shared GetCodec registry. All implementations are stateless values
// that pool their heavy internals, so they are cheap to create and safe for
// concurrent use.
package compress
