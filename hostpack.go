// Package hostpack compresses dot-separated hostnames into compact byte
// strings by sharing trailing labels across names, the way DNS message
// compression shares suffixes inside one message, generalized to an
// arbitrarily long-lived session.
//
// An Encoder owns a dictionary (an append-only label arena plus a suffix
// trie) that grows across calls: once "a.example.com" has been compressed,
// "b.example.com" costs only the back-reference offsets for "example" and
// "com" plus the arena record for "b". Compressed strings are offset
// sequences into that dictionary, so they are only meaningful to the Encoder
// instance that produced them.
//
// # Session Usage
//
//	enc := hostpack.New()
//
//	packed := enc.CompressHostname("www.example.com")
//	name := enc.DecompressHostname(packed) // "www.example.com"
//
// The hostname-suffixed methods return empty results on any failure
// (oversized label, malformed input, unknown offset). Use Compress and
// Decompress for the error-returning forms.
//
// # Portable Batches
//
// For moving many hostnames between processes, the blob package bundles a
// batch of compressed names together with the dictionary they reference into
// one checksummed, optionally compressed byte string:
//
//	be, _ := hostpack.NewHostBlobEncoder(
//	    blob.WithPayloadCompression(format.CompressionZstd),
//	)
//	_ = be.AddHostname("www.example.com")
//	_ = be.AddHostname("mail.example.com")
//	b, _ := be.Finish()
//
//	dec, _ := hostpack.DecodeHostBlob(b.Bytes())
//	names, _ := dec.Hostnames()
//
// # Concurrency
//
// Encoders and blob encoders hold unguarded mutable state and must be
// serialized by the caller. Decoded blobs are read-only after construction.
package hostpack

import "github.com/mineclever/hostpack/blob"

// NewHostBlobEncoder creates a batch blob encoder. It is a convenience
// wrapper around blob.NewHostBlobEncoder.
func NewHostBlobEncoder(opts ...blob.HostBlobEncoderOption) (*blob.HostBlobEncoder, error) {
	return blob.NewHostBlobEncoder(opts...)
}

// DecodeHostBlob parses a serialized host blob. It is a convenience wrapper
// around blob.NewHostBlobDecoder.
func DecodeHostBlob(data []byte) (*blob.HostBlobDecoder, error) {
	return blob.NewHostBlobDecoder(data)
}
