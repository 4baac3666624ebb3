// Package blob implements the host blob batch format: many hostnames
// compressed against a blob-local label dictionary and serialized into a
// single self-contained byte string.
//
// A host blob is laid out as a fixed 32-byte header followed by the payload,
// which is the dictionary arena and the record section back to back,
// optionally compressed as a whole. Each record is one hostname's
// offset-codec byte string with a uint16 length prefix. The payload carries
// an xxHash64 checksum in the header, verified on decode.
//
// Because the blob embeds the arena its records reference, it is portable
// across processes, unlike the per-session compressed strings produced by
// hostpack.Encoder.
package blob
