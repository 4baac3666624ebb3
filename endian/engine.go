// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface so encoders can both read fixed-width
// fields and append them without intermediate buffers.
//
// Most callers should use GetLittleEndianEngine, the default for hostpack blobs:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, value)
//
// The returned engines are the immutable binary.LittleEndian / binary.BigEndian
// values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, keeping the
// engine fully compatible with standard library code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
