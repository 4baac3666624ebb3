package encoding

import (
	"fmt"

	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/internal/pool"
)

// MaxOffset is the largest encodable offset value (31 bits).
const MaxOffset = 0x7FFFFFFF

// OffsetSize returns the number of bytes the codec uses for off (1-6).
// Offsets above MaxOffset are not representable and return 0.
func OffsetSize(off uint32) int {
	switch {
	case off <= 0x7F:
		return 1
	case off <= 0x7FF:
		return 2
	case off <= 0xFFFF:
		return 3
	case off <= 0x1FFFFF:
		return 4
	case off <= 0x3FFFFFF:
		return 5
	case off <= MaxOffset:
		return 6
	default:
		return 0
	}
}

// AppendOffset appends the 1-6 byte encoding of off to dst and returns the
// extended slice. The caller must ensure off <= MaxOffset.
//
// Encoding layout (v = value bits, most significant first):
//
//	0vvvvvvv
//	110vvvvv 10vvvvvv
//	1110vvvv 10vvvvvv 10vvvvvv
//	11110vvv 10vvvvvv 10vvvvvv 10vvvvvv
//	111110vv 10vvvvvv 10vvvvvv 10vvvvvv 10vvvvvv
//	1111110v 10vvvvvv 10vvvvvv 10vvvvvv 10vvvvvv 10vvvvvv
func AppendOffset(dst []byte, off uint32) []byte {
	switch {
	case off <= 0x7F:
		return append(dst, byte(off))
	case off <= 0x7FF:
		return append(dst,
			0xC0|byte(off>>6),
			0x80|byte(off)&0x3F)
	case off <= 0xFFFF:
		return append(dst,
			0xE0|byte(off>>12),
			0x80|byte(off>>6)&0x3F,
			0x80|byte(off)&0x3F)
	case off <= 0x1FFFFF:
		return append(dst,
			0xF0|byte(off>>18),
			0x80|byte(off>>12)&0x3F,
			0x80|byte(off>>6)&0x3F,
			0x80|byte(off)&0x3F)
	case off <= 0x3FFFFFF:
		return append(dst,
			0xF8|byte(off>>24),
			0x80|byte(off>>18)&0x3F,
			0x80|byte(off>>12)&0x3F,
			0x80|byte(off>>6)&0x3F,
			0x80|byte(off)&0x3F)
	default:
		return append(dst,
			0xFC|byte(off>>30),
			0x80|byte(off>>24)&0x3F,
			0x80|byte(off>>18)&0x3F,
			0x80|byte(off>>12)&0x3F,
			0x80|byte(off>>6)&0x3F,
			0x80|byte(off)&0x3F)
	}
}

// EncodeOffsets packs a sequence of offsets into a single byte string.
//
// The result is exactly sized, newly allocated, and owned by the caller.
// Returns an error if any offset exceeds MaxOffset.
func EncodeOffsets(offsets []uint32) ([]byte, error) {
	total := 0
	for _, off := range offsets {
		size := OffsetSize(off)
		if size == 0 {
			return nil, fmt.Errorf("%w: offset %#x exceeds 31 bits", errs.ErrOffsetOutOfRange, off)
		}
		total += size
	}

	dst := make([]byte, 0, total)
	for _, off := range offsets {
		dst = AppendOffset(dst, off)
	}

	return dst, nil
}

// DecodeOffsets unpacks a byte string produced by EncodeOffsets back into the
// offset sequence, appending into dst (which may be nil).
//
// Decoding fails on a malformed leading byte, a truncated continuation run,
// or a continuation byte not prefixed 10.
func DecodeOffsets(dst []uint32, data []byte) ([]uint32, error) {
	for i := 0; i < len(data); {
		lead := data[i]

		var size int
		var val uint32
		switch {
		case lead&0x80 == 0x00:
			size, val = 1, uint32(lead)
		case lead&0xE0 == 0xC0:
			size, val = 2, uint32(lead&0x1F)
		case lead&0xF0 == 0xE0:
			size, val = 3, uint32(lead&0x0F)
		case lead&0xF8 == 0xF0:
			size, val = 4, uint32(lead&0x07)
		case lead&0xFC == 0xF8:
			size, val = 5, uint32(lead&0x03)
		case lead&0xFE == 0xFC:
			size, val = 6, uint32(lead&0x01)
		default:
			// 10xxxxxx outside a sequence, or 0xFE/0xFF
			return nil, fmt.Errorf("%w: invalid leading byte %#02x at %d", errs.ErrMalformedSequence, lead, i)
		}

		if i+size > len(data) {
			return nil, fmt.Errorf("%w: truncated continuation run at %d", errs.ErrMalformedSequence, i)
		}

		for j := 1; j < size; j++ {
			cont := data[i+j]
			if cont&0xC0 != 0x80 {
				return nil, fmt.Errorf("%w: invalid continuation byte %#02x at %d", errs.ErrMalformedSequence, cont, i+j)
			}
			val = val<<6 | uint32(cont&0x3F)
		}

		dst = append(dst, val)
		i += size
	}

	return dst, nil
}

// OffsetEncoder packs offsets into a pooled buffer, for callers that encode
// many sequences and want to amortize allocations.
type OffsetEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewOffsetEncoder creates a new offset encoder backed by a pooled buffer.
func NewOffsetEncoder() *OffsetEncoder {
	return &OffsetEncoder{buf: pool.GetRecordBuffer()}
}

// Write appends the encoding of a single offset.
// Returns an error if off exceeds MaxOffset.
func (e *OffsetEncoder) Write(off uint32) error {
	size := OffsetSize(off)
	if size == 0 {
		return fmt.Errorf("%w: offset %#x exceeds 31 bits", errs.ErrOffsetOutOfRange, off)
	}

	e.buf.Grow(size)
	e.buf.B = AppendOffset(e.buf.B, off)
	e.count++

	return nil
}

// Bytes returns the encoded data. The returned slice shares the underlying
// pooled buffer; do not retain it past Reset.
func (e *OffsetEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of offsets written since creation or Truncate.
func (e *OffsetEncoder) Len() int {
	return e.count
}

// Size returns the total encoded size in bytes.
func (e *OffsetEncoder) Size() int {
	return e.buf.Len()
}

// Truncate clears the encoded data while keeping the buffer for reuse.
func (e *OffsetEncoder) Truncate() {
	e.buf.Reset()
	e.count = 0
}

// Reset returns the buffer to the pool. The encoder must not be used afterward.
func (e *OffsetEncoder) Reset() {
	if e.buf != nil {
		pool.PutRecordBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
