package dict

import (
	"fmt"

	"github.com/mineclever/hostpack/errs"
)

const (
	// MaxLabelLen is the maximum label length in bytes, per the DNS limit.
	MaxLabelLen = 64

	// arenaStep is the fixed growth step of the arena backing store.
	arenaStep = 2048

	// reservedBytes keeps offsets 0 and 1 unassigned so 0 can serve as the
	// "no offset" sentinel (the root node).
	reservedBytes = 2

	// maxArenaOffset is the largest offset the codec can represent (31 bits).
	maxArenaOffset = 0x7FFFFFFF
)

// Arena is an append-only byte store of [length:1][label] records.
//
// A record's offset is its permanent identity: the arena never frees,
// reorders, or rewrites records, and growth only extends capacity.
type Arena struct {
	buf []byte
}

// NewArena creates an empty arena with its two reserved bytes in place.
func NewArena() *Arena {
	return &Arena{buf: make([]byte, reservedBytes, arenaStep)}
}

// NewArenaFromBytes wraps previously serialized arena bytes, e.g. the
// dictionary section of a host blob. The arena takes ownership of data.
func NewArenaFromBytes(data []byte) (*Arena, error) {
	if len(data) < reservedBytes {
		return nil, fmt.Errorf("%w: arena shorter than reserved prefix", errs.ErrInvalidPayload)
	}

	return &Arena{buf: data}, nil
}

// Append stores a new [length][label] record and returns its offset.
//
// The label is validated before any byte is written: zero-length labels and
// labels longer than MaxLabelLen are rejected, as is exhaustion of the
// 31-bit offset space.
func (a *Arena) Append(label string) (uint32, error) {
	if len(label) == 0 {
		return 0, errs.ErrEmptyLabel
	}
	if len(label) > MaxLabelLen {
		return 0, fmt.Errorf("%w: label %q is %d bytes, limit %d", errs.ErrLabelTooLong, label, len(label), MaxLabelLen)
	}

	off := len(a.buf)
	if off > maxArenaOffset {
		return 0, errs.ErrArenaExhausted
	}

	a.grow(1 + len(label))
	a.buf = append(a.buf, byte(len(label)))
	a.buf = append(a.buf, label...)

	return uint32(off), nil
}

// grow extends capacity in arenaStep-sized steps so that n more bytes fit.
// Existing offsets stay valid: growth copies, never renumbers.
func (a *Arena) grow(n int) {
	needed := len(a.buf) + n
	if needed <= cap(a.buf) {
		return
	}

	newCap := ((needed >> 11) + 1) << 11
	newBuf := make([]byte, len(a.buf), newCap)
	copy(newBuf, a.buf)
	a.buf = newBuf
}

// Label returns the label bytes of the record at off.
//
// It fails if off points into the reserved prefix, past the arena, or if the
// record's declared length overruns the arena.
func (a *Arena) Label(off uint32) ([]byte, error) {
	if off < reservedBytes || int64(off) >= int64(len(a.buf)) {
		return nil, fmt.Errorf("%w: offset %d, arena size %d", errs.ErrOffsetOutOfRange, off, len(a.buf))
	}

	length := int(a.buf[off])
	if int(off)+1+length > len(a.buf) {
		return nil, fmt.Errorf("%w: record at %d overruns arena size %d", errs.ErrOffsetOutOfRange, off, len(a.buf))
	}

	return a.buf[off+1 : int(off)+1+length], nil
}

// Hostname reassembles a dotted name from an offset list.
//
// Offsets are stored TLD-first, so the output is written back-to-front: each
// label lands before the previous one, with a dot between labels and none at
// the edges. Any invalid offset aborts the whole reconstruction.
func (a *Arena) Hostname(offsets []uint32) (string, error) {
	if len(offsets) == 0 {
		return "", errs.ErrEmptyInput
	}

	total := 0
	for _, off := range offsets {
		label, err := a.Label(off)
		if err != nil {
			return "", err
		}
		total += len(label) + 1
	}
	total--

	out := make([]byte, total)
	ptr := total
	for i, off := range offsets {
		length := int(a.buf[off])
		copy(out[ptr-length:ptr], a.buf[off+1:int(off)+1+length])
		ptr -= length

		if i != len(offsets)-1 {
			ptr--
			out[ptr] = '.'
		}
	}

	return string(out), nil
}

// Size returns the number of arena bytes in use, including the reserved prefix.
func (a *Arena) Size() int {
	return len(a.buf)
}

// Bytes returns the arena's used bytes. The slice shares the arena's storage;
// it stays valid but callers must not modify it.
func (a *Arena) Bytes() []byte {
	return a.buf
}
