package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mineclever/hostpack/errs"
)

func TestArena_Append(t *testing.T) {
	a := NewArena()
	require.Equal(t, reservedBytes, a.Size())

	off, err := a.Append("com")
	require.NoError(t, err)
	require.Equal(t, uint32(reservedBytes), off)
	require.Equal(t, reservedBytes+1+3, a.Size())

	label, err := a.Label(off)
	require.NoError(t, err)
	require.Equal(t, "com", string(label))
}

func TestArena_AppendOffsetsAreMonotonic(t *testing.T) {
	a := NewArena()

	var prev uint32
	for _, label := range []string{"com", "example", "www", "mail"} {
		off, err := a.Append(label)
		require.NoError(t, err)
		require.Greater(t, off, prev)
		prev = off
	}
}

func TestArena_AppendRejectsEmptyLabel(t *testing.T) {
	a := NewArena()

	_, err := a.Append("")
	require.ErrorIs(t, err, errs.ErrEmptyLabel)
	require.Equal(t, reservedBytes, a.Size())
}

func TestArena_LabelLengthBoundary(t *testing.T) {
	a := NewArena()

	// exactly 64 bytes succeeds
	max := strings.Repeat("a", MaxLabelLen)
	off, err := a.Append(max)
	require.NoError(t, err)

	label, err := a.Label(off)
	require.NoError(t, err)
	require.Equal(t, max, string(label))

	// 65 bytes fails before writing
	size := a.Size()
	_, err = a.Append(strings.Repeat("a", MaxLabelLen+1))
	require.ErrorIs(t, err, errs.ErrLabelTooLong)
	require.Equal(t, size, a.Size())
}

func TestArena_GrowthPreservesOffsets(t *testing.T) {
	a := NewArena()

	type record struct {
		off   uint32
		label string
	}

	// push well past several growth steps
	var records []record
	label := strings.Repeat("x", MaxLabelLen)
	for a.Size() < 5*arenaStep {
		off, err := a.Append(label)
		require.NoError(t, err)
		records = append(records, record{off, label})
	}

	for _, r := range records {
		got, err := a.Label(r.off)
		require.NoError(t, err)
		require.Equal(t, r.label, string(got))
	}
}

func TestArena_LabelRejectsInvalidOffsets(t *testing.T) {
	a := NewArena()
	_, err := a.Append("com")
	require.NoError(t, err)

	// reserved prefix
	_, err = a.Label(0)
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
	_, err = a.Label(1)
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)

	// past the arena
	_, err = a.Label(uint32(a.Size()))
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)

	// length byte overruns the arena: offset of the final label byte
	_, err = a.Label(uint32(a.Size() - 1))
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
}

func TestArena_Hostname(t *testing.T) {
	a := NewArena()

	com, err := a.Append("com")
	require.NoError(t, err)
	example, err := a.Append("example")
	require.NoError(t, err)
	www, err := a.Append("www")
	require.NoError(t, err)

	// offsets stored TLD-first
	name, err := a.Hostname([]uint32{com, example, www})
	require.NoError(t, err)
	require.Equal(t, "www.example.com", name)

	// single label, no separator
	name, err = a.Hostname([]uint32{com})
	require.NoError(t, err)
	require.Equal(t, "com", name)
}

func TestArena_HostnameRejectsEmptyList(t *testing.T) {
	a := NewArena()
	_, err := a.Hostname(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestArena_HostnameRejectsBadOffset(t *testing.T) {
	a := NewArena()
	com, err := a.Append("com")
	require.NoError(t, err)

	_, err = a.Hostname([]uint32{com, uint32(a.Size()) + 100})
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
}

func TestNewArenaFromBytes(t *testing.T) {
	src := NewArena()
	off, err := src.Append("org")
	require.NoError(t, err)

	a, err := NewArenaFromBytes(src.Bytes())
	require.NoError(t, err)

	label, err := a.Label(off)
	require.NoError(t, err)
	require.Equal(t, "org", string(label))
}

func TestNewArenaFromBytes_TooShort(t *testing.T) {
	_, err := NewArenaFromBytes([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}
