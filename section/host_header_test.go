package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/format"
)

func TestHostHeader_RoundTrip(t *testing.T) {
	h := NewHostHeader()
	h.Flag.SetPayloadCompression(format.CompressionS2)
	h.HostnameCount = 42
	h.DictSize = 1234
	h.RecordsSize = 5678
	h.Checksum = 0xDEADBEEFCAFEF00D

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	var parsed HostHeader
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, *h, parsed)
}

func TestHostHeader_RoundTripBigEndian(t *testing.T) {
	h := NewHostHeader()
	h.Flag.WithBigEndian()
	h.HostnameCount = 7
	h.DictSize = 100
	h.RecordsSize = 200
	h.Checksum = 0x0102030405060708

	var parsed HostHeader
	require.NoError(t, parsed.Parse(h.Bytes()))
	require.Equal(t, *h, parsed)
	require.True(t, parsed.Flag.IsBigEndian())
}

func TestHostHeader_ParseRejectsWrongSize(t *testing.T) {
	var h HostHeader
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize-1)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(nil), errs.ErrInvalidHeaderSize)
}

func TestHostHeader_ParseRejectsBadMagic(t *testing.T) {
	h := NewHostHeader()
	data := h.Bytes()
	data[1] ^= 0xFF // clobber the magic bits

	var parsed HostHeader
	require.ErrorIs(t, parsed.Parse(data), errs.ErrInvalidMagicNumber)
}

func TestHostHeader_ParseRejectsBadCompression(t *testing.T) {
	h := NewHostHeader()
	data := h.Bytes()
	data[2] = 0x66

	var parsed HostHeader
	require.ErrorIs(t, parsed.Parse(data), errs.ErrInvalidHeaderFlags)
}

func TestHostHeader_ParseRejectsNonZeroReserved(t *testing.T) {
	h := NewHostHeader()
	for _, pos := range []int{24, 28, 31} {
		data := h.Bytes()
		data[pos] = 0x01

		var parsed HostHeader
		require.ErrorIs(t, parsed.Parse(data), errs.ErrInvalidHeaderFlags, "byte %d", pos)
	}
}

func TestHostHeader_EndianEngineFollowsFlag(t *testing.T) {
	h := NewHostHeader()
	little := h.GetEndianEngine()

	h.Flag.WithBigEndian()
	big := h.GetEndianEngine()
	require.NotEqual(t, little, big)
}
