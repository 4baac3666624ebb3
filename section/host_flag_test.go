package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/format"
)

func TestNewHostFlag_Defaults(t *testing.T) {
	flag := NewHostFlag()

	require.True(t, flag.IsValidMagicNumber())
	require.Equal(t, uint16(MagicHostV1Opt), flag.GetMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, format.CompressionNone, flag.GetPayloadCompression())
	require.NoError(t, flag.Validate())
}

func TestHostFlag_Endianness(t *testing.T) {
	flag := NewHostFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.True(t, flag.IsValidMagicNumber(), "endianness must not disturb the magic number")
	require.NoError(t, flag.Validate())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.NoError(t, flag.Validate())
}

func TestHostFlag_PayloadCompression(t *testing.T) {
	flag := NewHostFlag()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		flag.SetPayloadCompression(compression)
		require.Equal(t, compression, flag.GetPayloadCompression())
		require.NoError(t, flag.Validate())
	}

	flag.PayloadCompression = 0x7F
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
}

func TestHostFlag_Validate(t *testing.T) {
	flag := NewHostFlag()
	flag.Options = (flag.Options & ^uint16(MagicNumberMask)) | 0x1230
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagicNumber)

	flag = NewHostFlag()
	flag.Options |= 0x0001 // reserved bit
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)

	flag = NewHostFlag()
	flag.Reserved = 0xFF
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
}
