package section

import (
	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/format"
)

// HostFlag is the packed 4-byte flag field of the host blob header.
type HostFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved and must be 0.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xEC10: host blob format v1
	Options uint16

	// PayloadCompression indicates the compression applied to the payload
	// (dictionary section plus record section).
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	PayloadCompression uint8

	// Reserved must be zero.
	Reserved uint8
}

// NewHostFlag creates a HostFlag with default settings: little-endian byte
// order and no payload compression.
func NewHostFlag() HostFlag {
	flag := HostFlag{
		Options:            MagicHostV1Opt,
		PayloadCompression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// GetMagicNumber returns the magic number from the Options field.
func (f HostFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f HostFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicHostV1Opt
}

// IsLittleEndian returns whether the blob payload fields are little-endian.
func (f HostFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob payload fields are big-endian.
func (f HostFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *HostFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *HostFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetPayloadCompression sets the payload compression type.
func (f *HostFlag) SetPayloadCompression(compression format.CompressionType) {
	f.PayloadCompression = uint8(compression)
}

// GetPayloadCompression returns the payload compression type.
func (f HostFlag) GetPayloadCompression() format.CompressionType {
	return format.CompressionType(f.PayloadCompression)
}

// Validate checks the flag for a valid magic number, zero reserved bits, and
// a known compression type.
func (f HostFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	switch f.GetPayloadCompression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return errs.ErrInvalidHeaderFlags
	}
}
