package section

const (
	// HeaderSize is the fixed size of the host blob header in bytes.
	HeaderSize = 32

	// Bit masks for the packed Options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicHostV1Opt is the version 1 magic number for the host blob format (bits 4-15).
	MagicHostV1Opt = 0xEC10

	// MaxHostnameCount is the maximum number of hostnames a single blob holds.
	MaxHostnameCount = 65535
)
