package section

import (
	"github.com/mineclever/hostpack/endian"
	"github.com/mineclever/hostpack/errs"
)

// HostHeader is the fixed-size header of a host blob. It is 32 bytes and
// describes the payload that follows it.
//
// Layout:
//   - Flag: 4 bytes, offset 0-3 (Options uint16 always little-endian)
//   - HostnameCount: 4 bytes, offset 4-7
//   - DictSize: 4 bytes, offset 8-11
//   - RecordsSize: 4 bytes, offset 12-15
//   - Checksum: 8 bytes, offset 16-23
//   - Reserved: 8 bytes, offset 24-31, must be zero
type HostHeader struct {
	// Flag is the packed field for options, compression and magic number (0xEC10).
	Flag HostFlag

	// HostnameCount is the number of hostname records stored in the blob.
	HostnameCount uint32
	// DictSize is the uncompressed size of the dictionary section in bytes.
	DictSize uint32
	// RecordsSize is the uncompressed size of the record section in bytes.
	RecordsSize uint32
	// Checksum is the xxHash64 digest of the uncompressed payload
	// (dictionary section followed by record section).
	Checksum uint64

	Reserved [8]byte
}

// NewHostHeader creates a HostHeader with default flag settings. Count,
// sizes and checksum are filled in by the blob encoder at Finish.
func NewHostHeader() *HostHeader {
	return &HostHeader{Flag: NewHostFlag()}
}

// Parse parses the header from a byte slice.
// It returns an error if data is not exactly HeaderSize bytes, if the
// flags are invalid, or if the reserved bytes are not zero.
func (h *HostHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian; it carries the bit
	// that selects the engine for everything after it.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.PayloadCompression = data[2]
	h.Flag.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.HostnameCount = engine.Uint32(data[4:8])
	h.DictSize = engine.Uint32(data[8:12])
	h.RecordsSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	copy(h.Reserved[:], data[24:32])

	for _, b := range h.Reserved {
		if b != 0 {
			return errs.ErrInvalidHeaderFlags
		}
	}

	return nil
}

// Bytes serializes the HostHeader into a byte slice.
func (h *HostHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.PayloadCompression
	b[3] = h.Flag.Reserved

	engine := h.GetEndianEngine()
	engine.PutUint32(b[4:8], h.HostnameCount)
	engine.PutUint32(b[8:12], h.DictSize)
	engine.PutUint32(b[12:16], h.RecordsSize)
	engine.PutUint64(b[16:24], h.Checksum)
	copy(b[24:32], h.Reserved[:])

	return b
}

// GetEndianEngine returns the endian engine selected by the header flag.
func (h *HostHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
