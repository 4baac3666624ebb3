package blob

import (
	"fmt"
	"iter"

	"github.com/mineclever/hostpack/compress"
	"github.com/mineclever/hostpack/dict"
	"github.com/mineclever/hostpack/encoding"
	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/internal/hash"
	"github.com/mineclever/hostpack/section"
)

// HostBlobDecoder reads hostnames back out of a serialized host blob.
//
// Construction parses and verifies the whole blob: header flags, payload
// checksum, section sizes, and record framing. Individual hostnames are
// reconstructed on demand from the embedded dictionary arena.
type HostBlobDecoder struct {
	header  section.HostHeader
	arena   *dict.Arena
	records [][]byte
	offsets []uint32
}

// NewHostBlobDecoder parses data as a host blob.
func NewHostBlobDecoder(data []byte) (*HostBlobDecoder, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	d := &HostBlobDecoder{}
	if err := d.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(d.header.Flag.GetPayloadCompression(), "payload")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	dictSize := int(d.header.DictSize)
	recordsSize := int(d.header.RecordsSize)
	if len(payload) != dictSize+recordsSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrInvalidPayload, len(payload), dictSize+recordsSize)
	}

	if hash.Checksum(payload) != d.header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	d.arena, err = dict.NewArenaFromBytes(payload[:dictSize])
	if err != nil {
		return nil, err
	}

	if err := d.parseRecords(payload[dictSize:]); err != nil {
		return nil, err
	}

	return d, nil
}

// parseRecords splits the record section into one offset-codec byte string
// per hostname, validating the uint16 framing against the declared count.
func (d *HostBlobDecoder) parseRecords(data []byte) error {
	engine := d.header.GetEndianEngine()
	count := int(d.header.HostnameCount)
	if count > section.MaxHostnameCount {
		return fmt.Errorf("%w: hostname count %d exceeds limit %d",
			errs.ErrInvalidPayload, count, section.MaxHostnameCount)
	}
	// Every record occupies at least its 2-byte length prefix, so the count
	// also bounds the allocation against the section that must hold it.
	if count > len(data)/2 {
		return fmt.Errorf("%w: hostname count %d exceeds record section capacity",
			errs.ErrInvalidPayload, count)
	}
	d.records = make([][]byte, 0, count)

	pos := 0
	for i := 0; i < count; i++ {
		if pos+2 > len(data) {
			return fmt.Errorf("%w: record %d header truncated", errs.ErrInvalidPayload, i)
		}
		length := int(engine.Uint16(data[pos : pos+2]))
		pos += 2

		if pos+length > len(data) {
			return fmt.Errorf("%w: record %d body truncated", errs.ErrInvalidPayload, i)
		}
		d.records = append(d.records, data[pos:pos+length])
		pos += length
	}

	if pos != len(data) {
		return fmt.Errorf("%w: %d trailing bytes after last record", errs.ErrInvalidPayload, len(data)-pos)
	}

	return nil
}

// Count returns the number of hostnames stored in the blob.
func (d *HostBlobDecoder) Count() int {
	return len(d.records)
}

// Hostname reconstructs the i-th hostname.
func (d *HostBlobDecoder) Hostname(i int) (string, error) {
	if i < 0 || i >= len(d.records) {
		return "", fmt.Errorf("%w: index %d, count %d", errs.ErrIndexOutOfRange, i, len(d.records))
	}

	offs, err := encoding.DecodeOffsets(d.offsets[:0], d.records[i])
	d.offsets = offs
	if err != nil {
		return "", err
	}

	return d.arena.Hostname(offs)
}

// Hostnames reconstructs every hostname in stored order.
func (d *HostBlobDecoder) Hostnames() ([]string, error) {
	names := make([]string, 0, len(d.records))
	for i := range d.records {
		name, err := d.Hostname(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, nil
}

// All returns an iterator over (index, hostname) pairs in stored order.
// Iteration stops early at the first record that fails to decode; callers
// needing the error should use Hostnames or Hostname instead.
func (d *HostBlobDecoder) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range d.records {
			name, err := d.Hostname(i)
			if err != nil {
				return
			}
			if !yield(i, name) {
				return
			}
		}
	}
}
