package blob

import (
	"fmt"
	"math"

	"github.com/mineclever/hostpack/compress"
	"github.com/mineclever/hostpack/dict"
	"github.com/mineclever/hostpack/encoding"
	"github.com/mineclever/hostpack/endian"
	"github.com/mineclever/hostpack/errs"
	"github.com/mineclever/hostpack/format"
	"github.com/mineclever/hostpack/internal/hash"
	"github.com/mineclever/hostpack/internal/options"
	"github.com/mineclever/hostpack/internal/pool"
	"github.com/mineclever/hostpack/section"
)

// HostBlobEncoderOption is a functional option for configuring a HostBlobEncoder.
type HostBlobEncoderOption = options.Option[*HostBlobEncoder]

// WithLittleEndian sets little-endian byte order for blob fields (the default).
func WithLittleEndian() HostBlobEncoderOption {
	return options.NoError(func(e *HostBlobEncoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for blob fields.
func WithBigEndian() HostBlobEncoderOption {
	return options.NoError(func(e *HostBlobEncoder) {
		e.header.Flag.WithBigEndian()
	})
}

// WithPayloadCompression sets the compression applied to the blob payload.
// Valid types: CompressionNone (default), CompressionZstd, CompressionS2,
// CompressionLZ4.
func WithPayloadCompression(compression format.CompressionType) HostBlobEncoderOption {
	return options.New(func(e *HostBlobEncoder) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.header.Flag.SetPayloadCompression(compression)
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %v", compression)
		}
	})
}

// HostBlobEncoder accumulates hostnames into a host blob.
//
// Hostnames are compressed against a dictionary owned by the encoder, so
// names sharing trailing labels share dictionary records regardless of the
// order they are added in. Call AddHostname for each name, then Finish once
// to produce the blob. The encoder is not safe for concurrent use.
type HostBlobEncoder struct {
	header  *section.HostHeader
	engine  endian.EndianEngine
	dict    *dict.Dictionary
	records *pool.ByteBuffer
	offEnc  *encoding.OffsetEncoder
	offsets []uint32
	count   int
}

// NewHostBlobEncoder creates a HostBlobEncoder with the given options.
func NewHostBlobEncoder(opts ...HostBlobEncoderOption) (*HostBlobEncoder, error) {
	e := &HostBlobEncoder{
		header:  section.NewHostHeader(),
		dict:    dict.New(),
		records: pool.GetRecordBuffer(),
		offEnc:  encoding.NewOffsetEncoder(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	e.engine = e.header.GetEndianEngine()

	return e, nil
}

// AddHostname compresses name against the blob dictionary and appends its
// record. Names that are empty, contain empty labels, or carry a label over
// 64 bytes are rejected and leave the record section unchanged.
func (e *HostBlobEncoder) AddHostname(name string) error {
	if e.count >= section.MaxHostnameCount {
		return fmt.Errorf("%w: limit %d", errs.ErrHostnameCountExceeded, section.MaxHostnameCount)
	}

	offs, err := e.dict.InsertHostname(e.offsets[:0], name)
	e.offsets = offs
	if err != nil {
		return err
	}

	e.offEnc.Truncate()
	for _, off := range offs {
		if err := e.offEnc.Write(off); err != nil {
			return err
		}
	}

	encoded := e.offEnc.Bytes()
	if len(encoded) > math.MaxUint16 {
		return fmt.Errorf("%w: record is %d bytes", errs.ErrRecordTooLarge, len(encoded))
	}

	e.records.Grow(2 + len(encoded))
	e.records.B = e.engine.AppendUint16(e.records.B, uint16(len(encoded)))
	e.records.MustWrite(encoded)
	e.count++

	return nil
}

// Count returns the number of hostnames added so far.
func (e *HostBlobEncoder) Count() int {
	return e.count
}

// DictSize returns the current dictionary arena size in bytes.
func (e *HostBlobEncoder) DictSize() int {
	return e.dict.Size()
}

// Finish assembles the blob: header, then the dictionary arena and record
// section, checksummed and compressed per the encoder options.
//
// Finish releases the encoder's internal buffers; the encoder must not be
// used afterward. At least one hostname must have been added.
func (e *HostBlobEncoder) Finish() (HostBlob, error) {
	if e.count == 0 {
		return HostBlob{}, errs.ErrNoHostnamesAdded
	}

	codec, err := compress.CreateCodec(e.header.Flag.GetPayloadCompression(), "payload")
	if err != nil {
		return HostBlob{}, err
	}

	dictBytes := e.dict.Arena().Bytes()
	payload := make([]byte, 0, len(dictBytes)+e.records.Len())
	payload = append(payload, dictBytes...)
	payload = append(payload, e.records.Bytes()...)

	e.header.HostnameCount = uint32(e.count)
	e.header.DictSize = uint32(len(dictBytes))
	e.header.RecordsSize = uint32(e.records.Len())
	e.header.Checksum = hash.Checksum(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return HostBlob{}, fmt.Errorf("failed to compress payload: %w", err)
	}

	data := make([]byte, 0, section.HeaderSize+len(compressed))
	data = append(data, e.header.Bytes()...)
	data = append(data, compressed...)

	pool.PutRecordBuffer(e.records)
	e.records = nil
	e.offEnc.Reset()

	return HostBlob{data: data}, nil
}
