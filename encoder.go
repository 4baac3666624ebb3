package hostpack

import (
	"github.com/mineclever/hostpack/dict"
	"github.com/mineclever/hostpack/encoding"
	"github.com/mineclever/hostpack/errs"
)

// Encoder is a hostname compression session. It owns a label dictionary
// shared by every call for the encoder's lifetime; the dictionary only grows
// and is never pruned.
//
// Compressed byte strings reference offsets inside this dictionary, so they
// can only be decompressed by the same Encoder instance (or carried inside a
// host blob, which embeds the dictionary).
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	dict    *dict.Dictionary
	offsets []uint32
}

// New creates an Encoder with an empty dictionary.
func New() *Encoder {
	return &Encoder{dict: dict.New()}
}

// Compress splits name on dots, walks the dictionary trie rightmost-label
// first, and returns the codec-encoded offset sequence.
//
// Names that are empty, contain an empty label, or carry a label longer than
// 64 bytes are rejected. On error the result is nil and no offsets are
// exposed, though labels inserted before the failing one remain in the
// dictionary.
func (e *Encoder) Compress(name string) ([]byte, error) {
	offs, err := e.dict.InsertHostname(e.offsets[:0], name)
	e.offsets = offs
	if err != nil {
		return nil, err
	}

	return encoding.EncodeOffsets(offs)
}

// Decompress decodes data back into the dotted name it was compressed from.
//
// It fails on empty input, on a dictionary that has never stored a label, on
// malformed codec bytes, and on any offset that falls outside the dictionary
// arena. Original casing is preserved: labels are stored byte-for-byte as
// first seen, only lookups are case-insensitive.
func (e *Encoder) Decompress(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errs.ErrEmptyInput
	}
	if e.dict.LabelCount() == 0 {
		return "", errs.ErrEmptyDictionary
	}

	offs, err := encoding.DecodeOffsets(e.offsets[:0], data)
	e.offsets = offs
	if err != nil {
		return "", err
	}
	if len(offs) == 0 {
		return "", errs.ErrEmptyInput
	}

	return e.dict.Hostname(offs)
}

// CompressHostname is the empty-result boundary form of Compress: any
// failure returns nil. Callers must treat an empty result as failure; the
// empty name is not a representable input.
func (e *Encoder) CompressHostname(name string) []byte {
	data, err := e.Compress(name)
	if err != nil {
		return nil
	}

	return data
}

// DecompressHostname is the empty-result boundary form of Decompress: any
// failure returns "".
func (e *Encoder) DecompressHostname(data []byte) string {
	name, err := e.Decompress(data)
	if err != nil {
		return ""
	}

	return name
}

// LabelCount returns the number of distinct labels stored in the dictionary.
func (e *Encoder) LabelCount() int {
	return e.dict.LabelCount()
}

// DictSize returns the dictionary arena size in bytes, including its two
// reserved bytes.
func (e *Encoder) DictSize() int {
	return e.dict.Size()
}

// Labels returns every stored label in depth-first suffix order. Cost is
// linear in the dictionary size; intended for introspection.
func (e *Encoder) Labels() []string {
	return e.dict.Labels()
}
