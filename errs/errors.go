// Package errs defines the sentinel errors shared across hostpack packages.
//
// Callers match these with errors.Is; packages wrap them with fmt.Errorf("%w: ...")
// to attach context without breaking identity checks.
package errs

import "errors"

var (
	// ErrEmptyHostname indicates an empty hostname was passed to compression.
	ErrEmptyHostname = errors.New("hostname is empty")

	// ErrEmptyLabel indicates a hostname contains a zero-length label
	// (leading dot, trailing dot, or consecutive dots).
	ErrEmptyLabel = errors.New("hostname contains an empty label")

	// ErrLabelTooLong indicates a label exceeds the 64-byte DNS limit.
	ErrLabelTooLong = errors.New("label exceeds maximum length")

	// ErrArenaExhausted indicates the label arena reached the 31-bit offset space.
	ErrArenaExhausted = errors.New("label arena offset space exhausted")

	// ErrEmptyInput indicates decompression was given an empty byte string.
	ErrEmptyInput = errors.New("input is empty")

	// ErrEmptyDictionary indicates decompression was attempted before any
	// label was ever stored in the dictionary.
	ErrEmptyDictionary = errors.New("dictionary has no labels")

	// ErrMalformedSequence indicates the offset codec met a malformed leading
	// byte, a truncated continuation run, or an invalid continuation byte.
	ErrMalformedSequence = errors.New("malformed offset sequence")

	// ErrOffsetOutOfRange indicates a decoded offset, or its declared label
	// length, falls outside the arena bounds.
	ErrOffsetOutOfRange = errors.New("offset out of arena range")

	// ErrInvalidHeaderSize indicates a blob header is not exactly HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates a blob header carries an unknown magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a blob header carries invalid flag values.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrChecksumMismatch indicates the blob payload checksum does not match
	// the value recorded in the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidPayload indicates blob payload sections are truncated or
	// inconsistent with the header.
	ErrInvalidPayload = errors.New("invalid blob payload")

	// ErrHostnameCountExceeded indicates a blob encoder exceeded the maximum
	// number of hostnames per blob.
	ErrHostnameCountExceeded = errors.New("hostname count exceeds maximum")

	// ErrNoHostnamesAdded indicates Finish was called on a blob encoder with
	// no hostnames added.
	ErrNoHostnamesAdded = errors.New("no hostnames added")

	// ErrRecordTooLarge indicates a single compressed hostname record exceeds
	// the uint16 length prefix of the blob record section.
	ErrRecordTooLarge = errors.New("compressed record exceeds maximum size")

	// ErrIndexOutOfRange indicates a hostname index is outside a decoded blob.
	ErrIndexOutOfRange = errors.New("hostname index out of range")
)
