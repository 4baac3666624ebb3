// Package encoding implements the variable-length offset codec used by
// hostpack to pack arena offsets into compact byte strings.
//
// The codec is structurally UTF-8: a leading byte whose run of high one-bits
// announces the sequence length, followed by continuation bytes prefixed 10.
// Unlike UTF-8 it covers the full 31-bit unsigned domain and performs no
// Unicode validation, since the packed values are buffer offsets, not text.
package encoding
