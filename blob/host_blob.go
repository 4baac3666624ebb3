package blob

// HostBlob is a finished, immutable host blob.
type HostBlob struct {
	data []byte
}

// Bytes returns the serialized blob: header followed by the (possibly
// compressed) payload. The returned slice is owned by the blob; callers must
// not modify it.
func (b HostBlob) Bytes() []byte {
	return b.data
}

// Size returns the total serialized size in bytes.
func (b HostBlob) Size() int {
	return len(b.data)
}
