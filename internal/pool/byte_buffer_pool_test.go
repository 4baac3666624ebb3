package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	n, err := bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("hello world"), bb.Bytes())

	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, []byte("hello world!"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("data"))

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("12345678"), bb.Bytes(), "growth must preserve content")

	// sufficient capacity is a no-op
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowLargeBuffer(t *testing.T) {
	bb := NewByteBuffer(8 * RecordBufferDefaultSize)
	bb.B = bb.B[:bb.Cap()]

	bb.Grow(1)
	// large buffers grow by 25% of capacity
	require.GreaterOrEqual(t, bb.Cap(), 8*RecordBufferDefaultSize+2*RecordBufferDefaultSize)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", sink.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("scratch"))
	p.Put(bb)

	// returned buffers come back reset
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // over threshold, must not be retained

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)

	p.Put(nil) // must not panic
}

func TestRecordBufferPool(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("record"))
	PutRecordBuffer(bb)
}
