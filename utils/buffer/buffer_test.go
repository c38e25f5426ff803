package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("WriteRead", func(t *testing.T) {
		b := NewBufferSize(8)

		n, err := b.Write([]byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		p := make([]byte, 3)
		n, err = b.Read(p)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{1, 2, 3}, p)
	})

	t.Run("WritePastCapacity", func(t *testing.T) {
		b := NewBufferSize(2)
		_, err := b.Write([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("ReadPastEnd", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2})
		p := make([]byte, 4)
		n, err := b.Read(p)
		assert.Equal(t, 2, n)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("PeekDiscard", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2, 3, 4})

		p, err := b.Peek(2)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, p)
		assert.Equal(t, 4, b.Size())

		n, err := b.Discard(2)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, b.Size())

		n, err = b.Discard(4)
		assert.Equal(t, 2, n)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := b.Write([]byte{1, 2, 3, 4})
		require.NoError(t, err)

		b.Reset()
		assert.Equal(t, 4, b.Available())
		assert.Equal(t, 4, b.Size())
	})
}

func TestWriteReadUint64(t *testing.T) {
	b := NewBufferSize(8)

	_, err := WriteUint64(b, 0x1122334455667788)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, b.Bytes())

	var c uint64
	_, err = ReadUint64(b, &c)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1122334455667788), c)
}

func TestWriteReadInt64Slice(t *testing.T) {
	t.Run("Buffer", func(t *testing.T) {
		c := []int64{1, -2, 3, -4}

		b := NewBufferSize(len(c) << 3)
		n, err := WriteInt64Slice(b, c)
		require.NoError(t, err)
		assert.Equal(t, int64(len(c)<<3), n)

		out := make([]int64, len(c))
		_, err = ReadInt64Slice(b, out)
		require.NoError(t, err)
		assert.Equal(t, c, out)
	})

	t.Run("SmallBufio", func(t *testing.T) {
		// A 16-byte bufio forces the chunked write and read paths
		c := []int64{1, -2, 3, -4, 5, -6, 7, -8}

		var stream bytes.Buffer
		w := bufio.NewWriterSize(&stream, 16)
		_, err := WriteInt64Slice(w, c)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		out := make([]int64, len(c))
		_, err = ReadInt64Slice(bufio.NewReaderSize(&stream, 16), out)
		require.NoError(t, err)
		assert.Equal(t, c, out)
	})

	t.Run("TruncatedStream", func(t *testing.T) {
		b := NewBuffer(make([]byte, 12)) // not enough for two elements

		out := make([]int64, 2)
		_, err := ReadInt64Slice(b, out)
		require.Error(t, err)
	})
}
