// Package buffer implements methods for efficiently writing and reading
// values to and from io.Writer and io.Reader implementations that expose
// their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that expose their internal buffers.
// It is notably implemented by the bufio.Writer type
// (see https://pkg.go.dev/bufio#Writer) and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for readers that expose their internal buffers.
// It is notably implemented by the bufio.Reader type
// (see https://pkg.go.dev/bufio#Reader) and by the Buffer type.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a simple []byte-based buffer that complies to the Writer and
// Reader interfaces. The backing slice has a fixed size: writing past its
// capacity returns an error instead of growing it.
type Buffer struct {
	buf  []byte
	woff int
	roff int
}

// NewBuffer creates a new Buffer with buff as backing slice. Both the read
// and the write offset start at buff[0], so new writes overwrite the
// content of buff.
func NewBuffer(buff []byte) *Buffer {
	return &Buffer{buf: buff}
}

// NewBufferSize creates a new Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write writes p into b. It returns the number of bytes written and an
// error if the write does not fit in the remaining capacity. The case where
// p shares its backing memory with b is supported.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.woff > cap(b.buf) {
		return 0, fmt.Errorf("buffer too small")
	}
	n = copy(b.buf[b.woff:], p) // no-op when &b.buf[b.woff] == &p[0]
	b.woff += n
	return n, nil
}

// Flush is a no-op on this slice-based buffer.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice with b.Available() capacity that
// can be appended to and passed to a Write call. The slice is only valid
// until the next write on b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.woff:][:0]
}

// Available returns the number of bytes available for writes on the buffer.
func (b *Buffer) Available() int {
	return len(b.buf) - b.woff
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reset re-initializes the read and write offsets of b.
func (b *Buffer) Reset() {
	b.woff = 0
	b.roff = 0
}

// Read reads up to len(p) bytes from the read offset of b into p. It
// returns the number of bytes read and io.EOF if fewer than len(p) bytes
// were available.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.roff:])
	b.roff += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the number of bytes available for reads on the buffer.
func (b *Buffer) Size() int {
	return len(b.buf) - b.roff
}

// Peek returns the next n bytes without advancing the read offset, as a
// direct reslice of the internal buffer. It returns io.EOF along with the
// remaining bytes if fewer than n are available.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if b.roff+n > len(b.buf) {
		return b.buf[b.roff:], io.EOF
	}
	return b.buf[b.roff : b.roff+n], nil
}

// Discard skips the next n bytes, returning the number of bytes discarded
// and io.EOF if fewer than n bytes were available.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if remain := len(b.buf) - b.roff; n > remain {
		b.roff = len(b.buf)
		return remain, io.EOF
	}
	b.roff += n
	return n, nil
}
