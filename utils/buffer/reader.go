package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint64 reads 8 big-endian bytes from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.BigEndian.Uint64(bb[:])

	return n, nil
}

// ReadInt64Slice reads len(c) elements of 8 big-endian bytes each from r
// into c.
func ReadInt64Slice(r Reader, c []int64) (n int, err error) {

	if len(c) == 0 {
		return
	}

	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	// Number of whole elements sitting in the peeked bytes
	buffered := len(slice) >> 3

	if buffered == 0 {
		return n, io.ErrUnexpectedEOF
	}

	if N := len(c); N <= buffered { // everything needed is buffered
		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = int64(binary.BigEndian.Uint64(slice[j:]))
		}

		return r.Discard(N << 3)
	}

	// Decodes what is buffered and recurses on the remainder
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = int64(binary.BigEndian.Uint64(slice[j:]))
	}

	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + inc, err
	}

	n += inc

	if inc, err = ReadInt64Slice(r, c[buffered:]); err != nil {
		return n + inc, err
	}

	return n + inc, nil
}
