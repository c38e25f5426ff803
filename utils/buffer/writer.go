package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint64 writes c to w as 8 big-endian bytes.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {

		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is smaller than 8 bytes even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]
	binary.BigEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteInt64Slice writes the slice c to w, 8 big-endian bytes per element.
func WriteInt64Slice(w Writer, c []int64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Number of elements that fit in the available buffer space
	available := w.Available() >> 3

	if available == 0 {

		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 3

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteInt64Slice: available buffer is smaller than 8 bytes even after flush")
		}
	}

	if N := len(c); N <= available { // the whole slice fits
		buf := w.AvailableBuffer()[:N<<3]

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			binary.BigEndian.PutUint64(buf[j:], uint64(c[i]))
		}

		nint, err := w.Write(buf)

		return int64(nint), err
	}

	// Writes what fits and recurses on the remainder
	buf := w.AvailableBuffer()[:available<<3]

	for i, j := 0, 0; i < available; i, j = i+1, j+8 {
		binary.BigEndian.PutUint64(buf[j:], uint64(c[i]))
	}

	var nint int
	if nint, err = w.Write(buf); err != nil {
		return int64(nint), err
	}

	n += int64(nint)

	var inc int64
	if inc, err = WriteInt64Slice(w, c[available:]); err != nil {
		return n + inc, err
	}

	return n + inc, nil
}
