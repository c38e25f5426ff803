package poly

import (
	"bufio"
	"fmt"
	"io"

	"github.com/polyarith/polyarith/utils/buffer"
)

// BinarySize returns the serialized size of the polynomial in bytes:
// 8 bytes for the coefficient count followed by 8 bytes per coefficient.
func (p *Poly) BinarySize() int {
	return 8 + len(p.Coeffs)<<3
}

// WriteTo writes the polynomial on w. It implements the io.WriterTo
// interface and writes exactly p.BinarySize() bytes.
//
// Unless w implements the buffer.Writer interface, it is wrapped into a
// bufio.Writer. Since this requires an allocation, it is preferable to pass
// a buffer.Writer directly, e.g. buffer.NewBuffer(b) when writing to a
// pre-allocated b []byte.
func (p *Poly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.Coeffs))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteInt64Slice(w, p.Coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the polynomial from r. It implements the io.ReaderFrom
// interface.
//
// Unless r implements the buffer.Reader interface, it is wrapped into a
// bufio.Reader. Since this requires an allocation, it is preferable to pass
// a buffer.Reader directly, e.g. buffer.NewBuffer(b) when reading from a
// b []byte.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int

		var size uint64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return int64(inc), fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += int64(inc)

		if size == 0 {
			return n, fmt.Errorf("cannot ReadFrom: invalid encoding (zero coefficient count)")
		}

		if cap(p.Coeffs) < int(size) {
			p.Coeffs = make([]int64, size)
		}

		p.Coeffs = p.Coeffs[:size]

		if inc, err = buffer.ReadInt64Slice(r, p.Coeffs); err != nil {
			return n + int64(inc), fmt.Errorf("buffer.ReadInt64Slice: %w", err)
		}

		n += int64(inc)

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the polynomial into a newly allocated slice of
// bytes.
func (p *Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on the polynomial.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
