package poly

import (
	"github.com/zeebo/blake3"

	"github.com/polyarith/polyarith/utils/buffer"
)

// Digest returns the blake3 hash of the serialized polynomial. Note that
// the digest is computed over the stored coefficient slice, so two
// polynomials that are Equal but differ in trailing zero-padding hash to
// different digests.
func (p *Poly) Digest() [32]byte {
	buf := buffer.NewBufferSize(p.BinarySize())
	if _, err := p.WriteTo(buf); err != nil {
		// Sanity check, the buffer is pre-sized.
		panic(err)
	}
	return blake3.Sum256(buf.Bytes())
}
