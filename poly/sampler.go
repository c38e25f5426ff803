package poly

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/polyarith/polyarith/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and samples polynomials whose
// coefficients are uniformly distributed in [-bound, bound].
type UniformSampler struct {
	prng  sampling.PRNG
	bound int64
	buff  [8]byte
}

// NewUniformSampler creates a new UniformSampler from a PRNG and a strictly
// positive coefficient bound.
func NewUniformSampler(prng sampling.PRNG, bound int64) (u *UniformSampler) {
	if bound <= 0 {
		panic(fmt.Errorf("cannot NewUniformSampler: bound must be strictly positive but is %d", bound))
	}
	u = new(UniformSampler)
	u.prng = prng
	u.bound = bound
	return
}

// Read overwrites every coefficient of pol with a fresh sample. The length
// of pol is left unchanged.
func (u *UniformSampler) Read(pol *Poly) {

	span := uint64(u.bound)<<1 + 1
	mask := uint64(1)<<bits.Len64(span-1) - 1

	for i := range pol.Coeffs {

		// Samples an integer in [0, span-1] by rejection
		var v uint64
		for {
			if _, err := u.prng.Read(u.buff[:]); err != nil {
				// Sanity check, this error should not happen.
				panic(err)
			}

			if v = binary.BigEndian.Uint64(u.buff[:]) & mask; v < span {
				break
			}
		}

		pol.Coeffs[i] = int64(v) - u.bound
	}
}

// ReadNew samples a new polynomial with the given number of coefficients.
// Lengths below 1 are clamped to 1.
func (u *UniformSampler) ReadNew(length int) (pol *Poly) {
	if length < 1 {
		length = 1
	}

	pol = new(Poly)
	pol.Coeffs = make([]int64, length)
	u.Read(pol)

	return
}
