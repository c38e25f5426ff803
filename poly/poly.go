// Package poly implements a univariate polynomial with signed integer
// coefficients, stored as a dense slice indexed by exponent: Coeffs[5] = 4
// encodes the term 4x^5. The slice always holds at least the constant term
// and keeps an explicit (possibly zero) entry for every exponent below its
// length; trailing zero entries are never trimmed. Equality, formatting and
// parsing all treat exponents beyond the stored length as zero coefficients.
package poly

import (
	"github.com/polyarith/polyarith/utils"
)

// Poly is the structure that contains the coefficients of a polynomial.
// The entry at index i is the coefficient of the term with exponent i.
type Poly struct {
	Coeffs []int64
}

// NewPoly creates a new zero polynomial with a single constant term.
func NewPoly() (p *Poly) {
	p = new(Poly)
	p.Coeffs = make([]int64, 1)
	return
}

// NewConstant creates a new polynomial holding the single constant term c.
func NewConstant(c int64) (p *Poly) {
	p = NewPoly()
	p.Coeffs[0] = c
	return
}

// NewMonomial creates a new polynomial of length |exp|+1 whose leading
// coefficient is c and whose lower-order entries are all zero.
// Negative exponents are treated as their absolute value.
func NewMonomial(c int64, exp int) (p *Poly) {
	p = new(Poly)
	p.Coeffs = make([]int64, utils.Abs(exp)+1)
	p.Coeffs[len(p.Coeffs)-1] = c
	return
}

// Len returns the number of stored coefficients, which is one more than the
// highest exponent with an explicit entry.
func (p *Poly) Len() int {
	return len(p.Coeffs)
}

// Degree returns the highest exponent with a non-zero coefficient.
// The degree of the zero polynomial is 0.
func (p *Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i > 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return 0
}

// Coeff returns the coefficient of the term with the given exponent.
// Exponents outside the stored range denote terms that were never set,
// so their coefficient is 0.
func (p *Poly) Coeff(exp int) int64 {
	if exp < 0 || exp >= len(p.Coeffs) {
		return 0
	}
	return p.Coeffs[exp]
}

// SetCoeff sets the coefficient of the term with exponent |exp| to c.
// If |exp| lies beyond the stored range, the coefficient slice is grown to
// |exp|+1 entries, the newly exposed entries being zero. This is the single
// growth path used by all operations that need more room.
func (p *Poly) SetCoeff(c int64, exp int) {
	index := utils.Abs(exp)

	if index >= len(p.Coeffs) {
		buff := make([]int64, index+1)
		copy(buff, p.Coeffs)
		p.Coeffs = buff
	}

	p.Coeffs[index] = c
}

// Zero sets all stored coefficients to 0, keeping the length unchanged.
func (p *Poly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// CopyNew creates an exact deep copy of the target polynomial.
func (p *Poly) CopyNew() (pcpy *Poly) {
	pcpy = new(Poly)
	pcpy.Coeffs = make([]int64, len(p.Coeffs))
	copy(pcpy.Coeffs, p.Coeffs)
	return
}

// Set overwrites the receiver with an independent deep copy of src.
func (p *Poly) Set(src *Poly) {
	if p == src {
		return
	}
	if len(p.Coeffs) != len(src.Coeffs) {
		p.Coeffs = make([]int64, len(src.Coeffs))
	}
	copy(p.Coeffs, src.Coeffs)
}

// Equal returns true if both polynomials represent the same mathematical
// value. Lengths may differ: the shorter coefficient slice is compared
// against the prefix of the longer one, and the remaining tail of the longer
// one must be all zeros.
func (p *Poly) Equal(other *Poly) bool {
	if p == other {
		return true
	}
	if len(p.Coeffs) > len(other.Coeffs) {
		return compare(other, p)
	}
	return compare(p, other)
}

// compare reports whether smaller and larger hold the same polynomial,
// with len(smaller.Coeffs) <= len(larger.Coeffs).
func compare(smaller, larger *Poly) bool {
	i := 0
	for ; i < len(smaller.Coeffs); i++ {
		if smaller.Coeffs[i] != larger.Coeffs[i] {
			return false
		}
	}
	for ; i < len(larger.Coeffs); i++ {
		if larger.Coeffs[i] != 0 {
			return false
		}
	}
	return true
}
