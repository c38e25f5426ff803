package poly

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes a human-readable rendering of the polynomial to w, from
// the highest exponent down to the constant term, skipping zero
// coefficients. Each emitted term is preceded by a single space and its
// coefficient carries an explicit sign. The variable is printed for
// exponents >= 1 and the caret form x^e for exponents >= 2, e.g.
// " +1x^3 -3x^2 +4". If every coefficient is zero, WriteText writes " 0".
func (p *Poly) WriteText(w io.Writer) (err error) {
	var nonzero bool

	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if c == 0 {
			continue
		}

		nonzero = true

		if _, err = fmt.Fprintf(w, " %+d", c); err != nil {
			return fmt.Errorf("cannot WriteText: %w", err)
		}

		if i > 1 {
			_, err = fmt.Fprintf(w, "x^%d", i)
		} else if i == 1 {
			_, err = io.WriteString(w, "x")
		}

		if err != nil {
			return fmt.Errorf("cannot WriteText: %w", err)
		}
	}

	if !nonzero {
		if _, err = io.WriteString(w, " 0"); err != nil {
			return fmt.Errorf("cannot WriteText: %w", err)
		}
	}

	return nil
}

// String implements the fmt.Stringer interface.
func (p *Poly) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	if err := p.WriteText(&sb); err != nil {
		panic(err)
	}
	return sb.String()
}

// ReadText reads whitespace-separated integer pairs (coefficient, exponent)
// from r and applies each as SetCoeff on the receiver, growing it as
// needed, until the terminating pair 0 0 is read. The terminating pair is
// consumed but not applied. All existing entries are reset to zero before
// reading begins; the current length is preserved.
//
// The stream is expected to be well formed: a scan failure (non-integer
// token, truncated stream) is returned as the underlying error and leaves
// the receiver with the pairs applied so far.
func (p *Poly) ReadText(r io.Reader) (err error) {
	p.Zero()

	var coeff int64
	var exp int

	for {
		if _, err = fmt.Fscan(r, &coeff, &exp); err != nil {
			return fmt.Errorf("cannot ReadText: %w", err)
		}

		if coeff == 0 && exp == 0 {
			return nil
		}

		p.SetCoeff(coeff, exp)
	}
}
