package poly

// Add returns a new polynomial holding p + q. Both operands are left
// unchanged. The result has max(p.Len(), q.Len()) coefficients.
func (p *Poly) Add(q *Poly) (sum *Poly) {
	longer, shorter := p, q
	if len(longer.Coeffs) < len(shorter.Coeffs) {
		longer, shorter = shorter, longer
	}

	sum = longer.CopyNew()
	for i := range shorter.Coeffs {
		sum.Coeffs[i] += shorter.Coeffs[i]
	}

	return
}

// Sub returns a new polynomial holding p - q. Both operands are left
// unchanged. The result has max(p.Len(), q.Len()) coefficients.
func (p *Poly) Sub(q *Poly) (diff *Poly) {
	diff = p.CopyNew()

	if len(diff.Coeffs) < len(q.Coeffs) {
		diff.SetCoeff(0, len(q.Coeffs)-1)
	}

	for i := range q.Coeffs {
		diff.Coeffs[i] -= q.Coeffs[i]
	}

	return
}

// Neg returns a new polynomial holding -p.
func (p *Poly) Neg() (neg *Poly) {
	neg = p.CopyNew()
	for i := range neg.Coeffs {
		neg.Coeffs[i] = -neg.Coeffs[i]
	}
	return
}

// Mul returns a new polynomial holding p * q, computed as the full
// schoolbook convolution. Both operands are left unchanged. The result has
// p.Len() + q.Len() - 1 coefficients.
func (p *Poly) Mul(q *Poly) (prod *Poly) {
	prod = new(Poly)
	prod.Coeffs = convolve(p.Coeffs, q.Coeffs)
	return
}

// AddAssign adds q to the receiver in place, growing the receiver first if
// q has more coefficients.
func (p *Poly) AddAssign(q *Poly) {
	if len(p.Coeffs) < len(q.Coeffs) {
		p.SetCoeff(0, len(q.Coeffs)-1)
	}

	for i := range q.Coeffs {
		p.Coeffs[i] += q.Coeffs[i]
	}
}

// SubAssign subtracts q from the receiver in place, growing the receiver
// first if q has more coefficients.
func (p *Poly) SubAssign(q *Poly) {
	if len(p.Coeffs) < len(q.Coeffs) {
		p.SetCoeff(0, len(q.Coeffs)-1)
	}

	for i := range q.Coeffs {
		p.Coeffs[i] -= q.Coeffs[i]
	}
}

// MulAssign multiplies the receiver by q in place. The convolution is
// accumulated into a fresh zeroed buffer which then replaces the receiver's
// coefficient slice, so aliased operands (p.MulAssign(p)) are safe.
func (p *Poly) MulAssign(q *Poly) {
	p.Coeffs = convolve(p.Coeffs, q.Coeffs)
}

// convolve returns the full convolution of a and b, of length
// len(a)+len(b)-1.
func convolve(a, b []int64) (c []int64) {
	c = make([]int64, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			c[i+j] += a[i] * b[j]
		}
	}

	return
}

// Evaluate returns the value of the polynomial at x, using Horner's method.
func (p *Poly) Evaluate(x int64) (y int64) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return
}
