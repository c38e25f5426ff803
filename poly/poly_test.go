package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPoly(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		p := NewPoly()
		require.Equal(t, []int64{0}, p.Coeffs)
	})

	t.Run("Constant", func(t *testing.T) {
		p := NewConstant(-7)
		require.Equal(t, []int64{-7}, p.Coeffs)
	})

	t.Run("Monomial", func(t *testing.T) {
		p := NewMonomial(4, 5)
		require.Equal(t, []int64{0, 0, 0, 0, 0, 4}, p.Coeffs)
	})

	t.Run("Monomial/NegativeExponent", func(t *testing.T) {
		p := NewMonomial(4, -5)
		require.Equal(t, []int64{0, 0, 0, 0, 0, 4}, p.Coeffs)
	})

	t.Run("Monomial/ZeroExponent", func(t *testing.T) {
		p := NewMonomial(3, 0)
		require.Equal(t, []int64{3}, p.Coeffs)
	})
}

func TestCoeff(t *testing.T) {
	p := NewMonomial(4, 2)

	require.Equal(t, int64(4), p.Coeff(2))
	require.Equal(t, int64(0), p.Coeff(0))

	// Exponents outside the stored range denote zero terms
	require.Equal(t, int64(0), p.Coeff(3))
	require.Equal(t, int64(0), p.Coeff(1000))
	require.Equal(t, int64(0), p.Coeff(-1))
}

func TestSetCoeff(t *testing.T) {
	t.Run("InRange", func(t *testing.T) {
		p := NewMonomial(4, 2)
		p.SetCoeff(9, 1)
		require.Equal(t, []int64{0, 9, 4}, p.Coeffs)
	})

	t.Run("Grow", func(t *testing.T) {
		p := NewConstant(3)
		p.SetCoeff(5, 4)
		require.Equal(t, []int64{3, 0, 0, 0, 5}, p.Coeffs)
	})

	t.Run("GrowthIdempotence", func(t *testing.T) {
		p := NewPoly()
		p.SetCoeff(1, 6)
		require.Equal(t, 7, p.Len())
		p.SetCoeff(2, 6)
		require.Equal(t, 7, p.Len())
		require.Equal(t, int64(2), p.Coeff(6))
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		p := NewPoly()
		p.SetCoeff(8, -3)
		require.Equal(t, []int64{0, 0, 0, 8}, p.Coeffs)
	})
}

func TestDegree(t *testing.T) {
	require.Equal(t, 0, NewPoly().Degree())
	require.Equal(t, 0, NewConstant(5).Degree())
	require.Equal(t, 5, NewMonomial(4, 5).Degree())

	// Trailing zeros do not contribute to the degree
	p := NewMonomial(4, 2)
	p.SetCoeff(0, 7)
	require.Equal(t, 8, p.Len())
	require.Equal(t, 2, p.Degree())
}

func TestZero(t *testing.T) {
	p := NewMonomial(4, 3)
	p.Zero()
	require.Equal(t, []int64{0, 0, 0, 0}, p.Coeffs)
}

func TestCopyNew(t *testing.T) {
	p := NewMonomial(4, 3)
	q := p.CopyNew()

	require.Equal(t, p.Coeffs, q.Coeffs)

	// The copy owns its own backing array
	q.SetCoeff(1, 0)
	require.Equal(t, int64(0), p.Coeff(0))
}

func TestSet(t *testing.T) {
	p := NewMonomial(4, 3)
	q := NewConstant(2)

	q.Set(p)
	require.Equal(t, p.Coeffs, q.Coeffs)

	q.SetCoeff(1, 0)
	require.Equal(t, int64(0), p.Coeff(0))

	// Self-assignment is a no-op
	p.Set(p)
	require.Equal(t, []int64{0, 0, 0, 4}, p.Coeffs)
}

func TestEqual(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		p := NewMonomial(4, 3)
		require.True(t, p.Equal(p))
		require.True(t, p.Equal(p.CopyNew()))
	})

	t.Run("TrailingZeroPadding", func(t *testing.T) {
		p := NewConstant(2)
		q := NewConstant(2)
		q.SetCoeff(0, 1)
		require.Equal(t, 2, q.Len())
		require.True(t, p.Equal(q))
		require.True(t, q.Equal(p))
	})

	t.Run("Different", func(t *testing.T) {
		require.False(t, NewConstant(2).Equal(NewConstant(3)))
		require.False(t, NewConstant(2).Equal(NewMonomial(2, 1)))
		require.False(t, NewMonomial(2, 1).Equal(NewConstant(2)))
	})

	t.Run("ZeroPolynomials", func(t *testing.T) {
		p := NewPoly()
		q := NewMonomial(0, 4)
		require.True(t, p.Equal(q))
	})
}
