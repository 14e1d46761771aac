// Package modmatrix_test: matrix inversion tests, including the full
// reference scenario and the inversion law inverse(M)·M ≡ I (mod modulus).
package modmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/stretchr/testify/require"
)

// TestInverseReferenceScenario walks the documented 2×2 scenario end to end:
// M = [[3,3],[2,5]], modulus 26; det = 9; 9⁻¹ = 3;
// adj = [[5,23],[24,3]]; inverse = [[15,17],[20,9]].
func TestInverseReferenceScenario(t *testing.T) {
	m, err := modmatrix.NewFromEntries(2, 26, []int{3, 3, 2, 5})
	require.NoError(t, err)

	inv, err := modmatrix.Inverse(m)
	require.NoError(t, err)
	require.Equal(t, "15,17,20,9", inv.String()) // each adj entry × 3 mod 26

	// Inversion law: inverse(M)·M ≡ I (mod 26).
	prod, err := modmatrix.Mul(inv, m)
	require.NoError(t, err)
	ident, err := modmatrix.Identity(2, 26)
	require.NoError(t, err)
	require.Equal(t, ident.String(), prod.String())

	// The law holds from the other side too.
	prod, err = modmatrix.Mul(m, inv)
	require.NoError(t, err)
	require.Equal(t, ident.String(), prod.String())
}

// TestInverseNotInvertible ensures a non-unit determinant is reported as
// ErrNotInvertible rather than producing a sentinel-scaled matrix.
func TestInverseNotInvertible(t *testing.T) {
	// det = 1·4 − 2·2 = 0: no inverse exists.
	singular, err := modmatrix.NewFromEntries(2, 26, []int{1, 2, 2, 4})
	require.NoError(t, err)
	_, err = modmatrix.Inverse(singular)
	require.ErrorIs(t, err, modmatrix.ErrNotInvertible)

	// det = 13 shares a factor with 26: also not a unit.
	shared, err := modmatrix.NewFromEntries(2, 26, []int{13, 0, 0, 1})
	require.NoError(t, err)
	_, err = modmatrix.Inverse(shared)
	require.ErrorIs(t, err, modmatrix.ErrNotInvertible)
}

// TestInverseNil ensures the nil guard fires before any computation.
func TestInverseNil(t *testing.T) {
	_, err := modmatrix.Inverse(nil)
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}

// TestScalarMul checks entrywise scaling with canonicalized scalars.
func TestScalarMul(t *testing.T) {
	m, err := modmatrix.NewFromEntries(2, 26, []int{5, 23, 24, 3})
	require.NoError(t, err)

	out, err := modmatrix.ScalarMul(m, 3) // the reference det⁻¹
	require.NoError(t, err)
	require.Equal(t, "15,17,20,9", out.String())
	require.Equal(t, "5,23,24,3", m.String()) // operand untouched

	// A negative scalar is reduced first: −1 ≡ 25 (mod 26).
	out, err = modmatrix.ScalarMul(m, -1)
	require.NoError(t, err)
	require.Equal(t, "21,3,2,23", out.String())

	_, err = modmatrix.ScalarMul(nil, 2)
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}

// TestMulValidation covers the shared-ring guards of Mul.
func TestMulValidation(t *testing.T) {
	a, err := modmatrix.NewMatrix(2, 26)
	require.NoError(t, err)
	b, err := modmatrix.NewMatrix(3, 26) // different dimension
	require.NoError(t, err)
	c, err := modmatrix.NewMatrix(2, 29) // different modulus
	require.NoError(t, err)

	_, err = modmatrix.Mul(a, b)
	require.ErrorIs(t, err, modmatrix.ErrDimensionMismatch)

	_, err = modmatrix.Mul(a, c)
	require.ErrorIs(t, err, modmatrix.ErrModulusMismatch)

	_, err = modmatrix.Mul(nil, a)
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}

// TestIdentityIsNeutral verifies I·M == M == M·I over the ring.
func TestIdentityIsNeutral(t *testing.T) {
	m, err := modmatrix.NewFromEntries(3, 29, []int{2, 0, 1, 1, 3, 5, 0, 4, 7})
	require.NoError(t, err)
	ident, err := modmatrix.Identity(3, 29)
	require.NoError(t, err)

	left, err := modmatrix.Mul(ident, m)
	require.NoError(t, err)
	require.Equal(t, m.String(), left.String())

	right, err := modmatrix.Mul(m, ident)
	require.NoError(t, err)
	require.Equal(t, m.String(), right.String())
}

// TestIsInvertible covers the facade's coprimality gate.
func TestIsInvertible(t *testing.T) {
	key, err := modmatrix.NewFromEntries(2, 26, []int{3, 3, 2, 5})
	require.NoError(t, err)
	ok, err := modmatrix.IsInvertible(key)
	require.NoError(t, err)
	require.True(t, ok) // gcd(9, 26) == 1

	singular, err := modmatrix.NewFromEntries(2, 26, []int{1, 2, 2, 4})
	require.NoError(t, err)
	ok, err = modmatrix.IsInvertible(singular)
	require.NoError(t, err)
	require.False(t, ok) // det == 0

	_, err = modmatrix.IsInvertible(nil)
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}
