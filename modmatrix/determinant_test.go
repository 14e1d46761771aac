// Package modmatrix_test: determinant kernel tests (base case, known values,
// reduce-as-you-go behavior).
package modmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/stretchr/testify/require"
)

// TestDeterminantBaseCase pins the 0-dimensional convention: det = 1.
func TestDeterminantBaseCase(t *testing.T) {
	m, err := modmatrix.NewMatrix(0, 26) // the empty matrix
	require.NoError(t, err)

	det, err := modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 1, det) // by convention, the recursion anchor
}

// TestDeterminantOneByOne verifies the trivial single-entry case.
func TestDeterminantOneByOne(t *testing.T) {
	m, err := modmatrix.NewFromEntries(1, 26, []int{17})
	require.NoError(t, err)

	det, err := modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 17, det) // det of [v] is v
}

// TestDeterminantTwoByTwo pins the reference scenario:
// [[3,3],[2,5]] mod 26 → (3·5 − 3·2) mod 26 = 9.
func TestDeterminantTwoByTwo(t *testing.T) {
	m, err := modmatrix.NewFromEntries(2, 26, []int{3, 3, 2, 5})
	require.NoError(t, err)

	det, err := modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 9, det)

	// gcd(9, 26) = 1, so this matrix qualifies as a cipher key.
	require.Equal(t, 1, modmatrix.GCD(det, m.Modulus()))
}

// TestDeterminantThreeByThree checks a negative raw determinant is reduced
// into the canonical range: det([[1,2,3],[4,5,6],[7,8,10]]) = −3 ≡ 23 (mod 26).
func TestDeterminantThreeByThree(t *testing.T) {
	m, err := modmatrix.NewFromEntries(3, 26, []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	})
	require.NoError(t, err)

	det, err := modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 23, det) // −3 canonicalized into [0, 26)
}

// TestDeterminantSingular verifies a linearly dependent grid reduces to zero.
func TestDeterminantSingular(t *testing.T) {
	// Row 1 is twice row 0: determinant must vanish.
	m, err := modmatrix.NewFromEntries(2, 26, []int{1, 2, 2, 4})
	require.NoError(t, err)

	det, err := modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 0, det)
}

// TestDeterminantNil ensures the nil guard fires before any recursion.
func TestDeterminantNil(t *testing.T) {
	_, err := modmatrix.Determinant(nil)
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}

// TestDeterminantLeavesOperandIntact confirms the kernel never mutates m.
func TestDeterminantLeavesOperandIntact(t *testing.T) {
	m, err := modmatrix.NewFromEntries(3, 26, []int{
		2, 0, 1,
		1, 3, 5,
		0, 4, 7,
	})
	require.NoError(t, err)
	before := m.String()

	_, err = modmatrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, before, m.String()) // operand untouched
}
