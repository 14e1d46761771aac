// Package modmatrix_test: matrix–vector transform tests.
package modmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/stretchr/testify/require"
)

// TestApplyReferenceScenario pins the documented example:
// [[1,2],[3,4]] · [1,1] mod 26 = [(1+2) mod 26, (3+4) mod 26] = [3, 7].
func TestApplyReferenceScenario(t *testing.T) {
	m, err := modmatrix.NewFromEntries(2, 26, []int{1, 2, 3, 4})
	require.NoError(t, err)

	y, err := modmatrix.Apply(m, []int{1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{3, 7}, y)
}

// TestApplyReducesInputs verifies arbitrary vector entries are reduced before
// the products accumulate.
func TestApplyReducesInputs(t *testing.T) {
	m, err := modmatrix.NewFromEntries(2, 26, []int{1, 0, 0, 1}) // identity grid
	require.NoError(t, err)

	y, err := modmatrix.Apply(m, []int{-1, 27}) // −1 ≡ 25, 27 ≡ 1 (mod 26)
	require.NoError(t, err)
	require.Equal(t, []int{25, 1}, y)
}

// TestApplyDimensionMismatch covers the size-mismatch surface.
func TestApplyDimensionMismatch(t *testing.T) {
	m, err := modmatrix.NewMatrix(2, 26)
	require.NoError(t, err)

	_, err = modmatrix.Apply(m, []int{1}) // too short
	require.ErrorIs(t, err, modmatrix.ErrDimensionMismatch)

	_, err = modmatrix.Apply(m, []int{1, 2, 3}) // too long
	require.ErrorIs(t, err, modmatrix.ErrDimensionMismatch)

	_, err = modmatrix.Apply(m, nil) // nil vector is a mismatch, not a panic
	require.ErrorIs(t, err, modmatrix.ErrDimensionMismatch)
}

// TestApplyNil ensures the nil-matrix guard fires first.
func TestApplyNil(t *testing.T) {
	_, err := modmatrix.Apply(nil, []int{1, 2})
	require.ErrorIs(t, err, modmatrix.ErrNilMatrix)
}

// TestApplyRoundTripWithInverse drives the cipher primitive both ways:
// Apply(inverse(M), Apply(M, x)) == x for canonical residue vectors.
func TestApplyRoundTripWithInverse(t *testing.T) {
	key, err := modmatrix.NewFromEntries(2, 26, []int{3, 3, 2, 5})
	require.NoError(t, err)
	inv, err := modmatrix.Inverse(key)
	require.NoError(t, err)

	plain := []int{7, 4} // already canonical residues
	cipherVec, err := modmatrix.Apply(key, plain)
	require.NoError(t, err)
	back, err := modmatrix.Apply(inv, cipherVec)
	require.NoError(t, err)
	require.Equal(t, plain, back)
}
