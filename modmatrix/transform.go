// SPDX-License-Identifier: MIT
// Package modmatrix: matrix–vector transform (the cipher's encode/decode
// primitive).

package modmatrix

// Apply computes y = M · x over the matrix's residue ring:
//
//	y[i] = reduce( Σ_k reduce(M[i,k] * x[k], modulus), modulus )
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, dimension).
//   - Stage 2: fixed i→k loops; reduce each product before summing, then
//     reduce the finished row sum.
//
// Behavior highlights:
//   - Vector entries may be arbitrary integers; each product is reduced
//     immediately, so the [0, modulus) discipline holds throughout.
//   - Neither the matrix nor the input vector is mutated.
//
// Inputs:
//   - m: square matrix (the key or its inverse).
//   - x: column vector with len(x) == m.Dimension().
//
// Returns:
//   - []int: fresh result vector, every entry inside [0, modulus).
//
// Errors:
//   - ErrNilMatrix        (nil matrix).
//   - ErrDimensionMismatch (vector length != matrix dimension).
//
// Determinism:
//   - Fixed loop order; exact integer arithmetic.
//
// Complexity:
//   - Time O(N²), Space O(N) for the result.
func Apply(m *Matrix, x []int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opApply, err)
	}
	if err := ValidateVecLen(x, m.dimension); err != nil {
		return nil, opErrorf(opApply, err)
	}

	n := m.dimension
	y := make([]int, n)
	var i, k, acc int // predeclared loop state
	for i = 0; i < n; i++ {
		acc = 0
		for k = 0; k < n; k++ {
			// Reduce the product before accumulating; x[k] may be any int.
			acc += reduce(m.data[i*n+k]*reduce(x[k], m.modulus), m.modulus)
		}
		y[i] = reduce(acc, m.modulus)
	}

	return y, nil
}
