// SPDX-License-Identifier: MIT
// Package modmatrix: cofactor and adjugate kernels.

package modmatrix

// Cofactor builds the cofactor matrix of m: a fresh N×N matrix where
// result[i,j] = sign(i+j) * det(Minor(i,j)), reduced into [0, modulus).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: for every cell (i, j) in fixed i→j order, extract the minor,
//     take its determinant, apply the position parity sign, reduce, store.
//
// Behavior highlights:
//   - Pure function of m; the operand is never mutated.
//   - Each cell invokes the determinant kernel on an (N−1)×(N−1) minor, so
//     together with the recursive expansion this dominates inversion cost.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed i→j traversal; exact integer arithmetic throughout.
//
// Complexity:
//   - Time O(N² · (N−1)!) = O(N · N!), Space O(N²) for the result.
func Cofactor(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opCofactor, err)
	}

	// Fresh result container in the same residue ring.
	out := &Matrix{
		dimension: m.dimension,
		modulus:   m.modulus,
		data:      make([]int, len(m.data)),
	}

	n := m.dimension
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Minor cannot fail: (i, j) always addresses a cell of m.
			sub, _ := m.Minor(i, j)
			// Position sign is the parity of i+j; determinant is already
			// reduced, so the product stays within the overflow guard.
			out.data[i*n+j] = reduce(determinant(sub)*signFor(i+j), m.modulus)
		}
	}

	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix of m.
// adjugate(M) · M ≡ det(M) · I (mod modulus) — the identity matrix inversion
// builds on.
//
// Errors: ErrNilMatrix.
// Complexity: dominated by Cofactor, O(N · N!).
func Adjugate(m *Matrix) (*Matrix, error) {
	cof, err := Cofactor(m)
	if err != nil {
		return nil, opErrorf(opAdjugate, err)
	}

	// Transpose never fails on a freshly built matrix.
	return cof.Transpose(), nil
}
