// SPDX-License-Identifier: MIT
// Package modmatrix: scalar/matrix products, identity, and matrix inversion.

package modmatrix

// Identity returns I_n over the given modulus (ones on the diagonal, zeros
// elsewhere). The neutral element for Mul and the reference matrix for the
// inversion law tests.
//
// Errors: ErrBadDimension, ErrInvalidModulus (constructor sentinels).
// Complexity: O(N²) zeroing + O(N) diagonal writes.
func Identity(dimension, modulus int) (*Matrix, error) {
	ident, err := NewMatrix(dimension, modulus)
	if err != nil {
		return nil, opErrorf(opIdentity, err)
	}
	// Single deterministic diagonal pass.
	for i := 0; i < dimension; i++ {
		ident.data[i*dimension+i] = 1 % modulus
	}

	return ident, nil
}

// ScalarMul returns a fresh matrix with every entry equal to
// reduce(k * m[i,j], modulus). The operand is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: O(N²).
func ScalarMul(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScalarMul, err)
	}

	// Canonicalize the scalar first so every product stays below modulus².
	k = reduce(k, m.modulus)
	out := &Matrix{
		dimension: m.dimension,
		modulus:   m.modulus,
		data:      make([]int, len(m.data)),
	}
	// Single flat pass over the backing slice.
	for idx, v := range m.data {
		out.data[idx] = reduce(k*v, m.modulus)
	}

	return out, nil
}

// Mul performs matrix multiplication C = A × B over the shared residue ring.
//
// Implementation:
//   - Stage 1: ValidateSameRing(a, b) — both non-nil, equal dimension,
//     equal modulus.
//   - Stage 2: fixed i→j→k triple loop; each product is reduced before
//     accumulation and the finished cell is reduced once more.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrModulusMismatch.
//
// Determinism:
//   - Fixed loop order; exact integer arithmetic.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameRing(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	n := a.dimension
	out := &Matrix{dimension: n, modulus: a.modulus, data: make([]int, n*n)}
	var i, j, k, acc int // predeclared loop state
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				// Reduce each product before summing; the sum of N reduced
				// terms stays far below the overflow guard.
				acc += reduce(a.data[i*n+k]*b.data[k*n+j], a.modulus)
			}
			out.data[i*n+j] = reduce(acc, a.modulus)
		}
	}

	return out, nil
}

// Inverse computes the modular inverse of m:
//
//	inverse(M) = ScalarMul(Adjugate(M), ScalarInverse(Determinant(M), modulus))
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); compute det(m).
//   - Stage 2: invert det(m) modulo the matrix modulus — the invertibility
//     gate. gcd(det, modulus) != 1 surfaces as ErrNotInvertible here; no
//     sentinel-scaled matrix ever escapes.
//   - Stage 3: build the adjugate and scale it by the determinant inverse.
//
// Behavior highlights:
//   - When it succeeds, Inverse(M) · M ≡ I (mod modulus) exactly.
//   - The operand is never mutated; a failed inversion leaves no side effect.
//
// Inputs:
//   - m: square matrix over a validated modulus.
//
// Returns:
//   - *Matrix: the modular inverse, every entry inside [0, modulus).
//
// Errors:
//   - ErrNilMatrix      (nil input).
//   - ErrNotInvertible  (gcd(det(m), modulus) != 1).
//
// Determinism:
//   - Pure composition of deterministic kernels.
//
// Complexity:
//   - Time O(N · N!) — dominated by the adjugate's minor determinants.
func Inverse(m *Matrix) (*Matrix, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	// Invertibility gate: the determinant must be a unit of the ring.
	detInv, err := ScalarInverse(det, m.modulus)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	// Scale the adjugate by det⁻¹; ScalarMul cannot fail on a fresh matrix.
	inv, err := ScalarMul(adj, detInv)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	return inv, nil
}
